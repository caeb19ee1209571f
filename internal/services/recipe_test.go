package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/sbilibin2017/foodgram-backend/internal/repositories"
	"github.com/sbilibin2017/foodgram-backend/internal/services"
	"github.com/sbilibin2017/foodgram-backend/internal/storage"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipeMocks struct {
	tx          *services.MockTransactor
	writer      *services.MockRecipeWriter
	reader      *services.MockRecipeReader
	tags        *services.MockRecipeTagReader
	tagIDs      *services.MockIDChecker
	ingredients *services.MockIDChecker
	users       *services.MockUserGetter
	subs        *services.MockSubscriptionChecker
	favorites   *services.MockMembershipChecker
	cart        *services.MockMembershipChecker
	images      *services.MockImageSaver
	kafka       *services.MockKafkaWriter
}

func newRecipeService(t *testing.T) (*services.RecipeService, *recipeMocks) {
	ctrl := gomock.NewController(t)
	m := &recipeMocks{
		tx:          services.NewMockTransactor(ctrl),
		writer:      services.NewMockRecipeWriter(ctrl),
		reader:      services.NewMockRecipeReader(ctrl),
		tags:        services.NewMockRecipeTagReader(ctrl),
		tagIDs:      services.NewMockIDChecker(ctrl),
		ingredients: services.NewMockIDChecker(ctrl),
		users:       services.NewMockUserGetter(ctrl),
		subs:        services.NewMockSubscriptionChecker(ctrl),
		favorites:   services.NewMockMembershipChecker(ctrl),
		cart:        services.NewMockMembershipChecker(ctrl),
		images:      services.NewMockImageSaver(ctrl),
		kafka:       services.NewMockKafkaWriter(ctrl),
	}

	svc := services.NewRecipeService(services.RecipeRepositories{
		Tx:          m.tx,
		Writer:      m.writer,
		Reader:      m.reader,
		Tags:        m.tags,
		TagIDs:      m.tagIDs,
		Ingredients: m.ingredients,
		Users:       m.users,
		Subs:        m.subs,
		Favorites:   m.favorites,
		Cart:        m.cart,
	}, m.images, m.kafka)
	return svc, m
}

// runInTx makes the transactor mock execute the callback.
func (m *recipeMocks) runInTx() {
	m.tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

// expectDetail sets up the reads that assemble one recipe detail.
func (m *recipeMocks) expectDetail(recipe models.Recipe, viewer *uuid.UUID) {
	m.reader.EXPECT().GetByID(gomock.Any(), recipe.ID).Return(&recipe, nil)
	m.tags.EXPECT().ListByRecipeIDs(gomock.Any(), []int64{recipe.ID}).
		Return(map[int64][]models.Tag{recipe.ID: {{ID: 1, Name: "Lunch", Slug: "lunch"}}}, nil)
	m.reader.EXPECT().IngredientsByRecipeIDs(gomock.Any(), []int64{recipe.ID}).
		Return(map[int64][]models.RecipeIngredient{recipe.ID: {{ID: 10, Name: "flour", MeasurementUnit: "g", Amount: 200}}}, nil)
	m.users.EXPECT().GetByID(gomock.Any(), recipe.AuthorID).
		Return(&models.UserDB{UserID: recipe.AuthorID, Username: "chef"}, nil)
	if viewer != nil {
		m.subs.EXPECT().SubscribedAmong(gomock.Any(), *viewer, []uuid.UUID{recipe.AuthorID}).Return(map[uuid.UUID]bool{}, nil)
		m.favorites.EXPECT().ContainsAny(gomock.Any(), *viewer, []int64{recipe.ID}).Return(map[int64]bool{recipe.ID: true}, nil)
		m.cart.EXPECT().ContainsAny(gomock.Any(), *viewer, []int64{recipe.ID}).Return(map[int64]bool{}, nil)
	}
}

func validInput() models.RecipeInput {
	return models.RecipeInput{
		Name:        "Pancakes",
		Text:        "Mix and fry",
		Image:       "data:image/png;base64,iVBORw0KGgo=",
		CookingTime: 15,
		Tags:        []int64{1, 2},
		Ingredients: []models.IngredientAmount{{ID: 10, Amount: 200}, {ID: 11, Amount: 50}},
	}
}

func TestRecipeService_Create_Validation(t *testing.T) {
	author := uuid.New()

	tests := []struct {
		name    string
		mutate  func(in *models.RecipeInput)
		field   string
		message string
	}{
		{
			name:    "empty tags",
			mutate:  func(in *models.RecipeInput) { in.Tags = nil },
			field:   "tags",
			message: "recipe requires at least one tag",
		},
		{
			name:    "empty ingredients",
			mutate:  func(in *models.RecipeInput) { in.Ingredients = nil },
			field:   "ingredients",
			message: "recipe requires at least one ingredient",
		},
		{
			name:    "empty tags checked before empty ingredients",
			mutate:  func(in *models.RecipeInput) { in.Tags = nil; in.Ingredients = nil },
			field:   "tags",
			message: "recipe requires at least one tag",
		},
		{
			name:    "duplicate tags",
			mutate:  func(in *models.RecipeInput) { in.Tags = []int64{1, 2, 1, 2, 1} },
			field:   "tags",
			message: "duplicate tags: [1 2]",
		},
		{
			name: "duplicate ingredients",
			mutate: func(in *models.RecipeInput) {
				in.Ingredients = []models.IngredientAmount{{ID: 10, Amount: 1}, {ID: 10, Amount: 2}}
			},
			field:   "ingredients",
			message: "duplicate ingredients: [10]",
		},
		{
			name: "duplicate tags checked before duplicate ingredients",
			mutate: func(in *models.RecipeInput) {
				in.Tags = []int64{3, 3}
				in.Ingredients = []models.IngredientAmount{{ID: 10, Amount: 1}, {ID: 10, Amount: 2}}
			},
			field:   "tags",
			message: "duplicate tags: [3]",
		},
		{
			name: "non positive amount",
			mutate: func(in *models.RecipeInput) {
				in.Ingredients = []models.IngredientAmount{{ID: 10, Amount: 5}, {ID: 11, Amount: 0}}
			},
			field:   "ingredients[1].amount",
			message: "amount must be at least 1",
		},
		{
			name:    "zero cooking time",
			mutate:  func(in *models.RecipeInput) { in.CookingTime = 0 },
			field:   "cooking_time",
			message: "cooking time must be at least 1 minute",
		},
		{
			name: "amount checked before cooking time",
			mutate: func(in *models.RecipeInput) {
				in.CookingTime = -1
				in.Ingredients = []models.IngredientAmount{{ID: 10, Amount: -3}}
			},
			field:   "ingredients[0].amount",
			message: "amount must be at least 1",
		},
		{
			name:    "missing image",
			mutate:  func(in *models.RecipeInput) { in.Image = "" },
			field:   "image",
			message: "this field is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newRecipeService(t)

			in := validInput()
			tt.mutate(&in)

			detail, err := svc.Create(context.Background(), &author, in)
			assert.Nil(t, detail)

			var verr *services.ValidationError
			require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
			assert.Equal(t, []string{tt.message}, verr.Fields[tt.field])
		})
	}
}

func TestRecipeService_Create_UnknownReferences(t *testing.T) {
	author := uuid.New()

	t.Run("unknown tag", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.tagIDs.EXPECT().ExistingIDs(gomock.Any(), []int64{1, 2}).Return([]int64{1}, nil)

		_, err := svc.Create(context.Background(), &author, validInput())

		var verr *services.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"unknown tags: [2]"}, verr.Fields["tags"])
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.tagIDs.EXPECT().ExistingIDs(gomock.Any(), []int64{1, 2}).Return([]int64{1, 2}, nil)
		m.ingredients.EXPECT().ExistingIDs(gomock.Any(), []int64{10, 11}).Return([]int64{11}, nil)

		_, err := svc.Create(context.Background(), &author, validInput())

		var verr *services.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"unknown ingredients: [10]"}, verr.Fields["ingredients"])
	})
}

func TestRecipeService_Create_Anonymous(t *testing.T) {
	svc, _ := newRecipeService(t)

	_, err := svc.Create(context.Background(), nil, validInput())
	assert.ErrorIs(t, err, services.ErrAuthenticationRequired)
}

func TestRecipeService_Create_Success(t *testing.T) {
	svc, m := newRecipeService(t)
	author := uuid.New()
	in := validInput()
	imageURL := "http://localhost/media/recipes/images/a.png"

	m.tagIDs.EXPECT().ExistingIDs(gomock.Any(), in.Tags).Return(in.Tags, nil)
	m.ingredients.EXPECT().ExistingIDs(gomock.Any(), []int64{10, 11}).Return([]int64{10, 11}, nil)
	m.images.EXPECT().Save(gomock.Any(), "recipes/images", in.Image).Return(imageURL, nil)
	m.runInTx()

	gomock.InOrder(
		m.writer.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.Recipe) (int64, error) {
				assert.Equal(t, author, r.AuthorID)
				assert.Equal(t, "Pancakes", r.Name)
				assert.Equal(t, imageURL, r.Image)
				assert.Equal(t, 15, r.CookingTime)
				return 7, nil
			}),
		m.writer.EXPECT().SetTags(gomock.Any(), int64(7), in.Tags).Return(nil),
		m.writer.EXPECT().AddIngredients(gomock.Any(), int64(7), in.Ingredients).Return(nil),
	)

	m.kafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "7", string(msgs[0].Key))

			var event models.RecipeEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.RecipeCreated, event.Operation)
			assert.Equal(t, int64(7), event.RecipeID)
			assert.Equal(t, author.String(), event.AuthorID)
			return nil
		})

	m.expectDetail(models.Recipe{ID: 7, AuthorID: author, Name: "Pancakes", Image: imageURL, CookingTime: 15}, &author)

	detail, err := svc.Create(context.Background(), &author, in)
	require.NoError(t, err)
	assert.Equal(t, int64(7), detail.ID)
	assert.Equal(t, "chef", detail.Author.Username)
	assert.True(t, detail.IsFavorited)
	assert.False(t, detail.IsInShoppingCart)
	require.Len(t, detail.Ingredients, 1)
	require.Len(t, detail.Tags, 1)
}

func TestRecipeService_Create_ImageErrors(t *testing.T) {
	diskErr := errors.New("write image: no space left on device")

	tests := []struct {
		name             string
		saveErr          error
		expectValidation bool
	}{
		{name: "malformed payload", saveErr: storage.ErrInvalidImage, expectValidation: true},
		{name: "storage failure", saveErr: diskErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRecipeService(t)
			author := uuid.New()
			in := validInput()

			m.tagIDs.EXPECT().ExistingIDs(gomock.Any(), in.Tags).Return(in.Tags, nil)
			m.ingredients.EXPECT().ExistingIDs(gomock.Any(), []int64{10, 11}).Return([]int64{10, 11}, nil)
			m.images.EXPECT().Save(gomock.Any(), "recipes/images", in.Image).Return("", tt.saveErr)

			_, err := svc.Create(context.Background(), &author, in)
			require.Error(t, err)

			var verr *services.ValidationError
			if tt.expectValidation {
				require.True(t, errors.As(err, &verr))
				assert.Contains(t, verr.Fields, "image")
				return
			}
			assert.False(t, errors.As(err, &verr))
			assert.ErrorIs(t, err, tt.saveErr)
		})
	}
}

func TestRecipeService_Create_RollsBack(t *testing.T) {
	author := uuid.New()
	in := validInput()
	imageURL := "http://localhost/media/recipes/images/a.png"

	tests := []struct {
		name    string
		failAt  string
		txErr   error
		wantVal bool
	}{
		{name: "recipe insert fails", failAt: "create", txErr: errors.New("insert failed")},
		{name: "tag insert fails", failAt: "tags", txErr: errors.New("tags failed")},
		{name: "ingredient insert fails", failAt: "ingredients", txErr: errors.New("ingredients failed")},
		{name: "ingredient removed concurrently", failAt: "ingredients", txErr: fmt.Errorf("insert: %w", repositories.ErrReferenceNotFound), wantVal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRecipeService(t)

			m.tagIDs.EXPECT().ExistingIDs(gomock.Any(), gomock.Any()).Return(in.Tags, nil)
			m.ingredients.EXPECT().ExistingIDs(gomock.Any(), gomock.Any()).Return([]int64{10, 11}, nil)
			m.images.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(imageURL, nil)
			m.images.EXPECT().Remove(gomock.Any(), imageURL).Return(nil)
			m.runInTx()

			switch tt.failAt {
			case "create":
				m.writer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), tt.txErr)
			case "tags":
				m.writer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				m.writer.EXPECT().SetTags(gomock.Any(), int64(3), gomock.Any()).Return(tt.txErr)
			case "ingredients":
				m.writer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				m.writer.EXPECT().SetTags(gomock.Any(), int64(3), gomock.Any()).Return(nil)
				m.writer.EXPECT().AddIngredients(gomock.Any(), int64(3), gomock.Any()).Return(tt.txErr)
			}

			detail, err := svc.Create(context.Background(), &author, in)
			assert.Nil(t, detail)
			if tt.wantVal {
				var verr *services.ValidationError
				assert.True(t, errors.As(err, &verr))
			} else {
				assert.ErrorIs(t, err, tt.txErr)
			}
		})
	}
}

func TestRecipeService_Delete_WithoutKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	tx := services.NewMockTransactor(ctrl)
	writer := services.NewMockRecipeWriter(ctrl)
	reader := services.NewMockRecipeReader(ctrl)
	images := services.NewMockImageSaver(ctrl)

	svc := services.NewRecipeService(services.RecipeRepositories{
		Tx:     tx,
		Writer: writer,
		Reader: reader,
	}, images, nil)

	author := uuid.New()
	reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.Recipe{ID: 5, AuthorID: author, Image: "/media/a.png"}, nil)
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) })
	writer.EXPECT().Delete(gomock.Any(), int64(5)).Return(true, nil)
	images.EXPECT().Remove(gomock.Any(), "/media/a.png").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), &author, 5))
}

func TestRecipeService_Update(t *testing.T) {
	author := uuid.New()
	other := uuid.New()
	stored := models.Recipe{ID: 9, AuthorID: author, Name: "Old", Text: "old text", Image: "/media/old.png", CookingTime: 30}
	newName := "New"
	newTime := 45

	upd := models.RecipeUpdate{
		Name:        &newName,
		CookingTime: &newTime,
		Tags:        []int64{2},
		Ingredients: []models.IngredientAmount{{ID: 12, Amount: 3}},
	}

	t.Run("anonymous", func(t *testing.T) {
		svc, _ := newRecipeService(t)
		_, err := svc.Update(context.Background(), nil, 9, upd)
		assert.ErrorIs(t, err, services.ErrAuthenticationRequired)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

		_, err := svc.Update(context.Background(), &author, 9, upd)
		assert.ErrorIs(t, err, services.ErrRecipeNotFound)
	})

	t.Run("not the author", func(t *testing.T) {
		svc, m := newRecipeService(t)
		recipe := stored
		m.reader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&recipe, nil)

		_, err := svc.Update(context.Background(), &other, 9, upd)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("empty ingredient list", func(t *testing.T) {
		svc, m := newRecipeService(t)
		recipe := stored
		m.reader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&recipe, nil)

		bad := upd
		bad.Ingredients = nil
		_, err := svc.Update(context.Background(), &author, 9, bad)

		var verr *services.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"recipe requires at least one ingredient"}, verr.Fields["ingredients"])
	})

	t.Run("replaces ingredient lines and tags", func(t *testing.T) {
		svc, m := newRecipeService(t)
		recipe := stored
		m.reader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&recipe, nil)
		m.tagIDs.EXPECT().ExistingIDs(gomock.Any(), []int64{2}).Return([]int64{2}, nil)
		m.ingredients.EXPECT().ExistingIDs(gomock.Any(), []int64{12}).Return([]int64{12}, nil)
		m.runInTx()

		gomock.InOrder(
			m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, r *models.Recipe) error {
					assert.Equal(t, "New", r.Name)
					assert.Equal(t, "old text", r.Text)
					assert.Equal(t, "/media/old.png", r.Image)
					assert.Equal(t, 45, r.CookingTime)
					return nil
				}),
			m.writer.EXPECT().SetTags(gomock.Any(), int64(9), []int64{2}).Return(nil),
			m.writer.EXPECT().DeleteIngredients(gomock.Any(), int64(9)).Return(nil),
			m.writer.EXPECT().AddIngredients(gomock.Any(), int64(9), upd.Ingredients).Return(nil),
		)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
		m.expectDetail(models.Recipe{ID: 9, AuthorID: author, Name: "New"}, &author)

		detail, err := svc.Update(context.Background(), &author, 9, upd)
		require.NoError(t, err)
		assert.Equal(t, "New", detail.Name)
	})

	t.Run("new image replaces the old file", func(t *testing.T) {
		svc, m := newRecipeService(t)
		recipe := stored
		image := "data:image/png;base64,iVBORw0KGgo="
		withImage := upd
		withImage.Image = &image

		m.reader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&recipe, nil)
		m.tagIDs.EXPECT().ExistingIDs(gomock.Any(), gomock.Any()).Return([]int64{2}, nil)
		m.ingredients.EXPECT().ExistingIDs(gomock.Any(), gomock.Any()).Return([]int64{12}, nil)
		m.images.EXPECT().Save(gomock.Any(), "recipes/images", image).Return("/media/new.png", nil)
		m.runInTx()
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.writer.EXPECT().SetTags(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.writer.EXPECT().DeleteIngredients(gomock.Any(), gomock.Any()).Return(nil)
		m.writer.EXPECT().AddIngredients(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.images.EXPECT().Remove(gomock.Any(), "/media/old.png").Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		m.expectDetail(models.Recipe{ID: 9, AuthorID: author, Image: "/media/new.png"}, &author)

		detail, err := svc.Update(context.Background(), &author, 9, withImage)
		require.NoError(t, err)
		assert.Equal(t, "/media/new.png", detail.Image)
	})

	t.Run("image storage failure", func(t *testing.T) {
		svc, m := newRecipeService(t)
		recipe := stored
		image := "data:image/png;base64,iVBORw0KGgo="
		withImage := upd
		withImage.Image = &image
		diskErr := errors.New("create media dir: permission denied")

		m.reader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&recipe, nil)
		m.tagIDs.EXPECT().ExistingIDs(gomock.Any(), gomock.Any()).Return([]int64{2}, nil)
		m.ingredients.EXPECT().ExistingIDs(gomock.Any(), gomock.Any()).Return([]int64{12}, nil)
		m.images.EXPECT().Save(gomock.Any(), "recipes/images", image).Return("", diskErr)

		_, err := svc.Update(context.Background(), &author, 9, withImage)
		assert.ErrorIs(t, err, diskErr)
		var verr *services.ValidationError
		assert.False(t, errors.As(err, &verr))
	})
}

func TestRecipeService_Delete(t *testing.T) {
	author := uuid.New()
	other := uuid.New()

	t.Run("not the author", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&models.Recipe{ID: 4, AuthorID: author}, nil)

		err := svc.Delete(context.Background(), &other, 4)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, _ := newRecipeService(t)
		assert.ErrorIs(t, svc.Delete(context.Background(), nil, 4), services.ErrAuthenticationRequired)
	})

	t.Run("author deletes and event is published", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&models.Recipe{ID: 4, AuthorID: author}, nil)
		m.runInTx()
		m.writer.EXPECT().Delete(gomock.Any(), int64(4)).Return(true, nil)
		m.kafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				var event models.RecipeEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.RecipeDeleted, event.Operation)
				return nil
			})

		assert.NoError(t, svc.Delete(context.Background(), &author, 4))
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&models.Recipe{ID: 4, AuthorID: author}, nil)
		m.runInTx()
		m.writer.EXPECT().Delete(gomock.Any(), int64(4)).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), &author, 4), services.ErrRecipeNotFound)
	})
}

func TestRecipeService_Get(t *testing.T) {
	author := uuid.New()

	t.Run("anonymous viewer", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.expectDetail(models.Recipe{ID: 2, AuthorID: author, Name: "Soup"}, nil)

		detail, err := svc.Get(context.Background(), nil, 2)
		require.NoError(t, err)
		assert.Equal(t, "Soup", detail.Name)
		assert.False(t, detail.IsFavorited)
		assert.False(t, detail.Author.IsSubscribed)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)

		_, err := svc.Get(context.Background(), nil, 2)
		assert.ErrorIs(t, err, services.ErrRecipeNotFound)
	})
}

func TestRecipeService_List(t *testing.T) {
	viewer := uuid.New()
	yes := true

	t.Run("anonymous drops membership filters", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.reader.EXPECT().
			List(gomock.Any(), models.RecipeFilter{TagSlugs: []string{"lunch"}, Limit: 6}).
			Return([]models.Recipe{}, 0, nil)

		recipes, total, err := svc.List(context.Background(), nil, models.RecipeFilter{
			TagSlugs:  []string{"lunch"},
			Favorited: &yes,
			Limit:     6,
		})
		require.NoError(t, err)
		assert.Empty(t, recipes)
		assert.Zero(t, total)
	})

	t.Run("viewer flags are batched", func(t *testing.T) {
		svc, m := newRecipeService(t)
		a, b := uuid.New(), uuid.New()
		rows := []models.Recipe{
			{ID: 1, AuthorID: a, Name: "One"},
			{ID: 2, AuthorID: b, Name: "Two"},
			{ID: 3, AuthorID: a, Name: "Three"},
		}

		m.reader.EXPECT().
			List(gomock.Any(), models.RecipeFilter{Viewer: &viewer, InShoppingCart: &yes}).
			Return(rows, 3, nil)
		m.tags.EXPECT().ListByRecipeIDs(gomock.Any(), []int64{1, 2, 3}).Return(map[int64][]models.Tag{}, nil)
		m.reader.EXPECT().IngredientsByRecipeIDs(gomock.Any(), []int64{1, 2, 3}).Return(map[int64][]models.RecipeIngredient{}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), a).Return(&models.UserDB{UserID: a, Username: "a"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), b).Return(&models.UserDB{UserID: b, Username: "b"}, nil)
		m.subs.EXPECT().SubscribedAmong(gomock.Any(), viewer, []uuid.UUID{a, b}).Return(map[uuid.UUID]bool{b: true}, nil)
		m.favorites.EXPECT().ContainsAny(gomock.Any(), viewer, []int64{1, 2, 3}).Return(map[int64]bool{}, nil)
		m.cart.EXPECT().ContainsAny(gomock.Any(), viewer, []int64{1, 2, 3}).Return(map[int64]bool{1: true, 2: true, 3: true}, nil)

		recipes, total, err := svc.List(context.Background(), &viewer, models.RecipeFilter{InShoppingCart: &yes})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, recipes, 3)
		assert.False(t, recipes[0].Author.IsSubscribed)
		assert.True(t, recipes[1].Author.IsSubscribed)
		assert.Equal(t, "a", recipes[2].Author.Username)
		for _, r := range recipes {
			assert.True(t, r.IsInShoppingCart)
			assert.NotNil(t, r.Tags)
			assert.NotNil(t, r.Ingredients)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.reader.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("db down"))

		_, _, err := svc.List(context.Background(), &viewer, models.RecipeFilter{})
		assert.EqualError(t, err, "db down")
	})
}
