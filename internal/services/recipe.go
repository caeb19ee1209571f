package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/sbilibin2017/foodgram-backend/internal/policy"
	"github.com/sbilibin2017/foodgram-backend/internal/repositories"
	"github.com/sbilibin2017/foodgram-backend/internal/storage"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=recipe.go -destination=recipe_mock.go -package=services

const recipeImageDir = "recipes/images"

// Transactor runs fn inside one database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RecipeWriter persists recipe rows and their join rows.
type RecipeWriter interface {
	Create(ctx context.Context, recipe *models.Recipe) (int64, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, recipeID int64) (bool, error)
	SetTags(ctx context.Context, recipeID int64, tagIDs []int64) error
	DeleteIngredients(ctx context.Context, recipeID int64) error
	AddIngredients(ctx context.Context, recipeID int64, items []models.IngredientAmount) error
}

// RecipeReader reads recipes and their ingredient lines.
type RecipeReader interface {
	GetByID(ctx context.Context, recipeID int64) (*models.Recipe, error)
	List(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, int, error)
	IngredientsByRecipeIDs(ctx context.Context, recipeIDs []int64) (map[int64][]models.RecipeIngredient, error)
}

// RecipeTagReader returns the tags of recipes.
type RecipeTagReader interface {
	ListByRecipeIDs(ctx context.Context, recipeIDs []int64) (map[int64][]models.Tag, error)
}

// IDChecker returns which of ids exist.
type IDChecker interface {
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// UserGetter loads a user by id.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// SubscriptionChecker reports which authors a user follows.
type SubscriptionChecker interface {
	SubscribedAmong(ctx context.Context, subscriberID uuid.UUID, authorIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

// MembershipChecker reports which recipes are in a user's favorites or cart.
type MembershipChecker interface {
	ContainsAny(ctx context.Context, userID uuid.UUID, recipeIDs []int64) (map[int64]bool, error)
}

// ImageSaver stores base64 data URI images and returns their URL.
type ImageSaver interface {
	Save(ctx context.Context, dir, data string) (string, error)
	Remove(ctx context.Context, url string) error
}

// imageSaveError reports a malformed payload against field and passes
// storage failures through unchanged.
func imageSaveError(field string, err error) error {
	if errors.Is(err, storage.ErrInvalidImage) {
		return NewValidationError(field, err.Error())
	}
	return err
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RecipeRepositories groups the stores RecipeService depends on.
type RecipeRepositories struct {
	Tx          Transactor
	Writer      RecipeWriter
	Reader      RecipeReader
	Tags        RecipeTagReader
	TagIDs      IDChecker
	Ingredients IDChecker
	Users       UserGetter
	Subs        SubscriptionChecker
	Favorites   MembershipChecker
	Cart        MembershipChecker
}

// RecipeService validates, builds and reads recipes.
type RecipeService struct {
	repos       RecipeRepositories
	images      ImageSaver
	kafkaWriter KafkaWriter
}

// NewRecipeService creates a RecipeService. kafkaWriter may be nil.
func NewRecipeService(repos RecipeRepositories, images ImageSaver, kafkaWriter KafkaWriter) *RecipeService {
	return &RecipeService{
		repos:       repos,
		images:      images,
		kafkaWriter: kafkaWriter,
	}
}

// validateRecipe applies the builder rules in order and returns the first failure.
func validateRecipe(tags []int64, ingredients []models.IngredientAmount, cookingTime *int) *ValidationError {
	if len(tags) == 0 {
		return NewValidationError("tags", "recipe requires at least one tag")
	}
	if len(ingredients) == 0 {
		return NewValidationError("ingredients", "recipe requires at least one ingredient")
	}
	if dup := duplicates(tags); len(dup) > 0 {
		return NewValidationError("tags", fmt.Sprintf("duplicate tags: %v", dup))
	}

	ingredientIDs := make([]int64, 0, len(ingredients))
	for _, item := range ingredients {
		ingredientIDs = append(ingredientIDs, item.ID)
	}
	if dup := duplicates(ingredientIDs); len(dup) > 0 {
		return NewValidationError("ingredients", fmt.Sprintf("duplicate ingredients: %v", dup))
	}

	var amountErr *ValidationError
	for i, item := range ingredients {
		if item.Amount < 1 {
			if amountErr == nil {
				amountErr = &ValidationError{}
			}
			amountErr.Add("ingredients["+strconv.Itoa(i)+"].amount", "amount must be at least 1")
		}
	}
	if amountErr != nil {
		return amountErr
	}

	if cookingTime != nil && *cookingTime < 1 {
		return NewValidationError("cooking_time", "cooking time must be at least 1 minute")
	}
	return nil
}

// duplicates returns the ids that occur more than once, in first-seen order.
func duplicates(ids []int64) []int64 {
	seen := make(map[int64]int, len(ids))
	var dup []int64
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			dup = append(dup, id)
		}
	}
	return dup
}

// checkReferences fails when any tag or ingredient id is unknown.
func (s *RecipeService) checkReferences(ctx context.Context, tags []int64, ingredients []models.IngredientAmount) error {
	found, err := s.repos.TagIDs.ExistingIDs(ctx, tags)
	if err != nil {
		return err
	}
	if missing := missingIDs(tags, found); len(missing) > 0 {
		return NewValidationError("tags", fmt.Sprintf("unknown tags: %v", missing))
	}

	ids := make([]int64, 0, len(ingredients))
	for _, item := range ingredients {
		ids = append(ids, item.ID)
	}
	found, err = s.repos.Ingredients.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return NewValidationError("ingredients", fmt.Sprintf("unknown ingredients: %v", missing))
	}
	return nil
}

func missingIDs(want, found []int64) []int64 {
	present := make(map[int64]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	var missing []int64
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Create validates input and stores the recipe with its tags and ingredient
// lines in a single transaction.
func (s *RecipeService) Create(ctx context.Context, subject *uuid.UUID, in models.RecipeInput) (*models.RecipeDetail, error) {
	if !policy.Allowed(policy.Create, subject, nil) {
		return nil, ErrAuthenticationRequired
	}

	if verr := validateRecipe(in.Tags, in.Ingredients, &in.CookingTime); verr != nil {
		logger.Log.Infow("recipe rejected", "author", subject, "error", verr)
		return nil, verr
	}
	if in.Name == "" {
		return nil, NewValidationError("name", "this field is required")
	}
	if in.Image == "" {
		return nil, NewValidationError("image", "this field is required")
	}
	if err := s.checkReferences(ctx, in.Tags, in.Ingredients); err != nil {
		return nil, err
	}

	image, err := s.images.Save(ctx, recipeImageDir, in.Image)
	if err != nil {
		return nil, imageSaveError("image", err)
	}

	recipe := &models.Recipe{
		AuthorID:    *subject,
		Name:        in.Name,
		Text:        in.Text,
		Image:       image,
		CookingTime: in.CookingTime,
	}

	err = s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		id, err := s.repos.Writer.Create(ctx, recipe)
		if err != nil {
			return err
		}
		recipe.ID = id
		return s.replaceRelations(ctx, id, in.Tags, in.Ingredients, false)
	})
	if err != nil {
		s.dropImage(ctx, image)
		logger.Log.Errorw("failed to create recipe", "author", subject, "error", err)
		return nil, mapReferenceError(err)
	}

	s.publishRecipeEvent(ctx, models.RecipeCreated, recipe.ID, *subject)
	return s.Get(ctx, subject, recipe.ID)
}

// Update patches scalar fields and replaces the tag and ingredient sets.
func (s *RecipeService) Update(ctx context.Context, subject *uuid.UUID, recipeID int64, upd models.RecipeUpdate) (*models.RecipeDetail, error) {
	recipe, err := s.authorize(ctx, policy.Update, subject, recipeID)
	if err != nil {
		return nil, err
	}

	if verr := validateRecipe(upd.Tags, upd.Ingredients, upd.CookingTime); verr != nil {
		logger.Log.Infow("recipe update rejected", "recipe", recipeID, "error", verr)
		return nil, verr
	}
	if upd.Name != nil && *upd.Name == "" {
		return nil, NewValidationError("name", "this field may not be blank")
	}
	if err := s.checkReferences(ctx, upd.Tags, upd.Ingredients); err != nil {
		return nil, err
	}

	oldImage := recipe.Image
	if upd.Name != nil {
		recipe.Name = *upd.Name
	}
	if upd.Text != nil {
		recipe.Text = *upd.Text
	}
	if upd.CookingTime != nil {
		recipe.CookingTime = *upd.CookingTime
	}
	if upd.Image != nil && *upd.Image != "" {
		image, err := s.images.Save(ctx, recipeImageDir, *upd.Image)
		if err != nil {
			return nil, imageSaveError("image", err)
		}
		recipe.Image = image
	}

	err = s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repos.Writer.Update(ctx, recipe); err != nil {
			return err
		}
		return s.replaceRelations(ctx, recipeID, upd.Tags, upd.Ingredients, true)
	})
	if err != nil {
		if recipe.Image != oldImage {
			s.dropImage(ctx, recipe.Image)
		}
		logger.Log.Errorw("failed to update recipe", "recipe", recipeID, "error", err)
		return nil, mapReferenceError(err)
	}
	if recipe.Image != oldImage {
		s.dropImage(ctx, oldImage)
	}

	s.publishRecipeEvent(ctx, models.RecipeUpdated, recipeID, *subject)
	return s.Get(ctx, subject, recipeID)
}

// replaceRelations sets the tag set and writes the ingredient lines,
// deleting the previous lines first when replace is set.
func (s *RecipeService) replaceRelations(ctx context.Context, recipeID int64, tags []int64, items []models.IngredientAmount, replace bool) error {
	if err := s.repos.Writer.SetTags(ctx, recipeID, tags); err != nil {
		return err
	}
	if replace {
		if err := s.repos.Writer.DeleteIngredients(ctx, recipeID); err != nil {
			return err
		}
	}
	return s.repos.Writer.AddIngredients(ctx, recipeID, items)
}

// Delete removes a recipe owned by subject.
func (s *RecipeService) Delete(ctx context.Context, subject *uuid.UUID, recipeID int64) error {
	recipe, err := s.authorize(ctx, policy.Delete, subject, recipeID)
	if err != nil {
		return err
	}

	var deleted bool
	err = s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.repos.Writer.Delete(ctx, recipeID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "recipe", recipeID, "error", err)
		return err
	}
	if !deleted {
		return ErrRecipeNotFound
	}

	s.dropImage(ctx, recipe.Image)
	s.publishRecipeEvent(ctx, models.RecipeDeleted, recipeID, *subject)
	return nil
}

// authorize loads the recipe and checks that subject may perform action on it.
func (s *RecipeService) authorize(ctx context.Context, action policy.Action, subject *uuid.UUID, recipeID int64) (*models.Recipe, error) {
	if subject == nil {
		return nil, ErrAuthenticationRequired
	}

	recipe, err := s.repos.Reader.GetByID(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipe", recipeID, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	if !policy.Allowed(action, subject, recipe) {
		logger.Log.Infow("recipe access denied", "recipe", recipeID, "subject", subject, "action", action)
		return nil, ErrForbidden
	}
	return recipe, nil
}

// Get returns the full representation of a recipe as seen by viewer.
func (s *RecipeService) Get(ctx context.Context, viewer *uuid.UUID, recipeID int64) (*models.RecipeDetail, error) {
	recipe, err := s.repos.Reader.GetByID(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipe", recipeID, "error", err)
		return nil, err
	}
	if recipe == nil || !policy.Allowed(policy.Read, viewer, recipe) {
		return nil, ErrRecipeNotFound
	}

	details, err := s.details(ctx, viewer, []models.Recipe{*recipe})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// List returns one page of recipes matching filter and the total match count.
// Membership filters are dropped for anonymous viewers.
func (s *RecipeService) List(ctx context.Context, viewer *uuid.UUID, filter models.RecipeFilter) ([]models.RecipeDetail, int, error) {
	filter.Viewer = viewer
	if viewer == nil {
		filter.Favorited = nil
		filter.InShoppingCart = nil
	}

	recipes, total, err := s.repos.Reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "error", err)
		return nil, 0, err
	}

	details, err := s.details(ctx, viewer, recipes)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// details assembles full representations for recipes in batch.
func (s *RecipeService) details(ctx context.Context, viewer *uuid.UUID, recipes []models.Recipe) ([]models.RecipeDetail, error) {
	result := make([]models.RecipeDetail, 0, len(recipes))
	if len(recipes) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(recipes))
	authors := map[uuid.UUID]*models.UserDB{}
	authorIDs := []uuid.UUID{}
	for _, r := range recipes {
		ids = append(ids, r.ID)
		if _, ok := authors[r.AuthorID]; !ok {
			authors[r.AuthorID] = nil
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	tags, err := s.repos.Tags.ListByRecipeIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.repos.Reader.IngredientsByRecipeIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range authorIDs {
		user, err := s.repos.Users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			user = &models.UserDB{UserID: id}
		}
		authors[id] = user
	}

	subscribed := map[uuid.UUID]bool{}
	favorited := map[int64]bool{}
	inCart := map[int64]bool{}
	if viewer != nil {
		if subscribed, err = s.repos.Subs.SubscribedAmong(ctx, *viewer, authorIDs); err != nil {
			return nil, err
		}
		if favorited, err = s.repos.Favorites.ContainsAny(ctx, *viewer, ids); err != nil {
			return nil, err
		}
		if inCart, err = s.repos.Cart.ContainsAny(ctx, *viewer, ids); err != nil {
			return nil, err
		}
	}

	for _, r := range recipes {
		detail := models.RecipeDetail{
			ID:               r.ID,
			Tags:             tags[r.ID],
			Author:           models.UserProfile{UserDB: *authors[r.AuthorID], IsSubscribed: subscribed[r.AuthorID]},
			Ingredients:      ingredients[r.ID],
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            r.Image,
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		}
		if detail.Tags == nil {
			detail.Tags = []models.Tag{}
		}
		if detail.Ingredients == nil {
			detail.Ingredients = []models.RecipeIngredient{}
		}
		result = append(result, detail)
	}
	return result, nil
}

func (s *RecipeService) dropImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.images.Remove(ctx, url); err != nil {
		logger.Log.Warnw("failed to remove image", "url", url, "error", err)
	}
}

// mapReferenceError reports a row that disappeared between validation and
// insert as a validation error.
func mapReferenceError(err error) error {
	if errors.Is(err, repositories.ErrReferenceNotFound) {
		return NewValidationError("non_field_errors", err.Error())
	}
	return err
}

// publishRecipeEvent publishes a recipe event to Kafka.
func (s *RecipeService) publishRecipeEvent(ctx context.Context, operation string, recipeID int64, authorID uuid.UUID) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "recipe_id", recipeID, "operation", operation)
		return
	}

	event := models.RecipeEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		RecipeID:  recipeID,
		AuthorID:  authorID.String(),
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal recipe event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(recipeID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish recipe event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Recipe event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}
