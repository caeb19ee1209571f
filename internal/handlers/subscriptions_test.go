package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/sbilibin2017/foodgram-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSubscriber(ctrl)
	userID := uuid.New()
	authorID := uuid.New()

	tests := []struct {
		name         string
		query        string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:  "success with recipes limit",
			query: "?recipes_limit=2",
			mockSetup: func() {
				mockSvc.EXPECT().
					Subscribe(gomock.Any(), userID, authorID, 2).
					Return(&models.Subscription{
						UserProfile:  models.UserProfile{UserDB: models.UserDB{UserID: authorID}, IsSubscribed: true},
						Recipes:      []models.RecipeShort{{ID: 1}, {ID: 2}},
						RecipesCount: 5,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:  "bad recipes limit falls back to default",
			query: "?recipes_limit=abc",
			mockSetup: func() {
				mockSvc.EXPECT().
					Subscribe(gomock.Any(), userID, authorID, 0).
					Return(&models.Subscription{}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "already subscribed",
			mockSetup: func() {
				mockSvc.EXPECT().
					Subscribe(gomock.Any(), userID, authorID, 0).
					Return(nil, services.ErrAlreadySubscribed)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "self subscription",
			mockSetup: func() {
				mockSvc.EXPECT().
					Subscribe(gomock.Any(), userID, authorID, 0).
					Return(nil, services.ErrSelfSubscription)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown author",
			mockSetup: func() {
				mockSvc.EXPECT().
					Subscribe(gomock.Any(), userID, authorID, 0).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/users/"+authorID.String()+"/subscribe/"+tt.query, nil)
			req = withUser(withURLParams(req, "id", authorID.String()), userID)
			w := httptest.NewRecorder()
			NewSubscribeHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}

	t.Run("response body", func(t *testing.T) {
		mockSvc.EXPECT().
			Subscribe(gomock.Any(), userID, authorID, 0).
			Return(&models.Subscription{
				UserProfile:  models.UserProfile{UserDB: models.UserDB{UserID: authorID, Username: "chef"}, IsSubscribed: true},
				Recipes:      []models.RecipeShort{{ID: 7, Name: "Soup", CookingTime: 20}},
				RecipesCount: 1,
			}, nil)

		req := withUser(withURLParams(httptest.NewRequest(http.MethodPost, "/", nil), "id", authorID.String()), userID)
		w := httptest.NewRecorder()
		NewSubscribeHandler(mockSvc).ServeHTTP(w, req)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "chef", body["username"])
		assert.Equal(t, true, body["is_subscribed"])
		assert.Equal(t, float64(1), body["recipes_count"])
		assert.Len(t, body["recipes"], 1)
	})
}

func TestUnsubscribeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSubscriber(ctrl)
	userID := uuid.New()
	authorID := uuid.New()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "success", err: nil, expectedCode: http.StatusNoContent},
		{name: "no such subscription", err: services.ErrSubscriptionNotFound, expectedCode: http.StatusNotFound},
		{name: "self", err: services.ErrSelfSubscription, expectedCode: http.StatusBadRequest},
		{name: "internal error", err: errors.New("boom"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.EXPECT().Unsubscribe(gomock.Any(), userID, authorID).Return(tt.err)

			req := withUser(withURLParams(httptest.NewRequest(http.MethodDelete, "/", nil), "id", authorID.String()), userID)
			w := httptest.NewRecorder()
			NewUnsubscribeHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSubscriptionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSubscriptionLister(ctrl)
	userID := uuid.New()

	mockSvc.EXPECT().
		ListSubscriptions(gomock.Any(), userID, 2, 2, 3).
		Return([]models.Subscription{{RecipesCount: 1}, {RecipesCount: 2}}, 5, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/subscriptions/?page=2&limit=2&recipes_limit=3", nil)
	w := httptest.NewRecorder()
	NewSubscriptionsHandler(mockSvc).ServeHTTP(w, withUser(req, userID))

	require.Equal(t, http.StatusOK, w.Code)

	var page Page[models.Subscription]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 5, page.Count)
	assert.Len(t, page.Results, 2)
	assert.NotNil(t, page.Next)
	assert.NotNil(t, page.Previous)
}
