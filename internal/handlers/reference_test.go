package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/sbilibin2017/foodgram-backend/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestTagHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTagGetter(ctrl)

	t.Run("list", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return([]models.Tag{{ID: 1, Name: "Завтрак", Slug: "breakfast"}}, nil)

		w := httptest.NewRecorder()
		NewTagListHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tags/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Завтрак","slug":"breakfast"}]`, w.Body.String())
	})

	t.Run("empty list", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		NewTagListHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tags/", nil))

		assert.JSONEq(t, `[]`, w.Body.String())
	})

	tests := []struct {
		name         string
		id           string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "found",
			id:   "1",
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.Tag{ID: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing",
			id:   "9",
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), int64(9)).Return(nil, services.ErrTagNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "not a number",
			id:           "abc",
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/tags/"+tt.id+"/", nil), "id", tt.id)
			NewTagHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestIngredientHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockIngredientGetter(ctrl)

	t.Run("list by prefix", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), "мук").Return([]models.Ingredient{{ID: 3, Name: "мука", MeasurementUnit: "г"}}, nil)

		w := httptest.NewRecorder()
		NewIngredientListHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ingredients/?name=%D0%BC%D1%83%D0%BA", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":3,"name":"мука","measurement_unit":"г"}]`, w.Body.String())
	})

	t.Run("list error", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		NewIngredientListHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ingredients/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, services.ErrIngredientNotFound)

		w := httptest.NewRecorder()
		NewIngredientHandler(mockSvc).ServeHTTP(w, withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), "id", "3"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
