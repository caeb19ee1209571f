package handlers

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/middlewares"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/sbilibin2017/foodgram-backend/internal/services"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// Registerer creates user accounts.
type Registerer interface {
	Register(ctx context.Context, reg services.Registration) (*models.UserDB, error)
}

// Loginer exchanges credentials for a token.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// ProfileGetter returns a user as seen by a viewer.
type ProfileGetter interface {
	Profile(ctx context.Context, viewer *uuid.UUID, userID uuid.UUID) (*models.UserProfile, error)
}

// AvatarManager sets and clears the current user's avatar.
type AvatarManager interface {
	SetAvatar(ctx context.Context, userID uuid.UUID, data string) (string, error)
	DeleteAvatar(ctx context.Context, userID uuid.UUID) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: vivanov@yandex.ru
	Email string `json:"email" validate:"required,email,max=254"`

	// Username
	// required: true
	// default: vasya.ivanov
	Username string `json:"username" validate:"required,max=150,username"`

	// First name
	// required: true
	// default: Вася
	FirstName string `json:"first_name" validate:"required,max=150"`

	// Last name
	// required: true
	// default: Иванов
	LastName string `json:"last_name" validate:"required,max=150"`

	// Password
	// required: true
	// default: MySecretPas$word
	Password string `json:"password" validate:"required,max=150"`
}

// RegisterResponse represents a registered user
// swagger:model RegisterResponse
type RegisterResponse struct {
	Email     string    `json:"email"`
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// LoginRequest represents the JSON body for obtaining a token
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token
// swagger:model LoginResponse
type LoginResponse struct {
	Token string `json:"auth_token"`
}

// AvatarRequest carries a base64 encoded image
// swagger:model AvatarRequest
type AvatarRequest struct {
	// Data URI, e.g. data:image/png;base64,...
	// required: true
	Avatar string `json:"avatar"`
}

// AvatarResponse returns the stored avatar URL
// swagger:model AvatarResponse
type AvatarResponse struct {
	Avatar string `json:"avatar"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid fields"
// @Router /users/ [post]
func NewRegisterHandler(svc Registerer, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := validate.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, validationErrors(err))
			return
		}

		user, err := svc.Register(r.Context(), services.Registration{
			Username:  req.Username,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Password:  req.Password,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Email:     user.Email,
			ID:        user.UserID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
	}
}

// NewLoginHandler returns an HTTP handler that issues auth tokens.
// @Summary Obtain an auth token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Credentials"
// @Success 200 {object} handlers.LoginResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /auth/token/login/ [post]
func NewLoginHandler(svc Loginer, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := validate.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, validationErrors(err))
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

// NewMeHandler returns the current user's profile.
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} handlers.ErrorResponse
// @Router /users/me/ [get]
func NewMeHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		profile, err := svc.Profile(r.Context(), &userID, userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// NewProfileHandler returns a user's public profile.
// @Summary User profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id}/ [get]
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		profile, err := svc.Profile(r.Context(), middlewares.UserIDFromContext(r.Context()), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// NewSetAvatarHandler stores a new avatar for the current user.
// @Summary Set avatar
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param avatarRequest body handlers.AvatarRequest true "Avatar"
// @Success 200 {object} handlers.AvatarResponse
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Router /users/me/avatar/ [put]
func NewSetAvatarHandler(svc AvatarManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req AvatarRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		url, err := svc.SetAvatar(r.Context(), userID, req.Avatar)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, AvatarResponse{Avatar: url})
	}
}

// NewDeleteAvatarHandler clears the current user's avatar.
// @Summary Delete avatar
// @Tags users
// @Security BearerAuth
// @Success 204
// @Router /users/me/avatar/ [delete]
func NewDeleteAvatarHandler(svc AvatarManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteAvatar(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// currentUser returns the authenticated user or writes 401.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id := middlewares.UserIDFromContext(r.Context())
	if id == nil {
		writeError(w, services.ErrAuthenticationRequired)
		return uuid.Nil, false
	}
	return *id, true
}
