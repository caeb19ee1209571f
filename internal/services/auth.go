package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.NewUser) (uuid.UUID, bool, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// Registration carries the fields of a sign-up request.
type Registration struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register registers a new user.
func (svc *AuthService) Register(ctx context.Context, reg Registration) (*models.UserDB, error) {
	email := strings.ToLower(reg.Email)

	exists, err := svc.reader.ExistsByUsernameOrEmail(ctx, reg.Username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Infow("user already exists", "username", reg.Username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	userID, created, err := svc.writer.Save(ctx, models.NewUser{
		Username:     reg.Username,
		Email:        email,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	if !created {
		return nil, ErrUserAlreadyExists
	}

	return &models.UserDB{
		UserID:    userID,
		Username:  reg.Username,
		Email:     email,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
	}, nil
}

// Login authenticates a user by email and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
