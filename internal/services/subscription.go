package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

//go:generate mockgen -source=subscription.go -destination=subscription_mock.go -package=services

// DefaultRecipesLimit caps the recipe preview of a subscription when the
// caller does not ask for a specific size.
const DefaultRecipesLimit = 10

// SubscriptionStore persists (author, subscriber) pairs.
type SubscriptionStore interface {
	Create(ctx context.Context, authorID, subscriberID uuid.UUID) (bool, error)
	Delete(ctx context.Context, authorID, subscriberID uuid.UUID) (bool, error)
	ListAuthors(ctx context.Context, subscriberID uuid.UUID, limit, offset int) ([]models.UserDB, int, error)
}

// AuthorRecipeReader previews an author's recipes.
type AuthorRecipeReader interface {
	ListShortByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]models.RecipeShort, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}

// SubscriptionService manages who follows whom.
type SubscriptionService struct {
	users   UserGetter
	subs    SubscriptionStore
	recipes AuthorRecipeReader
}

// NewSubscriptionService creates a SubscriptionService.
func NewSubscriptionService(users UserGetter, subs SubscriptionStore, recipes AuthorRecipeReader) *SubscriptionService {
	return &SubscriptionService{
		users:   users,
		subs:    subs,
		recipes: recipes,
	}
}

// Subscribe makes subscriber follow author and returns the author with a
// preview of recipesLimit recipes.
func (s *SubscriptionService) Subscribe(ctx context.Context, subscriberID, authorID uuid.UUID, recipesLimit int) (*models.Subscription, error) {
	author, err := s.author(ctx, subscriberID, authorID)
	if err != nil {
		return nil, err
	}

	created, err := s.subs.Create(ctx, authorID, subscriberID)
	if err != nil {
		logger.Log.Errorw("failed to create subscription", "author", authorID, "subscriber", subscriberID, "error", err)
		return nil, err
	}
	if !created {
		return nil, ErrAlreadySubscribed
	}

	logger.Log.Infow("subscribed", "author", authorID, "subscriber", subscriberID)
	return s.subscription(ctx, *author, true, recipesLimit)
}

// Unsubscribe removes the pair.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, subscriberID, authorID uuid.UUID) error {
	if _, err := s.author(ctx, subscriberID, authorID); err != nil {
		return err
	}

	deleted, err := s.subs.Delete(ctx, authorID, subscriberID)
	if err != nil {
		logger.Log.Errorw("failed to delete subscription", "author", authorID, "subscriber", subscriberID, "error", err)
		return err
	}
	if !deleted {
		return ErrSubscriptionNotFound
	}

	logger.Log.Infow("unsubscribed", "author", authorID, "subscriber", subscriberID)
	return nil
}

// ListSubscriptions returns one page of followed authors and their total count.
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, subscriberID uuid.UUID, limit, offset, recipesLimit int) ([]models.Subscription, int, error) {
	authors, total, err := s.subs.ListAuthors(ctx, subscriberID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list subscriptions", "subscriber", subscriberID, "error", err)
		return nil, 0, err
	}

	result := make([]models.Subscription, 0, len(authors))
	for _, a := range authors {
		sub, err := s.subscription(ctx, a, true, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *sub)
	}
	return result, total, nil
}

// author loads the author and rejects self-subscription.
func (s *SubscriptionService) author(ctx context.Context, subscriberID, authorID uuid.UUID) (*models.UserDB, error) {
	if subscriberID == authorID {
		return nil, ErrSelfSubscription
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to get author", "author", authorID, "error", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	return author, nil
}

func (s *SubscriptionService) subscription(ctx context.Context, author models.UserDB, subscribed bool, recipesLimit int) (*models.Subscription, error) {
	if recipesLimit <= 0 {
		recipesLimit = DefaultRecipesLimit
	}

	recipes, err := s.recipes.ListShortByAuthor(ctx, author.UserID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipes.CountByAuthor(ctx, author.UserID)
	if err != nil {
		return nil, err
	}

	return &models.Subscription{
		UserProfile:  models.UserProfile{UserDB: author, IsSubscribed: subscribed},
		Recipes:      recipes,
		RecipesCount: count,
	}, nil
}
