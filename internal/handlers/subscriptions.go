package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

//go:generate mockgen -source=subscriptions.go -destination=subscriptions_mock.go -package=handlers

// DefaultPageSize is the page size used when the request does not set "limit".
const DefaultPageSize = 6

// Subscriber follows and unfollows authors.
type Subscriber interface {
	Subscribe(ctx context.Context, subscriberID, authorID uuid.UUID, recipesLimit int) (*models.Subscription, error)
	Unsubscribe(ctx context.Context, subscriberID, authorID uuid.UUID) error
}

// SubscriptionLister lists the authors a user follows.
type SubscriptionLister interface {
	ListSubscriptions(ctx context.Context, subscriberID uuid.UUID, limit, offset, recipesLimit int) ([]models.Subscription, int, error)
}

// recipesLimit reads the "recipes_limit" query parameter; 0 means the default.
func recipesLimit(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("recipes_limit"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NewSubscribeHandler subscribes the current user to an author.
// @Summary Subscribe to an author
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Author ID"
// @Param recipes_limit query int false "Recipes in the preview"
// @Success 201 {object} models.Subscription
// @Failure 400 {object} handlers.ErrorResponse "Self subscription or already subscribed"
// @Failure 404 {object} handlers.ErrorResponse "Unknown author"
// @Router /users/{id}/subscribe/ [post]
func NewSubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		authorID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		sub, err := svc.Subscribe(r.Context(), userID, authorID, recipesLimit(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sub)
	}
}

// NewUnsubscribeHandler removes a subscription.
// @Summary Unsubscribe from an author
// @Tags users
// @Security BearerAuth
// @Param id path string true "Author ID"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse "No such subscription"
// @Router /users/{id}/subscribe/ [delete]
func NewUnsubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		authorID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Unsubscribe(r.Context(), userID, authorID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewSubscriptionsHandler lists followed authors, paginated.
// @Summary My subscriptions
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param recipes_limit query int false "Recipes per author"
// @Success 200 {object} handlers.Page[models.Subscription]
// @Router /users/subscriptions/ [get]
func NewSubscriptionsHandler(svc SubscriptionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		p := readPagination(r, DefaultPageSize)
		subs, total, err := svc.ListSubscriptions(r.Context(), userID, p.limit, p.offset(), recipesLimit(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newPage(r, p, total, subs))
	}
}
