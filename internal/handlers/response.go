package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Not found
	Error string `json:"error"`
}

// ValidationErrorResponse lists messages per invalid field
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Messages keyed by field name
	Errors map[string][]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps a service error to its status code.
func writeError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: verr.Fields})
	case errors.Is(err, services.ErrAlreadySubscribed),
		errors.Is(err, services.ErrSelfSubscription),
		errors.Is(err, services.ErrAlreadyInFavorites),
		errors.Is(err, services.ErrAlreadyInShoppingCart),
		errors.Is(err, services.ErrShoppingCartEmpty),
		errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAuthenticationRequired):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRecipeNotFound),
		errors.Is(err, services.ErrTagNotFound),
		errors.Is(err, services.ErrIngredientNotFound),
		errors.Is(err, services.ErrSubscriptionNotFound),
		errors.Is(err, services.ErrNotInFavorites),
		errors.Is(err, services.ErrNotInShoppingCart):
		writeMessage(w, http.StatusNotFound, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// maxBodyBytes caps JSON request bodies, base64 images included.
const maxBodyBytes = 2621440

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// int64Param reads a positive integer URL parameter; a bad value is a 404.
func int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		writeMessage(w, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Not found")
		return uuid.Nil, false
	}
	return id, true
}

// Page is a page of results with links to its neighbours.
type Page[T any] struct {
	// Total number of results
	Count int `json:"count"`
	// URL of the next page
	Next *string `json:"next"`
	// URL of the previous page
	Previous *string `json:"previous"`
	// Results on this page
	Results []T `json:"results"`
}

// pagination reads "page" and "limit" query parameters.
type pagination struct {
	page  int
	limit int
}

func readPagination(r *http.Request, defaultLimit int) pagination {
	p := pagination{page: 1, limit: defaultLimit}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		p.page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		p.limit = v
	}
	return p
}

func (p pagination) offset() int {
	return (p.page - 1) * p.limit
}

func newPage[T any](r *http.Request, p pagination, count int, results []T) Page[T] {
	page := Page[T]{Count: count, Results: results}
	if page.Results == nil {
		page.Results = []T{}
	}
	if p.offset()+len(results) < count {
		page.Next = pageURL(r, p.page+1)
	}
	if p.page > 1 {
		page.Previous = pageURL(r, p.page-1)
	}
	return page
}

func pageURL(r *http.Request, page int) *string {
	u := url.URL{Path: r.URL.Path}
	q := r.URL.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
