package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("project", "42"), http.StatusNotFound},
		{"invalid", NewInvalidInput("bad body", nil), http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("no token", nil), http.StatusUnauthorized},
		{"permission", NewPermissionDenied("not owner"), http.StatusForbidden},
		{"conflict", NewConflict("blog post", "slug", "hello"), http.StatusConflict},
		{"rate limited", NewTooManyRequests("contact"), http.StatusTooManyRequests},
		{"unavailable", NewUnavailable("denylist", errors.New("redis down")), http.StatusServiceUnavailable},
		{"internal", NewInternal("db down", errors.New("boom")), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("update skill failed: %w", NewNotFound("skill", "7")), http.StatusNotFound},
		{"plain", errors.New("unknown"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestInvalidInputKeepsValidationMessage(t *testing.T) {
	err := NewInvalidInput("project validation failed", errors.New("title is required"))

	assert.Equal(t, "title is required", err.Message)
	assert.Equal(t, "invalid input", err.ToJSON()["error"])
	assert.ErrorIs(t, err, ErrInvalidInput)
}
