package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"facility-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIdentity_HeaderReachesContext(t *testing.T) {
	var gotID int64
	var gotOK bool

	handler := Identity(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = utils.GetActorIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, gotOK)
	assert.Equal(t, int64(42), gotID)
}

func TestIdentity_MalformedHeaderIgnored(t *testing.T) {
	var gotOK bool

	handler := Identity(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotOK = utils.GetActorIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "not-a-number")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, gotOK)
}

func TestRequireIdentity_RejectsAnonymous(t *testing.T) {
	called := false
	handler := RequireIdentity(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireIdentity_PassesWithActor(t *testing.T) {
	called := false
	handler := RequireIdentity(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.SetActorContext(req.Context(), 5))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, called)
}
