package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/multiuser-calendar/internal/auth"
	"github.com/ayush/multiuser-calendar/internal/middleware"
)

type fakeSessions struct {
	byID map[string]int64
	err  error
}

func (f *fakeSessions) Create(_ context.Context, userID int64) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeSessions) Get(_ context.Context, sessionID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.byID[sessionID], nil
}

func (f *fakeSessions) Delete(_ context.Context, sessionID string) error {
	delete(f.byID, sessionID)
	return nil
}

func guarded(sessions auth.Sessions, called *bool, gotUserID *int64) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if id, ok := auth.UserIDFrom(r.Context()); ok {
			*gotUserID = id
		}
	})
	return middleware.RequireAuth(sessions)(next)
}

func TestRequireAuth_NoCookieRedirects(t *testing.T) {
	var called bool
	var userID int64
	h := guarded(&fakeSessions{byID: map[string]int64{}}, &called, &userID)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calendar", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.False(t, called)
}

func TestRequireAuth_UnknownSessionRedirects(t *testing.T) {
	var called bool
	var userID int64
	h := guarded(&fakeSessions{byID: map[string]int64{}}, &called, &userID)

	req := httptest.NewRequest(http.MethodGet, "/calendar", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "stale"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.False(t, called)
}

func TestRequireAuth_SessionStoreErrorRedirects(t *testing.T) {
	var called bool
	var userID int64
	h := guarded(&fakeSessions{err: errors.New("redis down")}, &called, &userID)

	req := httptest.NewRequest(http.MethodGet, "/calendar", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "sid-1"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.False(t, called)
}

func TestRequireAuth_ValidSessionInjectsUserID(t *testing.T) {
	var called bool
	var userID int64
	h := guarded(&fakeSessions{byID: map[string]int64{"sid-1": 42}}, &called, &userID)

	req := httptest.NewRequest(http.MethodGet, "/calendar", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "sid-1"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), userID)
}
