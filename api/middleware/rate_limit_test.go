package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubLimiterStore struct {
	counts map[string]int64
}

func newStubLimiterStore() *stubLimiterStore {
	return &stubLimiterStore{counts: map[string]int64{}}
}

func (s *stubLimiterStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	s.counts[key]++
	return s.counts[key], nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func postForm(handler http.Handler, username string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/Token", strings.NewReader("username="+username+"&password=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "10.1.2.3:5555"
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func TestAuthRateLimitBlocksAfterIPLimit(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 2, 0)
	handler := AuthRateLimit(policy, newStubLimiterStore(), nil)(okHandler())

	assert.Equal(t, http.StatusOK, postForm(handler, "a").Code)
	assert.Equal(t, http.StatusOK, postForm(handler, "b").Code)
	assert.Equal(t, http.StatusTooManyRequests, postForm(handler, "c").Code)
}

func TestAuthRateLimitKeysOnUsername(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 0, 1)
	handler := AuthRateLimit(policy, newStubLimiterStore(), nil)(okHandler())

	assert.Equal(t, http.StatusOK, postForm(handler, "avery").Code)
	assert.Equal(t, http.StatusTooManyRequests, postForm(handler, "avery").Code)
	// a different username keeps its own counter
	assert.Equal(t, http.StatusOK, postForm(handler, "blake").Code)
}

func TestAuthRateLimitReadsJSONUsername(t *testing.T) {
	policy := NewAuthRateLimitPolicy("register", time.Minute, 0, 1)
	store := newStubLimiterStore()
	handler := AuthRateLimit(policy, store, nil)(okHandler())

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"avery","password":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		return resp
	}

	assert.Equal(t, http.StatusOK, post().Code)
	assert.Equal(t, http.StatusTooManyRequests, post().Code)
}

func TestAuthRateLimitRestoresBodyForNextHandler(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 0, 5)
	var seenBody string
	handler := AuthRateLimit(policy, newStubLimiterStore(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err == nil {
			seenBody = r.PostFormValue("username")
		}
		w.WriteHeader(http.StatusOK)
	}))

	postForm(handler, "avery")
	assert.Equal(t, "avery", seenBody)
}

func TestAuthRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", 0, 0, 0)
	handler := AuthRateLimit(policy, newStubLimiterStore(), nil)(okHandler())

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, postForm(handler, "avery").Code)
	}
}
