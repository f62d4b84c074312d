package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/infrastructure/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, token string) *session.Session {
	t.Helper()
	s := session.New(session.NewMemoryStorage(), nil)
	if token != "" {
		require.NoError(t, s.Save(context.Background(), token, &entity.User{ID: "1", Username: "admin", Role: "admin"}))
	}
	return s
}

func TestClient_AttachesBearerAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/api/patients", r.URL.Path)
		assert.Equal(t, "female", r.URL.Query().Get("gender"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"1","name":"Ann"}],"total":1,"page":1,"limit":10}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/api", time.Second, newSession(t, "tok-123"), nil)
	require.NoError(t, err)

	var page entity.Page[entity.Patient]
	err = c.Get(context.Background(), "/patients", url.Values{"gender": {"female"}}, &page)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "Ann", page.Items[0].Name)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"username":"admin","password":"x"}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, err := New(ts.URL, time.Second, newSession(t, ""), nil)
	require.NoError(t, err)

	err = c.Post(context.Background(), "/auth/login", map[string]string{"username": "admin", "password": "x"}, nil)
	assert.NoError(t, err)
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	sess := newSession(t, "stale")
	redirected := 0
	c, err := New(ts.URL, time.Second, sess, nil, WithUnauthorizedHandler(func() { redirected++ }))
	require.NoError(t, err)

	err = c.Get(context.Background(), "/doctors", nil, nil)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, 1, redirected)
	assert.False(t, sess.IsAuthenticated(context.Background()))
	assert.Nil(t, sess.User(context.Background()))
}

func TestClient_ServerErrorPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer ts.Close()

	sess := newSession(t, "tok")
	c, err := New(ts.URL, time.Second, sess, nil)
	require.NoError(t, err)

	err = c.Delete(context.Background(), "/patients/1", nil)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "boom")
	assert.True(t, sess.IsAuthenticated(context.Background()))
}

func TestClient_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c, err := New(ts.URL, 50*time.Millisecond, newSession(t, ""), nil)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/dashboard/stats", nil, nil)
	assert.Error(t, err)
}

func TestClient_KeepsDotSegments(t *testing.T) {
	var received []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = append(received, r.Method+" "+r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/api/", time.Second, newSession(t, ""), nil)
	require.NoError(t, err)

	for _, path := range []string{
		"/patients/..",
		"/patients/1/documents/%2E%2E",
		"/patients/a%2Fb",
		"patients/7",
	} {
		require.NoError(t, c.Delete(context.Background(), path, nil), path)
	}

	assert.Equal(t, []string{
		"DELETE /api/patients/..",
		"DELETE /api/patients/1/documents/%2E%2E",
		"DELETE /api/patients/a%2Fb",
		"DELETE /api/patients/7",
	}, received)
}

func TestClient_RejectsMalformedEscape(t *testing.T) {
	c, err := New("http://localhost:1/api", time.Second, newSession(t, ""), nil)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/patients/%zz", nil, nil)
	assert.Error(t, err)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New("not a url", time.Second, newSession(t, ""), nil)
	assert.Error(t, err)
}
