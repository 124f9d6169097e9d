package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSavesToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body["username"])
		json.NewEncoder(w).Encode(LoginResult{Token: "tok-123", User: Admin{ID: 1, Username: "admin"}})
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	c := New(server.URL, store)

	result, err := c.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", result.Token)
	assert.Equal(t, "tok-123", store.Token())
	assert.True(t, c.LoggedIn())
}

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("tok-456"))
	c := New(server.URL, store)

	_, err := c.ListImages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-456", gotAuth)
}

func TestUnauthorizedClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid or expired token"}`))
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("stale"))

	intercepted := 0
	c := New(server.URL, store)
	c.OnUnauthorized = func() { intercepted++ }

	_, err := c.ListImages(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, intercepted)
	assert.Empty(t, store.Token(), "401 wipes the stored token")
}

func TestLoginFailureSkipsInterceptor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid username or password"}`))
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("existing"))

	c := New(server.URL, store)
	c.OnUnauthorized = func() { t.Fatal("interceptor must not fire on a login attempt") }

	_, err := c.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, "existing", store.Token(), "failed login leaves the session alone")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
}

func TestAPIErrorMessageFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryTokenStore())
	err := c.Health(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Error())
}

func TestUploadImagesMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "7", r.FormValue("jewelry_id"))
		files := r.MultipartForm.File["images"]
		require.Len(t, files, 2, "every file goes under the same form field")
		assert.Equal(t, "a.jpg", files[0].Filename)
		assert.Equal(t, "b.jpg", files[1].Filename)

		f, err := files[0].Open()
		require.NoError(t, err)
		defer f.Close()
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "first", string(content))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"images":[{"id":1},{"id":2}]}`))
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryTokenStore())
	jewelryID := int64(7)
	images, err := c.UploadImages(context.Background(), []UploadFile{
		{Name: "a.jpg", Reader: strings.NewReader("first")},
		{Name: "b.jpg", Reader: strings.NewReader("second")},
	}, &jewelryID)
	require.NoError(t, err)
	assert.Len(t, images, 2)
}

func TestLogoutClearsStore(t *testing.T) {
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("tok"))

	c := New("http://localhost:0", store)
	require.NoError(t, c.Logout())
	assert.False(t, c.LoggedIn())
}
