package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fableration/site-backend/auth"
	"github.com/fableration/site-backend/database"
	"github.com/fableration/site-backend/storage"
)

type testServer struct {
	*httptest.Server
	token string
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	database.EnsureSchema(db)
	require.NoError(t, database.EnsureSeedAdmin(db, "admin@example.com", "test-password"))

	jwt, err := auth.New("test-secret", time.Hour)
	require.NoError(t, err)

	router := newRouter(database.New(db),
		withConfig(map[string]string{}),
		withStartupTime(time.Now()),
		withTokenSigner(jwt),
		withUploadStorage(storage.NewLocal(t.TempDir(), "http://localhost")),
	)

	token, err := jwt.Sign(auth.Identity{UserID: 1, Email: "admin@example.com", Role: "admin"})
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return testServer{Server: srv, token: token}
}

func (s testServer) do(t *testing.T, method, path string, body any, authed bool) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCreateBlogRequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/blogs", map[string]any{"title": "Nope"}, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateBlogDerivesSlug(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/blogs", map[string]any{
		"title":   "Sample Blog Title!!!",
		"content": "body",
	}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created BlogWithRelations
	decodeBody(t, resp, &created)
	assert.Equal(t, "sample-blog-title", created.Slug)

	// A second blog with the same derived base slug takes the next suffix.
	resp = srv.do(t, http.MethodPost, "/api/blogs", map[string]any{
		"title":   "Sample Blog Title!!!",
		"content": "body",
	}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var second BlogWithRelations
	decodeBody(t, resp, &second)
	assert.Equal(t, "sample-blog-title-1", second.Slug)
}

func TestGetBlogByIDAndSlugReturnIdenticalPayloads(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/blogs", map[string]any{
		"title":   "Identical Payloads",
		"content": "body",
	}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created BlogWithRelations
	decodeBody(t, resp, &created)

	byID := srv.do(t, http.MethodGet, fmt.Sprintf("/api/blogs/%d", created.ID), nil, false)
	require.Equal(t, http.StatusOK, byID.StatusCode)
	var fromID json.RawMessage
	decodeBody(t, byID, &fromID)

	bySlug := srv.do(t, http.MethodGet, "/api/blogs/"+created.Slug, nil, false)
	require.Equal(t, http.StatusOK, bySlug.StatusCode)
	var fromSlug json.RawMessage
	decodeBody(t, bySlug, &fromSlug)

	assert.JSONEq(t, string(fromID), string(fromSlug))
}

func TestUpdateBlogKeepsSlugWhenTitleUnchanged(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/blogs", map[string]any{
		"title":   "Stable Links",
		"content": "v1",
	}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created BlogWithRelations
	decodeBody(t, resp, &created)
	require.Equal(t, "stable-links", created.Slug)

	resp = srv.do(t, http.MethodPut, fmt.Sprintf("/api/blogs/%d", created.ID), map[string]any{
		"title":   "Stable Links",
		"content": "v2",
	}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated BlogWithRelations
	decodeBody(t, resp, &updated)
	assert.Equal(t, "stable-links", updated.Slug)
	assert.Equal(t, "v2", updated.Content)

	resp = srv.do(t, http.MethodPut, fmt.Sprintf("/api/blogs/%d", created.ID), map[string]any{
		"title":   "Renamed Links",
		"content": "v3",
	}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var renamed BlogWithRelations
	decodeBody(t, resp, &renamed)
	assert.Equal(t, "renamed-links", renamed.Slug)
}

func TestCreateBlogWithoutTitleGetsFallbackSlug(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/blogs", map[string]any{"content": "body only"}, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created BlogWithRelations
	decodeBody(t, resp, &created)
	assert.Empty(t, created.Title)
	assert.True(t, strings.HasPrefix(created.Slug, "post-"), "slug %q should use the time-based fallback", created.Slug)
}

func TestUpdateBlogClearingTitleRecomputesFallbackSlug(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/blogs", map[string]any{"title": "Soon Untitled"}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created BlogWithRelations
	decodeBody(t, resp, &created)
	resp.Body.Close()

	resp = srv.do(t, http.MethodPut, fmt.Sprintf("/api/blogs/%d", created.ID), map[string]any{"content": "title removed"}, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated BlogWithRelations
	decodeBody(t, resp, &updated)
	assert.Empty(t, updated.Title)
	assert.True(t, strings.HasPrefix(updated.Slug, "post-"), "slug %q should use the time-based fallback", updated.Slug)
}

func TestGetMissingBlogReturns404(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodGet, "/api/blogs/no-such-slug", nil, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
