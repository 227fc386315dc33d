package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"scriptvault/internal/events"
	"scriptvault/internal/observability"
	"scriptvault/internal/scripts/processor"
	"scriptvault/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore keeps scripts in memory and satisfies both ScriptStore and ScriptReader
type memoryStore struct {
	mu      sync.Mutex
	scripts map[uuid.UUID]store.Script
	counts  map[uuid.UUID]store.EventCounts
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		scripts: map[uuid.UUID]store.Script{},
		counts:  map[uuid.UUID]store.EventCounts{},
	}
}

func (m *memoryStore) CreateScript(_ context.Context, params store.CreateScriptParams) (store.Script, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	script := store.Script{
		ID:                 uuid.New(),
		Slug:               params.Slug,
		Title:              params.Title,
		Description:        params.Description,
		ScriptContent:      params.ScriptContent,
		GameName:           params.GameName,
		GameLink:           params.GameLink,
		BackgroundImageURL: params.BackgroundImageURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	m.scripts[script.ID] = script
	return script, nil
}

func (m *memoryStore) UpdateScript(_ context.Context, id uuid.UUID, params store.UpdateScriptParams) (store.Script, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	script, ok := m.scripts[id]
	if !ok {
		return store.Script{}, store.ErrNotFound
	}
	script.Title = params.Title
	script.ScriptContent = params.ScriptContent
	script.Description = params.Description
	script.GameName = params.GameName
	script.GameLink = params.GameLink
	script.BackgroundImageURL = params.BackgroundImageURL
	script.UpdatedAt = time.Now().UTC()
	m.scripts[id] = script
	return script, nil
}

func (m *memoryStore) DeleteScript(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.scripts, id)
	return nil
}

func (m *memoryStore) ListScripts(context.Context) ([]store.Script, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	scripts := make([]store.Script, 0, len(m.scripts))
	for _, s := range m.scripts {
		scripts = append(scripts, s)
	}
	return scripts, nil
}

func (m *memoryStore) GetScriptBySlug(_ context.Context, slug string) (store.Script, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.scripts {
		if s.Slug == slug {
			return s, nil
		}
	}
	return store.Script{}, store.ErrNotFound
}

func (m *memoryStore) GetScriptEventCounts(_ context.Context, id uuid.UUID) (store.EventCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[id], nil
}

func (m *memoryStore) GetEventTotals(context.Context) (store.EventCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var totals store.EventCounts
	for _, c := range m.counts {
		totals.Views += c.Views
		totals.Copies += c.Copies
	}
	return totals, nil
}

func setupRouter(t *testing.T) (*gin.Engine, *memoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := newMemoryStore()
	logger := observability.NewNopLogger()
	h := New(processor.New(mem, mem, events.NoopPublisher{}, logger), logger)

	r := gin.New()
	r.GET("/scripts", h.HandleListScripts)
	r.GET("/scripts/:slug", h.HandleGetScript)
	r.POST("/admin/scripts", h.HandleCreateScript)
	r.PUT("/admin/scripts", h.HandleUpdateScript)
	r.DELETE("/admin/scripts", h.HandleDeleteScript)
	return r, mem
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

type scriptResponse struct {
	OK     bool         `json:"ok"`
	Script store.Script `json:"script"`
}

func TestHandleCreateScript(t *testing.T) {
	t.Run("creates script", func(t *testing.T) {
		r, mem := setupRouter(t)

		w := doJSON(r, http.MethodPost, "/admin/scripts", `{"title":"Test","script_content":"print(1)","game_name":"Blox Fruits"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp scriptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Regexp(t, `^test-[0-9a-z]{5}$`, resp.Script.Slug)
		assert.Equal(t, resp.Script.CreatedAt, resp.Script.UpdatedAt)
		require.NotNil(t, resp.Script.GameName)
		assert.Equal(t, "Blox Fruits", *resp.Script.GameName)
		assert.Len(t, mem.scripts, 1)
	})

	t.Run("missing content", func(t *testing.T) {
		r, mem := setupRouter(t)

		w := doJSON(r, http.MethodPost, "/admin/scripts", `{"title":"Test"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "CONTENT_REQUIRED")
		assert.Empty(t, mem.scripts)
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := doJSON(r, http.MethodPost, "/admin/scripts", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleUpdateScript(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/admin/scripts", `{"title":"Test","script_content":"print(1)"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created scriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	t.Run("updates fields and keeps slug", func(t *testing.T) {
		body := `{"id":"` + created.Script.ID.String() + `","title":"Renamed","script_content":"print(2)"}`
		w := doJSON(r, http.MethodPut, "/admin/scripts", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp scriptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Renamed", resp.Script.Title)
		assert.Equal(t, created.Script.Slug, resp.Script.Slug)
		assert.False(t, resp.Script.UpdatedAt.Before(resp.Script.CreatedAt))
	})

	t.Run("unknown id", func(t *testing.T) {
		body := `{"id":"` + uuid.New().String() + `","title":"Renamed","script_content":"print(2)"}`
		w := doJSON(r, http.MethodPut, "/admin/scripts", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/admin/scripts", `{"title":"Renamed","script_content":"print(2)"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/admin/scripts", `{"id":"42","title":"Renamed","script_content":"print(2)"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_SCRIPT_ID")
	})
}

func TestHandleDeleteScript(t *testing.T) {
	r, mem := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/admin/scripts", `{"title":"Test","script_content":"print(1)"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created scriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodDelete, "/admin/scripts", `{"id":"`+created.Script.ID.String()+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Empty(t, mem.scripts)

	// repeated delete still succeeds
	w = doJSON(r, http.MethodDelete, "/admin/scripts", `{"id":"`+created.Script.ID.String()+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleGetScript(t *testing.T) {
	r, mem := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/admin/scripts", `{"title":"Auto Farm","script_content":"print(1)"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created scriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	mem.counts[created.Script.ID] = store.EventCounts{Views: 7, Copies: 2}

	t.Run("found", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/scripts/"+created.Script.Slug, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page processor.ScriptWithCounts
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, created.Script.ID, page.Script.ID)
		assert.Equal(t, 7, page.Counts.Views)
		assert.Equal(t, 2, page.Counts.Copies)
	})

	t.Run("not found", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/scripts/nope-12345", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("listing carries totals", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/scripts", "")
		require.Equal(t, http.StatusOK, w.Code)

		var listing processor.ScriptListing
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
		assert.Len(t, listing.Scripts, 1)
		assert.Equal(t, 7, listing.Totals.Views)
		assert.Equal(t, 2, listing.Totals.Copies)
	})
}
