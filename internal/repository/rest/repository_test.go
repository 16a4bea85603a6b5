package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-client/internal/converter"
)

// newTestRepository создает репозиторий поверх httptest сервера
func newTestRepository(t *testing.T, handler http.HandlerFunc) *repo {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewRepository(Options{
		BaseURL:    srv.URL,
		Collection: "notes",
		APIKey:     "test-api-key",
		Secret:     "test-secret",
	}).(*repo)
}

func TestList_SendsContractRequest(t *testing.T) {
	ctx := context.Background()

	r := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		// Arrange проверяется прямо здесь: метод, путь, фильтр, заголовки
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/notes", req.URL.Path)
		assert.Equal(t, "select=*", req.URL.RawQuery)
		assert.Equal(t, "test-api-key", req.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-secret", req.Header.Get("Authorization"))

		fmt.Fprint(w, `[
			{"id":"a","title":"First","content":"aaa","updated_at":"2024-06-01T12:00:00Z"},
			{"id":"b","title":"Second","content":""}
		]`)
	})

	notes, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	assert.Equal(t, "a", notes[0].ID)
	assert.Equal(t, "First", notes[0].Title)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), notes[0].UpdatedAt)

	// Отсутствующая временная метка дает нулевое время
	assert.True(t, notes[1].UpdatedAt.IsZero())
}

func TestList_EmptyCollection(t *testing.T) {
	ctx := context.Background()

	r := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	notes, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestList_ServerError(t *testing.T) {
	ctx := context.Background()

	r := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := r.List(ctx)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestCreate_GeneratesIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	var received converter.NoteRecord
	r := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/notes", req.URL.Path)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, "return=minimal", req.Header.Get("Prefer"))

		assert.NoError(t, json.NewDecoder(req.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	})
	r.nowFunc = func() time.Time { return now }

	note, err := r.Create(ctx, "Groceries", "milk, eggs")
	require.NoError(t, err)

	// Идентификатор — свежий UUID, отправлен в теле запроса
	_, parseErr := uuid.Parse(note.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, note.ID, received.ID)
	assert.Equal(t, "Groceries", received.Title)
	assert.Equal(t, "milk, eggs", received.Content)
	assert.Equal(t, "2024-06-01T12:00:00Z", received.UpdatedAt)
	assert.Equal(t, now, note.UpdatedAt)
}

func TestCreate_FreshIDPerNote(t *testing.T) {
	ctx := context.Background()

	r := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	first, err := r.Create(ctx, "One", "")
	require.NoError(t, err)
	second, err := r.Create(ctx, "Two", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreate_ServerError(t *testing.T) {
	ctx := context.Background()

	r := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := r.Create(ctx, "Groceries", "milk")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
}

func TestUpdate_PatchesByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	var received map[string]any
	r := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/notes", req.URL.Path)
		assert.Equal(t, "id=eq.abc-123", req.URL.RawQuery)

		assert.NoError(t, json.NewDecoder(req.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	})
	r.nowFunc = func() time.Time { return now }

	note, err := r.Update(ctx, "abc-123", "New title", "new content")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", note.ID)

	// Идентификатор идет в фильтре, а не в теле
	assert.NotContains(t, received, "id")
	assert.Equal(t, "New title", received["title"])
	assert.Equal(t, "new content", received["content"])
	assert.Equal(t, "2024-06-01T12:00:00Z", received["updated_at"])
}

func TestDelete_ByID(t *testing.T) {
	ctx := context.Background()

	r := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/notes", req.URL.Path)
		assert.Equal(t, "id=eq.abc-123", req.URL.RawQuery)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, r.Delete(ctx, "abc-123"))
}

func TestDelete_ServerError(t *testing.T) {
	ctx := context.Background()

	r := newTestRepository(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := r.Delete(ctx, "abc-123")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}
