// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEntryID = "7d444840-9dc0-41c4-8a5e-b6f2e1a0c3d7"

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func strPtr(s string) *string { return &s }

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:7000", want: "http://localhost:7000"},
		{name: "with scheme", raw: "https://journal.local/", want: "https://journal.local"},
		{name: "surrounding spaces", raw: "  127.0.0.1:8080 ", want: "http://127.0.0.1:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "only spaces", raw: "   ", wantErr: true},
		{name: "scheme without host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, a)
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/entry", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.JournalRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Trip", *req.Title)
		assert.Equal(t, []string{"travel", "outdoors"}, req.Tags)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.IDResponse{ID: testEntryID})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	id, err := a.Create(context.Background(), models.JournalRequest{
		Title: strPtr("Trip"),
		Body:  strPtr("Went hiking"),
		Tags:  []string{"travel", "outdoors"},
	})

	require.NoError(t, err)
	assert.Equal(t, testEntryID, id)
}

func TestCreate_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Create(context.Background(), models.JournalRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Invalid JSON was passed")
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	want := models.Journal{ID: testEntryID, Title: strPtr("Trip"), Tags: []string{"travel"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/entry/"+testEntryID, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Get(context.Background(), testEntryID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "error getting journal entry", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Get(context.Background(), testEntryID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── List ────────────────────────────────────────────────────────────────────

func TestList_NoFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/entries", r.URL.Path)
		_, present := r.URL.Query()["tag"]
		assert.False(t, present)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Journal{{ID: testEntryID}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.List(context.Background(), models.ListFilter{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, testEntryID, got[0].ID)
}

func TestList_TagFilter(t *testing.T) {
	tests := []struct {
		name string
		tag  string
	}{
		{name: "regular tag", tag: "travel"},
		{name: "empty tag is still a filter", tag: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				values, present := r.URL.Query()["tag"]
				assert.True(t, present)
				assert.Equal(t, []string{tt.tag}, values)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte("[]"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			got, err := a.List(context.Background(), models.ListFilter{Tag: strPtr(tt.tag)})

			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestList_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "error listing journal entries", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.List(context.Background(), models.ListFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	want := models.Journal{ID: testEntryID, Title: strPtr("Trip 2"), Tags: []string{}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/entry/"+testEntryID, r.URL.Path)

		var req models.JournalRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Trip 2", *req.Title)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Update(context.Background(), testEntryID, models.JournalRequest{Title: strPtr("Trip 2")})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdate_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "error updating journal entry", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Update(context.Background(), testEntryID, models.JournalRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/entry/"+testEntryID, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.IDResponse{ID: testEntryID})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Delete(context.Background(), testEntryID))
}

func TestDelete_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "error deleting journal entry", http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Delete(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Export / Render ─────────────────────────────────────────────────────────

func TestExport_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/export", r.URL.Path)
		assert.Equal(t, "markdown", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte("# Trip\n\nWent hiking\n\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Export(context.Background(), models.ExportMarkdown)

	require.NoError(t, err)
	assert.Equal(t, "# Trip\n\nWent hiking\n\n", string(got))
}

func TestRender_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/export", r.URL.Path)
		assert.Equal(t, "html", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<h1>Trip</h1>\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Render(context.Background(), models.ExportHTML)

	require.NoError(t, err)
	assert.Equal(t, "<h1>Trip</h1>\n", string(got))
}

func TestRender_UnsupportedFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unsupported export format", http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Render(context.Background(), models.ExportFormat("pdf"))

	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── GetVersion ──────────────────────────────────────────────────────────────

func TestGetVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("v1.2.3"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
}

func TestGetVersion_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetVersion(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusServiceUnavailable))
}

func TestRequest_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Get(context.Background(), testEntryID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get request")
}
