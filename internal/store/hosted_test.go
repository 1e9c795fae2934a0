package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHosted_List(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/records/inquiries", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("status")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "L1", "status": "new"},
				{"id": "L2", "status": "new"},
			},
		})
	}))
	defer srv.Close()

	client := NewHosted(srv.URL, "secret-key")
	recs, err := client.List(context.Background(), KindInquiry, Filters{"status": "new"})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "L1", recs[0]["id"])
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "new", gotQuery)
}

func TestHosted_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/records/opportunities", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "L1", body["source_inquiry_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "O9"}})
	}))
	defer srv.Close()

	client := NewHosted(srv.URL, "k")
	id, err := client.Create(context.Background(), KindOpportunity, Record{"source_inquiry_id": "L1"})
	require.NoError(t, err)
	assert.Equal(t, "O9", id)
}

func TestHosted_SetField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/records/inquiries/L1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "status", body["field"])
		assert.Equal(t, "open", body["value"])

		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	defer srv.Close()

	client := NewHosted(srv.URL, "k")
	require.NoError(t, client.SetField(context.Background(), KindInquiry, "L1", "status", "open"))
}

func TestHosted_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "status is frozen"},
		})
	}))
	defer srv.Close()

	client := NewHosted(srv.URL, "k")
	err := client.SetField(context.Background(), KindInquiry, "L1", "status", "open")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "status is frozen", apiErr.Message)
	assert.Equal(t, "status is frozen", Humanize(err, "failed to update inquiry status").Error())
}

func TestHosted_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not the store</html>"))
	}))
	defer srv.Close()

	client := NewHosted(srv.URL, "k")
	_, err := client.List(context.Background(), KindInquiry, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode record store response")
}

func TestHumanize_Fallback(t *testing.T) {
	err := Humanize(assert.AnError, "failed to update inquiry status")
	assert.Contains(t, err.Error(), "failed to update inquiry status")

	// an envelope without a message also falls back
	err = Humanize(&APIError{Status: 500}, "failed to schedule meeting")
	assert.Contains(t, err.Error(), "failed to schedule meeting")
}
