package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rss", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req fetchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"https://a.example.com/feed", "https://b.example.com/feed"}, req.URLs)

		resp := fetchResponse{Items: []ItemPayload{
			{Title: "first", Link: "https://a.example.com/1", RSSURL: "https://a.example.com/feed"},
			{Title: "second", Link: "https://b.example.com/1", RSSURL: "https://b.example.com/feed"},
		}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	items, err := client.Fetch(context.Background(), []string{"https://a.example.com/feed", "https://b.example.com/feed"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "https://b.example.com/feed", items[1].RSSURL)
}

func TestClient_Fetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	items, err := client.Fetch(context.Background(), []string{"https://a.example.com/feed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Nil(t, items)
}

func TestClient_Fetch_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background(), []string{"https://a.example.com/feed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_Fetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond)
	_, err := client.Fetch(context.Background(), []string{"https://a.example.com/feed"})
	require.Error(t, err)
}

func TestClient_Fetch_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)
	_, err := client.Fetch(context.Background(), []string{"https://a.example.com/feed"})
	require.Error(t, err)
}

func TestClient_Fetch_EmptyItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	items, err := client.Fetch(context.Background(), []string{"https://a.example.com/feed"})
	require.NoError(t, err)
	assert.Empty(t, items)
}
