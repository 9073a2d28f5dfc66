package search

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encyclopedia struct {
	mu     sync.Mutex
	agents []string
}

func (e *encyclopedia) userAgents() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.agents...)
}

func (e *encyclopedia) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	e.agents = append(e.agents, r.Header.Get("user-agent"))
	e.mu.Unlock()
	switch {
	case r.URL.Path == "/w/api.php":
		var hits []map[string]string
		switch q := r.URL.Query().Get("srsearch"); q {
		case "cheetah":
			hits = append(hits, map[string]string{"title": "Cheetah"})
		case "snow leopard":
			hits = append(hits, map[string]string{"title": "Snow leopard"})
		case "ghost":
			hits = append(hits, map[string]string{"title": "Ghost animal"})
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"query": map[string]any{"search": hits},
		})
	case r.URL.Path == "/summary/Cheetah":
		json.NewEncoder(w).Encode(map[string]any{
			"extract":   "The cheetah is a large cat.",
			"thumbnail": map[string]any{"source": "https://img.example.org/cheetah.jpg"},
		})
	case r.URL.Path == "/summary/Snow_leopard":
		json.NewEncoder(w).Encode(map[string]any{
			"extract": "The snow leopard is a felid.",
		})
	default:
		http.NotFound(w, r)
	}
}

func testClient(t *testing.T) (*Client, *encyclopedia) {
	t.Helper()
	var (
		ency = &encyclopedia{}
		srv  = httptest.NewServer(ency)
	)
	t.Cleanup(srv.Close)

	c := NewClient()
	c.SearchURL = srv.URL + "/w/api.php"
	c.SummaryURL = srv.URL + "/summary/"
	c.HTTP = srv.Client()
	return c, ency
}

func TestLookup(t *testing.T) {
	c, ency := testClient(t)

	res, err := c.Lookup(context.Background(), "  cheetah ")
	require.NoError(t, err)
	require.NotNil(t, res.Description)
	require.NotNil(t, res.Image)
	assert.Equal(t, "The cheetah is a large cat.", *res.Description)
	assert.Equal(t, "https://img.example.org/cheetah.jpg", *res.Image)
	assert.Equal(t, []string{DefaultUserAgent, DefaultUserAgent}, ency.userAgents())

	res, err = c.Lookup(context.Background(), "snow leopard")
	require.NoError(t, err)
	require.NotNil(t, res.Description)
	assert.Nil(t, res.Image)
}

func TestLookupErrors(t *testing.T) {
	c, _ := testClient(t)

	_, err := c.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = c.Lookup(context.Background(), "unicorn")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Lookup(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Lookup(context.Background(), "broken")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestHandler(t *testing.T) {
	c, _ := testClient(t)
	srv := httptest.NewServer(Handler(c, nil))
	defer srv.Close()

	tests := []struct {
		Query string
		Code  int
		Body  string
	}{
		{Query: "cheetah", Code: http.StatusOK, Body: `"description":"The cheetah is a large cat."`},
		{Query: "snow+leopard", Code: http.StatusOK, Body: `"image":null`},
		{Query: "", Code: http.StatusBadRequest, Body: msgRequired},
		{Query: "unicorn", Code: http.StatusNotFound, Body: msgNotFound},
		{Query: "broken", Code: http.StatusInternalServerError, Body: msgFailed},
	}
	for _, tt := range tests {
		res, err := http.Get(srv.URL + "/?q=" + tt.Query)
		require.NoError(t, err)

		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, tt.Code, res.StatusCode, tt.Query)
		assert.Equal(t, "application/json", res.Header.Get("content-type"))
		assert.Contains(t, string(body), tt.Body, tt.Query)
	}
}

func TestHandlerMethod(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/?q=cheetah", nil)
	Handler(NewClient(), nil).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
