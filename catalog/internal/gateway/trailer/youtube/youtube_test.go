package youtube

import (
	"context"
	"moviecatalog/catalog/internal/gateway"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/results", r.URL.Path)
		switch r.URL.Query().Get("search_query") {
		case "Se7en 1995 trailer":
			_, _ = w.Write([]byte(`<script>var ytInitialData = {"contents":[{"videoRenderer":{"videoId":"znmZoVkCjpI"}},{"videoId":"aaaaaaaaaaa"}]};</script>`))
		case "Down trailer":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			_, _ = w.Write([]byte(`<html>no results</html>`))
		}
	}))
	defer srv.Close()
	g := New(srv.URL, srv.Client(), nil, zap.NewNop())

	got, err := g.Find(context.Background(), "Se7en", 1995)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/watch?v=znmZoVkCjpI", got)

	_, err = g.Find(context.Background(), "Nothing", 0)
	assert.ErrorIs(t, err, gateway.ErrNotFound)

	_, err = g.Find(context.Background(), "Down", 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, gateway.ErrNotFound)
}

func TestSearchURL(t *testing.T) {
	g := New("", nil, nil, zap.NewNop())
	assert.Equal(t, "https://www.youtube.com/results?search_query=The+Room+2003+trailer", g.SearchURL("The Room", 2003))
	assert.Equal(t, "https://www.youtube.com/results?search_query=Heat+trailer", g.SearchURL("Heat", 0))
}
