package wordpress

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/farcloser/primordium/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fastRate = 10000 // keep the limiter out of the way in tests

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(Config{BaseURL: baseURL, RequestsPerSecond: fastRate})
	require.NoError(t, err)

	return client
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrMissingRequirements)

	_, err = New(Config{BaseURL: "not a url"})
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrMissingRequirements)
}

func TestNew_NormalizesTrailingSlash(t *testing.T) {
	client, err := New(Config{BaseURL: "https://blog.example.com/"})
	require.NoError(t, err)

	endpoint := client.endpoint("posts", nil)
	assert.Equal(t, "https://blog.example.com/wp-json/wp/v2/posts", endpoint.String())
}

func TestClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json", r.URL.Path)
		w.Write([]byte(`{
			"name": "Wander Often",
			"description": "Slow travel for busy people",
			"url": "https://wanderoften.example",
			"namespaces": ["oembed/1.0", "wp/v2"]
		}`))
	}))
	defer srv.Close()

	index, err := testClient(t, srv.URL).Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Wander Often", index.Name)
	assert.Equal(t, "Slow travel for busy people", index.Description)
}

func TestClient_Ping_NotWordPress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "some other api", "namespaces": ["acme/v1"]}`))
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrMissingRequirements)
}

func TestClient_Ping_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrReadFailure)
}

func TestClient_Posts_Paginates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		assert.Equal(t, "publish", r.URL.Query().Get("status"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		w.Header().Set("X-WP-Total", "101")
		w.Header().Set("X-WP-TotalPages", "2")

		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprintf(w, "[%s]", postsJSON(1, 100))
		case "2":
			fmt.Fprintf(w, "[%s]", postsJSON(101, 101))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	defer srv.Close()

	posts, err := testClient(t, srv.URL).Posts(context.Background(), "publish")
	require.NoError(t, err)
	require.Len(t, posts, 101)
	assert.Equal(t, 1, posts[0].ID)
	assert.Equal(t, 101, posts[100].ID)
	assert.Equal(t, "Post 1", posts[0].Title.Rendered)
}

func TestClient_Posts_ShortBatchEndsWalkWithoutHeader(t *testing.T) {
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		fmt.Fprintf(w, "[%s]", postsJSON(1, 3))
	}))
	defer srv.Close()

	posts, err := testClient(t, srv.URL).Posts(context.Background(), "publish")
	require.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.Equal(t, 1, calls)
}

func TestClient_Media_Limit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		perPage, err := strconv.Atoi(r.URL.Query().Get("per_page"))
		require.NoError(t, err)
		assert.Equal(t, 3, perPage)

		w.Header().Set("X-WP-TotalPages", "40")
		w.Write([]byte(`[
			{"id": 1, "media_type": "image", "mime_type": "image/webp", "alt_text": "a"},
			{"id": 2, "media_type": "image", "mime_type": "image/jpeg", "alt_text": ""},
			{"id": 3, "media_type": "video", "mime_type": "video/mp4", "alt_text": ""}
		]`))
	}))
	defer srv.Close()

	media, err := testClient(t, srv.URL).Media(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, media, 3)
	assert.Equal(t, "image/webp", media[0].MimeType)
}

func TestClient_BasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "auditor" || pass != "abcd efgh ijkl" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		w.Write([]byte(`[{"plugin": "elementor/elementor", "name": "Elementor", "status": "active", "version": "3.21.0"}]`))
	}))
	defer srv.Close()

	anonymous := testClient(t, srv.URL)
	_, err := anonymous.Plugins(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)

	authed, err := New(Config{
		BaseURL:           srv.URL,
		Username:          "auditor",
		AppPassword:       "abcd efgh ijkl",
		RequestsPerSecond: fastRate,
	})
	require.NoError(t, err)

	plugins, err := authed.Plugins(context.Background())
	require.NoError(t, err)
	require.Len(t, plugins, 1)
	assert.Equal(t, "Elementor", plugins[0].Name)
}

func TestClient_Settings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/settings", r.URL.Path)
		w.Write([]byte(`{
			"title": "Wander Often",
			"description": "Slow travel for busy people",
			"url": "https://wanderoften.example",
			"language": "en_US",
			"timezone_string": "Europe/Lisbon",
			"posts_per_page": 10
		}`))
	}))
	defer srv.Close()

	settings, err := testClient(t, srv.URL).Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Wander Often", settings.Title)
	assert.Equal(t, "en_US", settings.Language)
	assert.Equal(t, "Europe/Lisbon", settings.Timezone)
	assert.Equal(t, 10, settings.PostsPerPage)
}

func TestClient_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).Categories(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrInvalidJSON)
}

func TestClient_ConnectionRefused(t *testing.T) {
	client := testClient(t, "http://127.0.0.1:1") // nothing listening

	_, err := client.Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrReadFailure)
}

func TestClient_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(t, srv.URL).Tags(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, fault.ErrTimeout), "cancellation is not a timeout")
}

func postsJSON(from, to int) string {
	out := ""

	for id := from; id <= to; id++ {
		if out != "" {
			out += ","
		}

		out += fmt.Sprintf(`{"id": %d, "status": "publish", "title": {"rendered": "Post %d"}, "content": {"rendered": "<p>body</p>"}}`, id, id)
	}

	return out
}
