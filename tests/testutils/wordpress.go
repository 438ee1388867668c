package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/farcloser/cambium/internal/types"
)

// WordPressFixture serves a small travel blog over the REST surface the
// audit fetches: the wp-json index plus the wp/v2 collections. Every
// collection fits in a single page, so pagination stops after one request.
func WordPressFixture() *httptest.Server {
	mux := http.NewServeMux()

	handle(mux, "/wp-json", map[string]any{
		"name":        "Wander Often",
		"description": "Slow travel for busy people",
		"url":         "https://wanderoften.example",
		"namespaces":  []string{"oembed/1.0", "wp/v2"},
	})

	handle(mux, "/wp-json/wp/v2/settings", types.Settings{
		Title:        "Wander Often",
		Description:  "Slow travel for busy people",
		URL:          "https://wanderoften.example",
		Language:     "en_US",
		Timezone:     "Europe/Lisbon",
		PostsPerPage: 10,
	})

	mux.HandleFunc("/wp-json/wp/v2/posts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") == "draft" {
			writeJSON(w, fixtureDrafts())

			return
		}

		writeJSON(w, fixturePosts())
	})

	handle(mux, "/wp-json/wp/v2/pages", []types.Page{
		{ID: 31, Slug: "about", Link: "https://wanderoften.example/about/", Title: types.Rendered{Rendered: "About"}},
		{ID: 32, Slug: "blog", Link: "https://wanderoften.example/blog/", Title: types.Rendered{Rendered: "Blog"}},
	})

	handle(mux, "/wp-json/wp/v2/media", []types.MediaItem{
		{
			ID:        11,
			MediaType: "image",
			MimeType:  "image/webp",
			AltText:   "Lisbon rooftops at dusk",
			SourceURL: "https://wanderoften.example/media/lisbon.webp",
		},
		{
			ID:        12,
			MediaType: "image",
			MimeType:  "image/jpeg",
			SourceURL: "https://wanderoften.example/media/kyoto.jpg",
		},
	})

	handle(mux, "/wp-json/wp/v2/categories", []types.Term{
		{ID: 2, Name: "Destinations", Slug: "destinations", Count: 4},
		{ID: 3, Name: "Travel Tips", Slug: "travel-tips", Count: 2},
	})

	handle(mux, "/wp-json/wp/v2/tags", []types.Term{
		{ID: 7, Name: "europe", Slug: "europe", Count: 12},
		{ID: 8, Name: "budget", Slug: "budget", Count: 7},
	})

	handle(mux, "/wp-json/wp/v2/users", []types.User{
		{ID: 1, Name: "Maya Holt", Slug: "maya"},
	})

	handle(mux, "/wp-json/wp/v2/plugins", []types.Plugin{
		{Plugin: "wordpress-seo/wp-seo", Name: "Yoast SEO", Version: "23.1", Status: types.StatusActive},
		{Plugin: "elementor/elementor", Name: "Elementor", Version: "3.25.4", Status: types.StatusActive},
		{Plugin: "akismet/akismet", Name: "Akismet Anti-spam", Version: "5.3", Status: "inactive"},
	})

	handle(mux, "/wp-json/wp/v2/themes", []types.Theme{
		{Stylesheet: "astra", Name: types.Rendered{Rendered: "Astra"}, Version: "4.8.2", Status: types.StatusActive},
	})

	return httptest.NewServer(mux)
}

func handle(mux *http.ServeMux, pattern string, payload any) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, payload)
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

const postBody = `<h2>Before you go</h2>` +
	`<p>I've spent years chasing slow mornings in new cities, and I'll be honest: the planning is half the fun. ` +
	`Here's what I wish someone had told me before my first trip.</p>` +
	`<ul><li>Book the first night, wing the rest</li><li>Pack half of what you think you need</li></ul>` +
	`<img src="https://wanderoften.example/media/lisbon.webp" alt="Lisbon rooftops at dusk" />` +
	`<p>Subscribe to the newsletter for a new guide every week.</p>`

func fixturePosts() []types.Post {
	titles := []string{
		"10 Best Hotels in Lisbon",
		"How to Plan a Rome Itinerary",
		"The Ultimate Guide to Slow Travel",
		"Backpacking Through Vietnam: A Complete Guide",
		"Top 5 Flight Booking Mistakes",
		"Kyoto vs Tokyo: Which Destination Wins",
	}

	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	posts := make([]types.Post, 0, len(titles))

	for i, title := range titles {
		posts = append(posts, types.Post{
			ID:            i + 1,
			Date:          base.AddDate(0, 0, 7*i).Format("2006-01-02T15:04:05"),
			Link:          fmt.Sprintf("https://wanderoften.example/post-%d/", i+1),
			Status:        "publish",
			Title:         types.Rendered{Rendered: title},
			Content:       types.Rendered{Rendered: postBody},
			Categories:    []int{2},
			Tags:          []int{7},
			FeaturedMedia: 11,
			YoastHead: map[string]any{
				"title":       title + " | Wander Often",
				"description": "Field notes and booking advice from the road.",
			},
		})
	}

	return posts
}

func fixtureDrafts() []types.Post {
	return []types.Post{
		{
			ID:      99,
			Date:    "2025-04-12T08:00:00",
			Status:  "draft",
			Title:   types.Rendered{Rendered: "Packing List for Shoulder Season"},
			Content: types.Rendered{Rendered: "<p>Layers, always layers.</p>"},
		},
	}
}
