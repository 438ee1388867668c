package media

import (
	"slices"
	"strings"

	"github.com/farcloser/cambium/internal/types"
)

// Analyze partitions the media inventory by type and measures alt-text
// coverage, format diversity, and featured-image usage.
func Analyze(snapshot *types.Snapshot) *types.MediaResult {
	result := &types.MediaResult{
		TotalItems: len(snapshot.Media),
	}

	formats := map[string]bool{}

	for _, item := range snapshot.Media {
		if item.MimeType != "" {
			formats[item.MimeType] = true
		}

		switch {
		case isImage(item):
			result.Images++

			if strings.TrimSpace(item.AltText) != "" {
				result.WithAltText++
			} else {
				result.WithoutAltText++
			}

			if item.MimeType == "image/webp" {
				result.HasWebP = true
			}
		case isVideo(item):
			result.Videos++
		default:
			result.Other++
		}
	}

	result.Formats = make([]string, 0, len(formats))
	for format := range formats {
		result.Formats = append(result.Formats, format)
	}

	slices.Sort(result.Formats)

	if result.Images > 0 {
		result.AltTextCoverage = float64(result.WithAltText) / float64(result.Images)
	}

	featured := 0

	for _, post := range snapshot.Posts {
		if post.FeaturedMedia != 0 {
			featured++
		}
	}

	if total := len(snapshot.Posts); total > 0 {
		result.FeaturedImageUsage = float64(featured) / float64(total)
	}

	return result
}

// WordPress reports attachments as "image" or "file"; videos surface as
// "file" with a video MIME type.
func isImage(item types.MediaItem) bool {
	return item.MediaType == "image" || strings.HasPrefix(item.MimeType, "image/")
}

func isVideo(item types.MediaItem) bool {
	return item.MediaType == "video" || strings.HasPrefix(item.MimeType, "video/")
}
