package cambium

import "fmt"

// Recommendation is one actionable advisory derived from the audit.
type Recommendation struct {
	Check   Check  // dimension that produced it
	Code    string // stable machine identifier
	Summary string // human-readable advisory
}

// buildRecommendations walks a fixed rule order; every true predicate
// appends exactly one recommendation. Rules whose source dimension did not
// run are skipped. The order is stable so reports diff cleanly between
// audits of the same site.
//
//nolint:cyclop,funlen // one block per rule, same shape throughout
func buildRecommendations(audit *Audit, opts Options) []Recommendation {
	var recs []Recommendation

	if c := audit.Content; c != nil {
		if c.AvgWordCount < opts.MinAvgWordCount {
			recs = append(recs, Recommendation{
				Check: CheckContent,
				Code:  "thin-content",
				Summary: fmt.Sprintf(
					"Average post length is %d words; aim for at least %d to build topical depth",
					c.AvgWordCount,
					opts.MinAvgWordCount,
				),
			})
		}

		if c.TotalPosts < opts.MinPostCount {
			recs = append(recs, Recommendation{
				Check: CheckContent,
				Code:  "small-corpus",
				Summary: fmt.Sprintf(
					"Only %d published posts; a corpus under %d is too small to establish authority",
					c.TotalPosts,
					opts.MinPostCount,
				),
			})
		}
	}

	if s := audit.SEO; s != nil {
		if !s.HasPlugin {
			recs = append(recs, Recommendation{
				Check:   CheckSEO,
				Code:    "no-seo-plugin",
				Summary: "No SEO plugin detected; install one to manage titles, descriptions, and sitemaps",
			})
		}

		if s.MetaDescCoverage < opts.MinMetaDescriptionCoverage {
			recs = append(recs, Recommendation{
				Check: CheckSEO,
				Code:  "meta-descriptions",
				Summary: fmt.Sprintf(
					"Meta descriptions cover %.0f%% of sampled posts; bring coverage above %.0f%%",
					s.MetaDescCoverage*100,
					opts.MinMetaDescriptionCoverage*100,
				),
			})
		}
	}

	if m := audit.Media; m != nil {
		if m.FeaturedImageUsage < opts.MinFeaturedImageCoverage {
			recs = append(recs, Recommendation{
				Check: CheckMedia,
				Code:  "featured-images",
				Summary: fmt.Sprintf(
					"Featured images are set on %.0f%% of posts; every post should carry one",
					m.FeaturedImageUsage*100,
				),
			})
		}

		if m.Images > 0 && m.AltTextCoverage < opts.MinAltTextCoverage {
			recs = append(recs, Recommendation{
				Check: CheckMedia,
				Code:  "alt-text",
				Summary: fmt.Sprintf(
					"Alt text covers %.0f%% of images; describe the rest for accessibility and image search",
					m.AltTextCoverage*100,
				),
			})
		}

		if !m.HasWebP {
			recs = append(recs, Recommendation{
				Check:   CheckMedia,
				Code:    "no-webp",
				Summary: "No WebP media found; serve modern formats to cut page weight",
			})
		}
	}

	if w := audit.Writing; w != nil {
		if !w.UsesSubheadings {
			recs = append(recs, Recommendation{
				Check:   CheckWriting,
				Code:    "subheadings",
				Summary: "Sampled posts rarely use subheadings; break long articles up with H2 sections",
			})
		}

		if !w.UsesCTA {
			recs = append(recs, Recommendation{
				Check:   CheckWriting,
				Code:    "call-to-action",
				Summary: "Posts end without a call to action; close each article with a next step for the reader",
			})
		}
	}

	if d := audit.Design; d != nil {
		if d.PageBuilder == "" {
			recs = append(recs, Recommendation{
				Check:   CheckDesign,
				Code:    "page-builder",
				Summary: "No page builder detected; adopt one for landing pages, or lean into the block editor",
			})
		}
	}

	return recs
}
