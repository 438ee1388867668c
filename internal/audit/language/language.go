package language

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/farcloser/cambium/internal/audit/shared"
	"github.com/farcloser/cambium/internal/types"
)

type Options struct {
	// ScriptCharThreshold is the character count a script must exceed
	// across all post bodies to count as present (default 50).
	ScriptCharThreshold int
}

func DefaultOptions() Options {
	return Options{
		ScriptCharThreshold: 50,
	}
}

type script struct {
	code  string // base language code the script maps to
	table *unicode.RangeTable
	rtl   bool
}

// Scripts scanned for secondary-language presence, in reporting order.
//
//nolint:gochecknoglobals // script table, effectively const
var scripts = []script{
	{"ar", unicode.Arabic, true},
	{"he", unicode.Hebrew, true},
	{"ru", unicode.Cyrillic, false},
	{"zh", unicode.Han, false},
	{"hi", unicode.Devanagari, false},
	{"th", unicode.Thai, false},
}

// Multilingual plugin providers, matched case-insensitively against plugin
// names.
//
//nolint:gochecknoglobals // provider table, effectively const
var multilingualProviders = []string{"wpml", "polylang", "translatepress", "weglot"}

// Language codes that are right-to-left regardless of detected scripts.
//
//nolint:gochecknoglobals // effectively const
var rtlCodes = []string{"ar", "he", "fa", "ur"}

// Analyze resolves the primary language from the site locale and detects
// secondary languages by script scanning over post bodies.
func Analyze(snapshot *types.Snapshot, opts Options) *types.LanguageResult {
	if opts.ScriptCharThreshold == 0 {
		opts.ScriptCharThreshold = 50
	}

	result := &types.LanguageResult{}
	result.Primary, result.PrimaryName = parseLocale(snapshot.Settings.Language)

	if result.Primary != "" {
		result.Detected = append(result.Detected, result.Primary)
	}

	counts := scanScripts(snapshot.Posts)

	for _, entry := range scripts {
		if counts[entry.code] <= opts.ScriptCharThreshold {
			continue
		}

		if !slices.Contains(result.Detected, entry.code) {
			result.Detected = append(result.Detected, entry.code)
		}

		if entry.rtl {
			result.RTLSupport = true
		}
	}

	if slices.Contains(rtlCodes, result.Primary) {
		result.RTLSupport = true
	}

	for _, plugin := range snapshot.ActivePlugins() {
		name := strings.ToLower(plugin.Name)

		for _, provider := range multilingualProviders {
			if strings.Contains(name, provider) {
				result.MultilingualPlugin = plugin.Name

				break
			}
		}

		if result.MultilingualPlugin != "" {
			break
		}
	}

	result.Multilingual = result.MultilingualPlugin != "" || len(result.Detected) > 1

	return result
}

// parseLocale reduces a locale code to its base language. An empty locale
// is the WordPress default, en_US.
func parseLocale(locale string) (string, string) {
	if locale == "" {
		locale = "en-US"
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		code := strings.ToLower(strings.SplitN(locale, "-", 2)[0])

		return code, code
	}

	base, _ := tag.Base()
	code := base.String()

	name := display.English.Languages().Name(language.Make(code))
	if name == "" {
		name = code
	}

	return code, name
}

func scanScripts(posts []types.Post) map[string]int {
	counts := make(map[string]int, len(scripts))

	for _, post := range posts {
		for _, r := range shared.Text(post.Content.Rendered) {
			for _, entry := range scripts {
				if unicode.Is(entry.table, r) {
					counts[entry.code]++

					break
				}
			}
		}
	}

	return counts
}
