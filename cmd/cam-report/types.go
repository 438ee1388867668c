//nolint:tagliatelle
package main

// Record is a single line in the JSONL report file.
type Record struct {
	Site   string         `json:"site,omitempty"`
	Name   string         `json:"name,omitempty"`
	Audit  map[string]any `json:"audit,omitempty"`
	Error  string         `json:"error,omitempty"`
	Timing *RecordTiming  `json:"timing,omitempty"`
}

// RecordTiming captures per-site processing durations in milliseconds.
type RecordTiming struct {
	FetchMs   float64 `json:"fetch_ms"`
	AnalyzeMs float64 `json:"analyze_ms"`
	TotalMs   float64 `json:"total_ms"`
}

// digestRecord holds the typed fields needed by the digest command.
type digestRecord struct {
	Site  string       `json:"site,omitempty"`
	Name  string       `json:"name,omitempty"`
	Audit *digestAudit `json:"audit,omitempty"`
	Error string       `json:"error,omitempty"`
}

type digestAudit struct {
	Meta            digestMeta             `json:"meta"`
	Content         *digestContent         `json:"content"`
	Recommendations []digestRecommendation `json:"recommendations"`
}

type digestMeta struct {
	Degraded []string `json:"degraded"`
}

type digestContent struct {
	Niche        string `json:"niche"`
	Cadence      string `json:"cadence"`
	AvgWordCount int    `json:"avg_word_count"`
}

type digestRecommendation struct {
	Check   string `json:"check"`
	Code    string `json:"code"`
	Summary string `json:"summary"`
}

// codeBreakdown tracks how many sites trip a recommendation code.
type codeBreakdown struct {
	Code  string
	Check string
	Total int
}
