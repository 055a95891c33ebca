// Package models defines data structures for Daybrief
package models

import (
	"time"
)

// Candidate is a ticker under consideration for the daily report,
// prior to enrichment. A source may attach the headline that matched
// it, or a precomputed percentage change from a bulk snapshot.
type Candidate struct {
	Ticker   string   `json:"ticker"`
	Headline string   `json:"headline,omitempty"`
	Change   *float64 `json:"change,omitempty"`
}

// Row is a fully computed, renderable report entry. Rows are immutable
// once constructed; a nil Change means "no data" and renders empty.
type Row struct {
	Company string   `json:"company"`
	Ticker  string   `json:"ticker"`
	Change  *float64 `json:"change"`
	Note    string   `json:"note"`
}

// Report is an ordered set of rows for a single run date. Row order is
// display order; the renderer does not re-sort.
type Report struct {
	Date        string    `json:"date"`
	Mode        string    `json:"mode"`
	Rows        []Row     `json:"rows"`
	GeneratedAt time.Time `json:"generated_at"`
}
