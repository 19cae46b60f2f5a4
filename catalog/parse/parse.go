// Package parse extracts structured fields from course-document sections:
// labeled metadata attributes and free-text bibliography citations.
//
// Every extractor is optional and failure-free: a missing label or an
// unparseable value leaves the field absent, it never aborts the record.
package parse

import "time"

// Options bounds the plausibility checks applied during extraction.
type Options struct {
	// MinYear/MaxYear bound plausible publication years.
	// Defaults: 1400 .. current year + 1.
	MinYear int
	MaxYear int

	// MinCredits/MaxCredits bound the credit count; out-of-range values
	// are reported as unknown. Defaults: 0 .. 30.
	MinCredits int
	MaxCredits int

	// MaxEntryLen is the longest plausible single citation, used by the
	// entry-splitting cascade. Default: 1000.
	MaxEntryLen int
}

func (o *Options) defaults() {
	if o.MinYear <= 0 {
		o.MinYear = 1400
	}
	if o.MaxYear <= 0 {
		o.MaxYear = time.Now().Year() + 1
	}
	if o.MaxCredits <= 0 {
		o.MaxCredits = 30
	}
	if o.MaxEntryLen <= 0 {
		o.MaxEntryLen = 1000
	}
}

// Parser extracts metadata attributes and bibliography entries.
type Parser struct {
	opts Options
}

// New creates a Parser with the given options.
func New(opts Options) *Parser {
	opts.defaults()
	return &Parser{opts: opts}
}
