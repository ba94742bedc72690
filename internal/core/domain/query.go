package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// TimeRange is an inclusive timestamp window.
// A nil bound means the window is open on that side.
type TimeRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t lies within the range, bounds included.
func (r TimeRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// IsUnbounded reports whether neither bound is set.
func (r TimeRange) IsUnbounded() bool {
	return r.Start == nil && r.End == nil
}

// String renders the range in the "start,end" query form.
func (r TimeRange) String() string {
	var b strings.Builder
	if r.Start != nil {
		b.WriteString(r.Start.Format(time.RFC3339))
	}
	b.WriteByte(',')
	if r.End != nil {
		b.WriteString(r.End.Format(time.RFC3339))
	}
	return b.String()
}

// ParseTimeRange parses the "start,end" query form. Either part may be
// empty and a missing comma leaves the end open. An empty string, or one
// with both parts empty, returns nil: no filtering.
// An inverted range is accepted and matches nothing.
func ParseTimeRange(s string) (*TimeRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	startText, endText, _ := strings.Cut(s, ",")

	var r TimeRange
	var err error
	if r.Start, err = parseBound(startText); err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrInvalidInput, err)
	}
	if r.End, err = parseBound(endText); err != nil {
		return nil, fmt.Errorf("%w: end: %w", ErrInvalidInput, err)
	}

	if r.IsUnbounded() {
		return nil, nil
	}
	return &r, nil
}

func parseBound(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseTimestamp reads a timestamp permissively. Values without a zone are UTC.
func ParseTimestamp(s string) (time.Time, error) {
	return dateparse.ParseIn(strings.TrimSpace(s), time.UTC)
}

// PerformanceQuery describes one aggregation request.
type PerformanceQuery struct {
	// Range restricts records by timestamp. Nil means no filtering.
	Range *TimeRange
}

// FailurePolicy decides how per-file retrieval failures are treated.
type FailurePolicy string

const (
	// FailureLenient drops failed files and keeps partial results.
	// A request where every resolved file failed is still an error.
	FailureLenient FailurePolicy = "lenient"

	// FailureStrict aborts the request on the first failed file.
	FailureStrict FailurePolicy = "strict"
)

// ParseFailurePolicy parses a policy name. Empty selects FailureLenient.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", FailureLenient:
		return FailureLenient, nil
	case FailureStrict:
		return FailureStrict, nil
	default:
		return "", fmt.Errorf("%w: unknown failure policy %q", ErrInvalidInput, s)
	}
}
