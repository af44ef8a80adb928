// Package summary contains read-only aggregation use cases.
package summary

import (
	"fmt"
	"time"

	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// Granularity is the time-bucket size for period aggregation.
type Granularity string

// Recognized granularities.
const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ParseGranularity validates a raw granularity value.
func ParseGranularity(raw string) (Granularity, error) {
	switch Granularity(raw) {
	case GranularityDay, GranularityMonth, GranularityYear:
		return Granularity(raw), nil
	default:
		return "", domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidGranularity,
			fmt.Sprintf("granularity must be day, month or year, got %q", raw),
			domainerror.ErrInvalidGranularity,
		)
	}
}

// PeriodKey returns the canonical bucket key for the period containing the
// given date. Keys sort chronologically as plain strings.
func PeriodKey(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityMonth:
		return date.Format("2006-01")
	case GranularityYear:
		return date.Format("2006")
	default:
		return date.Format("2006-01-02")
	}
}

// PeriodStart returns the first day of the period containing the given date.
func PeriodStart(date time.Time, granularity Granularity) time.Time {
	loc := date.Location()
	switch granularity {
	case GranularityMonth:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, loc)
	case GranularityYear:
		return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	}
}
