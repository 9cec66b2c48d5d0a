package contract

import (
	"github.com/maweber/james-bot/internal/domain/entity"
)

// MaxValuesPerInGroup is the largest number of literal values one IN group
// of a scan filter may carry. Callers that need more dates in a single
// query must split them into several OR'd groups.
const MaxValuesPerInGroup = 80

// InGroup is one "field IN (values...)" clause of a scan filter.
type InGroup struct {
	Field  string
	Values []string
}

// ScanFilter is a conjunction of equality tests, optionally AND'ed with a
// disjunction of IN groups. This mirrors the filter expressions the bot
// historically sent to its table store.
type ScanFilter struct {
	Equals map[string]string
	AnyOf  []InGroup
}

// ScanPage is one page of scan results. An empty NextToken means the scan
// is exhausted.
type ScanPage struct {
	Items     []*entity.Event
	NextToken string
}

// TableClient is the raw store boundary: single-item writes and deletes
// plus a filtered scan whose response size is capped per call. Callers are
// expected to loop on NextToken to see the full result set.
type TableClient interface {
	Put(event *entity.Event) error
	Scan(filter ScanFilter, startToken string) (*ScanPage, error)
	Delete(eventID string) error
}
