package models

// SortField names a post attribute the API can order by.
// The zero value means "no sorting requested".
type SortField string

const (
	SortNone      SortField = ""
	SortByID      SortField = "id"
	SortByTitle   SortField = "title"
	SortByContent SortField = "content"
)

// SortDirection is the ordering direction of a sorted list.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortFields lists every selectable sort field in display order,
// starting with [SortNone].
var SortFields = []SortField{SortNone, SortByID, SortByTitle, SortByContent}

// SortOptions is the user's current sort selection.
//
// When Field is empty the list request carries no query string at all,
// regardless of Direction.
type SortOptions struct {
	Field     SortField     `validate:"omitempty,oneof=id title content"`
	Direction SortDirection `validate:"omitempty,oneof=asc desc"`
}

// IsSet reports whether a sort field is selected.
func (s SortOptions) IsSet() bool {
	return s.Field != SortNone
}

// EffectiveDirection returns Direction, defaulting to [SortAsc].
func (s SortOptions) EffectiveDirection() SortDirection {
	if s.Direction == "" {
		return SortAsc
	}
	return s.Direction
}
