package appointment

import "time"

// ListFilter holds the optional list criteria, AND-combined when present.
// Start is the normalized instant of the first day; End is the exclusive
// bound covering the whole last day. Name matches the client's first or
// last name case-insensitively; Phone is a plain substring match.
type ListFilter struct {
	Start  *time.Time
	End    *time.Time
	Status Status
	Name   string
	Phone  string
}
