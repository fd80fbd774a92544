package hostid

import "strings"

// absentMarker is how an absent outcome renders in logs and CLI output.
const absentMarker = "<absent>"

// Outcome is the result of one machine ID lookup: either a found identifier
// or absence. The zero value is [Absent].
type Outcome struct {
	ID    string
	Found bool
}

// Absent is the outcome of a lookup that produced no identifier.
var Absent = Outcome{}

// Found wraps a raw identifier. Identifiers that are empty after trimming
// surrounding whitespace collapse to [Absent]; otherwise id is kept verbatim.
func Found(id string) Outcome {
	if strings.TrimSpace(id) == "" {
		return Absent
	}

	return Outcome{ID: id, Found: true}
}

// Value returns the identifier and whether one was found.
func (o Outcome) Value() (string, bool) {
	return o.ID, o.Found
}

// String returns the identifier, or "<absent>".
func (o Outcome) String() string {
	if !o.Found {
		return absentMarker
	}

	return o.ID
}
