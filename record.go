package lsmodels

import (
	"slices"
	"strings"
)

// ModelRecord is one model as reported by a provider's listing endpoint.
type ModelRecord struct {
	// ID is the identifier exactly as the provider returned it.
	ID string

	// DisplayName is the human-readable label, empty when the provider has none.
	DisplayName string

	// Methods lists the generation methods the model supports, when known.
	Methods []string
}

// Label returns the display name when it adds information beyond the ID.
func (r ModelRecord) Label() string {
	if r.DisplayName == "" || r.DisplayName == r.ID {
		return ""
	}
	return r.DisplayName
}

// SortRecords orders records by ID. Records sharing an ID keep their relative order.
func SortRecords(records []ModelRecord) {
	slices.SortStableFunc(records, func(a, b ModelRecord) int {
		return strings.Compare(a.ID, b.ID)
	})
}
