package domain

import "strings"

// LocationType classifies a lookup result.
type LocationType string

// Known location types. The lookup service may return further types;
// unrecognised values are treated as plain addresses.
const (
	// LocationTypeAddress is a plain deliverable address.
	LocationTypeAddress LocationType = "address"

	// LocationTypeSubBuilding is a unit within a building (flat,
	// apartment, suite).
	LocationTypeSubBuilding LocationType = "subbuilding"

	// LocationTypeBusiness is a named business at an address.
	LocationTypeBusiness LocationType = "business"

	// LocationTypeContainer is a group of addresses that must be
	// expanded before one can be applied.
	LocationTypeContainer LocationType = "container"
)

// IsSubBuilding returns true for unit-within-building results.
func (t LocationType) IsSubBuilding() bool {
	return strings.EqualFold(string(t), string(LocationTypeSubBuilding))
}

// IsBusiness returns true for named business results.
func (t LocationType) IsBusiness() bool {
	return strings.EqualFold(string(t), string(LocationTypeBusiness))
}

// Highlightable is display text plus the match offsets reported by the
// lookup service. Offsets are a flat list of (start, end) pairs with
// inclusive end positions, in the service's own order.
type Highlightable struct {
	// Text is the raw display text.
	Text string

	// Highlights holds flattened (start, end) offset pairs into Text.
	// An odd trailing entry is ignored.
	Highlights []int
}

// Location is one candidate result from the lookup service: either a
// leaf address or a container of further results.
type Location struct {
	// Key uniquely identifies the result within a response.
	Key string

	// Primary is the main display line (street address or name).
	Primary Highlightable

	// Secondary is the supporting display line (locality, postcode).
	Secondary Highlightable

	// Type is the service's classification for this result.
	Type LocationType

	// IsContainer marks a result that groups further addresses.
	IsContainer bool

	// Container is the token used to query the group's members.
	// Only meaningful when IsContainer is true.
	Container string

	// CountryCode is the ISO 3166-1 alpha-2 country code.
	CountryCode string
}

// Expandable returns true when selecting this location should trigger
// a container drill-down rather than an address application. Exactly
// one of the two selection behaviours applies to any location.
func (l Location) Expandable() bool {
	return l.IsContainer && l.Container != ""
}
