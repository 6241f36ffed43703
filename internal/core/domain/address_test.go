package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeriveAddress_PlainAddress maps the primary line straight to
// address1.
func TestDeriveAddress_PlainAddress(t *testing.T) {
	loc := Location{
		Primary:     Highlightable{Text: "10 Main Street"},
		Secondary:   Highlightable{Text: "Springfield, SP1 2AB"},
		Type:        LocationTypeAddress,
		CountryCode: "GB",
	}

	addr := DeriveAddress(loc)

	assert.Equal(t, "10 Main Street", addr.Address1)
	assert.Empty(t, addr.Address2)
	assert.Empty(t, addr.Company)
	assert.Equal(t, "Springfield", addr.City)
	assert.Equal(t, "SP1 2AB", addr.Zip)
	assert.Equal(t, "GB", addr.CountryCode)
}

// TestDeriveAddress_SubBuilding splits the unit into address2.
func TestDeriveAddress_SubBuilding(t *testing.T) {
	loc := Location{
		Primary:   Highlightable{Text: "Flat 2, 10 Main Street"},
		Secondary: Highlightable{Text: "Springfield, SP1 2AB"},
		Type:      LocationTypeSubBuilding,
	}

	addr := DeriveAddress(loc)

	assert.Equal(t, "10 Main Street", addr.Address1)
	assert.Equal(t, "Flat 2", addr.Address2)
	assert.Empty(t, addr.Company)
}

// TestDeriveAddress_Business moves the name to company, not address2.
func TestDeriveAddress_Business(t *testing.T) {
	loc := Location{
		Primary:   Highlightable{Text: "Acme Ltd, 10 Main Street"},
		Secondary: Highlightable{Text: "Springfield, SP1 2AB"},
		Type:      LocationTypeBusiness,
	}

	addr := DeriveAddress(loc)

	assert.Equal(t, "10 Main Street", addr.Address1)
	assert.Equal(t, "Acme Ltd", addr.Company)
	assert.Empty(t, addr.Address2)
}

// TestDeriveAddress_SubBuildingNoComma keeps address1 when there is no
// remainder to take over.
func TestDeriveAddress_SubBuildingNoComma(t *testing.T) {
	loc := Location{
		Primary: Highlightable{Text: "Flat 2"},
		Type:    LocationTypeSubBuilding,
	}

	addr := DeriveAddress(loc)

	assert.Equal(t, "Flat 2", addr.Address1)
	assert.Equal(t, "Flat 2", addr.Address2)
}

// TestDeriveAddress_WhitespacePrimary falls back to the untrimmed
// original when trimming yields nothing.
func TestDeriveAddress_WhitespacePrimary(t *testing.T) {
	loc := Location{Primary: Highlightable{Text: "   "}}

	addr := DeriveAddress(loc)

	assert.Equal(t, "   ", addr.Address1)
}

// TestDeriveAddress_Locality covers city/zip derivation edge cases.
func TestDeriveAddress_Locality(t *testing.T) {
	tests := []struct {
		name      string
		secondary string
		wantCity  string
		wantZip   string
	}{
		{"city and zip", "Springfield, SP1 2AB", "Springfield", "SP1 2AB"},
		{"city only", "Springfield", "Springfield", ""},
		{"empty", "", "", ""},
		{"empty parts discarded", " , Springfield, , SP1 2AB", "Springfield", "SP1 2AB"},
		{"extra parts ignored", "Springfield, SP1 2AB, Greater Springfield", "Springfield", "SP1 2AB"},
		{"whitespace parts", "  ,  ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := DeriveAddress(Location{Secondary: Highlightable{Text: tt.secondary}})
			assert.Equal(t, tt.wantCity, addr.City)
			assert.Equal(t, tt.wantZip, addr.Zip)
		})
	}
}
