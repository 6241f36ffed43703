package domain

import "strings"

// Address is the structured shipping address handed to the checkout
// session. Field names mirror the checkout API surface.
type Address struct {
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	Company     string `json:"company,omitempty"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	CountryCode string `json:"countryCode"`
}

// DeriveAddress maps a leaf location onto a structured shipping
// address.
//
// The primary line becomes address1. Sub-building results split on the
// first comma, with the unit moving to address2 and the remainder
// taking over address1; business results move the name to company
// instead. City and zip are taken positionally from the comma-separated
// secondary line.
func DeriveAddress(loc Location) Address {
	addr := Address{CountryCode: loc.CountryCode}

	primary := strings.TrimSpace(loc.Primary.Text)
	if primary == "" {
		primary = loc.Primary.Text
	}
	addr.Address1 = primary

	if loc.Type.IsSubBuilding() || loc.Type.IsBusiness() {
		unit, rest, found := strings.Cut(loc.Primary.Text, ",")
		if loc.Type.IsBusiness() {
			addr.Company = strings.TrimSpace(unit)
		} else {
			addr.Address2 = strings.TrimSpace(unit)
		}
		if found {
			if rest = strings.TrimSpace(rest); rest != "" {
				addr.Address1 = rest
			}
		}
	}

	addr.City, addr.Zip = splitLocality(loc.Secondary.Text)
	return addr
}

// splitLocality takes the first two non-empty comma-separated parts of
// the secondary line as city and zip. Missing parts stay empty.
func splitLocality(secondary string) (city, zip string) {
	var parts []string
	for _, p := range strings.Split(secondary, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) > 0 {
		city = parts[0]
	}
	if len(parts) > 1 {
		zip = parts[1]
	}
	return city, zip
}
