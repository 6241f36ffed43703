// Package domain contains the core business entities for address
// autocomplete: lookup results, highlight segments, derived shipping
// addresses, and the selection state machine.
//
// Domain types have no dependencies on adapters or external services.
// They represent pure business concepts and rules.
package domain
