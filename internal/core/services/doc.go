// Package services implements the core business logic orchestration.
// SuggestService is the debounced suggestion search controller that
// drives lookups, container expansion and address application through
// the driven ports.
package services
