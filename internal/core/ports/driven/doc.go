// Package driven defines the outbound port interfaces the core depends
// on: the address lookup service, the checkout session that receives
// applied addresses, and the configuration store. Adapters under
// internal/adapters/driven implement these.
package driven
