// Package driving defines the inbound port for the suggestion
// controller. UI adapters (the terminal widget, one-shot CLI commands)
// drive the core through these interfaces and observe it through
// snapshots.
package driving
