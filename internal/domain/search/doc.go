// Package search implements the step-producing linear and binary search engine.
//
// A Run is a pull-based state machine: each call to Next performs exactly one
// probe and returns it as a Step. Runs own no goroutines or external resources,
// so a presenter may abandon one at any point.
package search
