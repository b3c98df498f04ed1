package search

import (
	"fmt"
	"strings"
)

// Algorithm enumerates the supported search strategies.
type Algorithm string

const (
	AlgorithmLinear Algorithm = "linear"
	AlgorithmBinary Algorithm = "binary"
)

// Algorithms lists every supported algorithm in display order.
var Algorithms = []Algorithm{AlgorithmLinear, AlgorithmBinary}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case AlgorithmLinear:
		return AlgorithmLinear, nil
	case AlgorithmBinary:
		return AlgorithmBinary, nil
	}
	return "", fmt.Errorf("%w %q: expected one of %v", ErrUnknownAlgorithm, name, Algorithms)
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	return string(a)
}

// Bounds is the inclusive index window still under consideration by binary search.
type Bounds struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Contains reports whether index lies inside the window.
func (b Bounds) Contains(index int) bool {
	return index >= b.Left && index <= b.Right
}

// Step records a single probe. Bounds is nil for linear search.
type Step struct {
	Index       int     `json:"index"`
	Value       int     `json:"value"`
	Comparisons int     `json:"comparisons"`
	Bounds      *Bounds `json:"bounds,omitempty"`
	Matched     bool    `json:"matched"`
}

// NotFound is the Result index used when the target is absent.
const NotFound = -1

// Result is the terminal outcome of a run.
type Result struct {
	Found            bool `json:"found"`
	Index            int  `json:"index"`
	TotalComparisons int  `json:"total_comparisons"`
}

// SortEvent describes the ascending sort applied before a binary search over
// unsorted input.
type SortEvent struct {
	Before []int `json:"before"`
	After  []int `json:"after"`
}
