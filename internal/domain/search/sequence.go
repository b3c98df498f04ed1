package search

import (
	"slices"
	"strconv"
	"strings"
)

// Input is a normalized search request: the sequence to scan and the value to find.
type Input struct {
	Sequence []int
	Target   int
}

// Normalize converts comma-separated integers into an Input. The last element
// doubles as the target and remains part of the sequence.
func Normalize(text string) (Input, error) {
	if strings.TrimSpace(text) == "" {
		return Input{}, newEmptyInputError()
	}

	tokens := strings.Split(text, ",")
	seq := make([]int, 0, len(tokens))
	for i, raw := range tokens {
		token := strings.TrimSpace(raw)
		value, err := strconv.Atoi(token)
		if err != nil {
			return Input{}, newInvalidTokenError(token, i, err)
		}
		seq = append(seq, value)
	}

	return Input{Sequence: seq, Target: seq[len(seq)-1]}, nil
}

// Format renders a sequence back into the comma-separated form Normalize accepts.
func Format(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// IsSorted reports whether seq is non-decreasing.
func IsSorted(seq []int) bool {
	return slices.IsSorted(seq)
}
