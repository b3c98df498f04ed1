package search

import (
	"iter"
	"slices"
)

// Run is a single, non-restartable search over one input. Steps are produced
// lazily by Next; the engine never blocks, so pacing belongs to the caller.
type Run struct {
	algorithm Algorithm
	seq       []int
	target    int
	sortEvent *SortEvent

	cursor      int
	left, right int
	comparisons int

	done   bool
	result Result
}

// Start prepares a run of algo over seq. The sequence is copied; for binary
// search an unsorted copy is sorted ascending and the change is reported via
// SortEvent, which must reach the presenter before the first Step.
func Start(seq []int, target int, algo Algorithm) (*Run, error) {
	algo, err := ParseAlgorithm(string(algo))
	if err != nil {
		return nil, err
	}

	r := &Run{
		algorithm: algo,
		seq:       slices.Clone(seq),
		target:    target,
		right:     len(seq) - 1,
	}

	if algo == AlgorithmBinary && !IsSorted(r.seq) {
		before := slices.Clone(r.seq)
		slices.Sort(r.seq)
		r.sortEvent = &SortEvent{Before: before, After: slices.Clone(r.seq)}
	}

	if len(r.seq) == 0 {
		r.finish(false, NotFound)
	}

	return r, nil
}

// StartInput is Start over a normalized Input.
func StartInput(in Input, algo Algorithm) (*Run, error) {
	return Start(in.Sequence, in.Target, algo)
}

// Next produces the next Step. It returns false once the run is exhausted, at
// which point Result is available.
func (r *Run) Next() (Step, bool) {
	if r.done {
		return Step{}, false
	}
	if r.algorithm == AlgorithmBinary {
		return r.nextBinary(), true
	}
	return r.nextLinear(), true
}

func (r *Run) nextLinear() Step {
	step := r.probe(r.cursor, nil)
	r.cursor++

	switch {
	case step.Matched:
		r.finish(true, step.Index)
	case r.cursor >= len(r.seq):
		r.finish(false, NotFound)
	}
	return step
}

func (r *Run) nextBinary() Step {
	mid := r.left + (r.right-r.left)/2
	step := r.probe(mid, &Bounds{Left: r.left, Right: r.right})

	switch {
	case step.Matched:
		r.finish(true, mid)
		return step
	case step.Value < r.target:
		r.left = mid + 1
	default:
		r.right = mid - 1
	}

	if r.left > r.right {
		r.finish(false, NotFound)
	}
	return step
}

func (r *Run) probe(index int, bounds *Bounds) Step {
	r.comparisons++
	value := r.seq[index]
	return Step{
		Index:       index,
		Value:       value,
		Comparisons: r.comparisons,
		Bounds:      bounds,
		Matched:     value == r.target,
	}
}

func (r *Run) finish(found bool, index int) {
	r.done = true
	r.result = Result{Found: found, Index: index, TotalComparisons: r.comparisons}
}

// Steps adapts the run to a range-over-func iterator. Breaking out of the loop
// leaves the run where it stopped.
func (r *Run) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			step, ok := r.Next()
			if !ok || !yield(step) {
				return
			}
		}
	}
}

// Done reports whether the final Step has been produced.
func (r *Run) Done() bool {
	return r.done
}

// Result returns the terminal outcome once the run is done.
func (r *Run) Result() (Result, bool) {
	if !r.done {
		return Result{}, false
	}
	return r.result, true
}

// SortEvent returns the re-sort applied before a binary search, if any.
func (r *Run) SortEvent() (SortEvent, bool) {
	if r.sortEvent == nil {
		return SortEvent{}, false
	}
	return *r.sortEvent, true
}

// Algorithm returns the strategy this run executes.
func (r *Run) Algorithm() Algorithm {
	return r.algorithm
}

// Sequence returns a copy of the sequence actually searched.
func (r *Run) Sequence() []int {
	return slices.Clone(r.seq)
}

// Target returns the value being searched for.
func (r *Run) Target() int {
	return r.target
}

// Comparisons returns the number of probes performed so far.
func (r *Run) Comparisons() int {
	return r.comparisons
}
