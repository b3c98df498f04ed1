package search

// Trace is a fully materialised run, used where the whole step sequence is
// needed at once (comparisons, tests, JSON export).
type Trace struct {
	Algorithm Algorithm  `json:"algorithm"`
	Sequence  []int      `json:"sequence"`
	Target    int        `json:"target"`
	Sort      *SortEvent `json:"sort,omitempty"`
	Steps     []Step     `json:"steps"`
	Result    Result     `json:"result"`
}

// Collect drains r into a Trace.
func Collect(r *Run) Trace {
	trace := Trace{
		Algorithm: r.Algorithm(),
		Sequence:  r.Sequence(),
		Target:    r.Target(),
	}
	if ev, ok := r.SortEvent(); ok {
		trace.Sort = &ev
	}
	for step := range r.Steps() {
		trace.Steps = append(trace.Steps, step)
	}
	trace.Result, _ = r.Result()
	return trace
}

// Search normalizes text and runs algo to completion.
func Search(text string, algo Algorithm) (Trace, error) {
	in, err := Normalize(text)
	if err != nil {
		return Trace{}, err
	}
	run, err := StartInput(in, algo)
	if err != nil {
		return Trace{}, err
	}
	return Collect(run), nil
}
