package visualizer

import "github.com/alexisbeaulieu97/searchviz/internal/domain/search"

// FrameKind discriminates the payload carried by a Frame.
type FrameKind int

const (
	// FrameResort announces that binary search sorted its input. It is always
	// the first frame of a session when present.
	FrameResort FrameKind = iota + 1
	// FrameStep carries one probe.
	FrameStep
	// FrameResult carries the terminal outcome and is always the last frame.
	FrameResult
)

// String implements fmt.Stringer.
func (k FrameKind) String() string {
	switch k {
	case FrameResort:
		return "resort"
	case FrameStep:
		return "step"
	case FrameResult:
		return "result"
	}
	return "unknown"
}

// Frame is one unit of presenter work. Only the field matching Kind is set.
type Frame struct {
	Kind   FrameKind
	Sort   search.SortEvent
	Step   search.Step
	Result search.Result
}

// Info describes a session to a presenter before any frame is rendered.
type Info struct {
	ID        string
	Algorithm search.Algorithm
	Input     string
	Sequence  []int
	Target    int
}
