package visualizer

import (
	"context"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
	"github.com/alexisbeaulieu97/searchviz/internal/ports"
)

// Session is one search run exposed as an ordered frame stream. A presenter
// pulls frames with Next at its own pace and may call Close at any time to
// abandon the run. Sessions are not safe for concurrent use.
type Session struct {
	service *Service
	run     *search.Run
	info    Info
	log     ports.Logger

	resortSent bool
	resultSent bool
	closed     bool
}

// Info describes the session.
func (s *Session) Info() Info {
	return s.info
}

// Searched returns the sequence the algorithm actually scans, which differs
// from Info().Sequence after a binary-search re-sort.
func (s *Session) Searched() []int {
	return s.run.Sequence()
}

// Next returns the next frame: the re-sort notice (if any), then one frame per
// probe, then the result. It returns false once the result has been delivered
// or the session was closed.
func (s *Session) Next(ctx context.Context) (Frame, bool) {
	if s.closed {
		return Frame{}, false
	}

	if !s.resortSent {
		s.resortSent = true
		if ev, ok := s.run.SortEvent(); ok {
			s.service.publish(ctx, ports.EventSequenceResorted, map[string]interface{}{
				"session_id": s.info.ID,
				"before":     search.Format(ev.Before),
				"after":      search.Format(ev.After),
			})
			return Frame{Kind: FrameResort, Sort: ev}, true
		}
	}

	if step, ok := s.run.Next(); ok {
		s.service.publish(ctx, ports.EventStepProduced, stepPayload(s.info.ID, step))
		return Frame{Kind: FrameStep, Step: step}, true
	}

	if !s.resultSent {
		s.resultSent = true
		res, _ := s.run.Result()
		s.service.publish(ctx, ports.EventSearchCompleted, resultPayload(s.info.ID, res))
		s.service.record(ctx, s, true)
		s.closed = true
		return Frame{Kind: FrameResult, Result: res}, true
	}

	return Frame{}, false
}

// Result returns the outcome once the result frame has been delivered.
func (s *Session) Result() (search.Result, bool) {
	if !s.resultSent {
		return search.Result{}, false
	}
	return s.run.Result()
}

// Done reports whether no further frames will be produced.
func (s *Session) Done() bool {
	return s.closed
}

// Comparisons returns the probes performed so far.
func (s *Session) Comparisons() int {
	return s.run.Comparisons()
}

// Close abandons the session. Closing after the result frame is a no-op;
// closing earlier records the partial run and emits an abandoned event.
func (s *Session) Close(ctx context.Context) {
	if s.closed {
		return
	}
	s.closed = true
	s.service.publish(ctx, ports.EventSearchAbandoned, map[string]interface{}{
		"session_id":  s.info.ID,
		"comparisons": s.run.Comparisons(),
	})
	s.service.record(ctx, s, false)
}
