package visualizer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
	"github.com/alexisbeaulieu97/searchviz/internal/infrastructure/history"
	"github.com/alexisbeaulieu97/searchviz/internal/ports"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event ports.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Subscribe(string, ports.EventHandler) (ports.Subscription, error) {
	return nil, errors.New("not supported")
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.EventType()
	}
	return out
}

type memoryHistory struct {
	records []ports.RunRecord
	err     error
}

func (m *memoryHistory) Record(_ context.Context, rec ports.RunRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memoryHistory) Recent(_ context.Context, limit int) ([]ports.RunRecord, error) {
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

func (m *memoryHistory) Close() error { return nil }

type scriptPresenter struct {
	calls  []string
	failOn string
}

func (p *scriptPresenter) note(call string) error {
	p.calls = append(p.calls, call)
	if p.failOn != "" && call == p.failOn {
		return errors.New("window closed")
	}
	return nil
}

func (p *scriptPresenter) Begin(_ context.Context, info Info) error {
	return p.note(fmt.Sprintf("begin %s %v", info.Algorithm, info.Sequence))
}

func (p *scriptPresenter) Resorted(_ context.Context, ev search.SortEvent) error {
	return p.note(fmt.Sprintf("resort %v", ev.After))
}

func (p *scriptPresenter) Step(_ context.Context, step search.Step) error {
	return p.note(fmt.Sprintf("step %d", step.Index))
}

func (p *scriptPresenter) Finished(_ context.Context, res search.Result) error {
	return p.note(fmt.Sprintf("result %t %d %d", res.Found, res.Index, res.TotalComparisons))
}

func newTestService(pub ports.EventPublisher, hist ports.HistoryStore) *Service {
	clock := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return NewService(
		WithPublisher(pub),
		WithHistory(hist),
		WithClock(func() time.Time { return clock }),
		WithIDGenerator(func() string { return "session-1" }),
	)
}

func TestDriveLinearSearch(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	hist := &memoryHistory{}
	svc := newTestService(pub, hist)
	presenter := &scriptPresenter{}

	res, err := svc.Drive(context.Background(), Request{Input: "5,3,8,1,9", Algorithm: search.AlgorithmLinear}, presenter)
	require.NoError(t, err)
	require.Equal(t, search.Result{Found: true, Index: 4, TotalComparisons: 5}, res)

	require.Equal(t, []string{
		"begin linear [5 3 8 1 9]",
		"step 0", "step 1", "step 2", "step 3", "step 4",
		"result true 4 5",
	}, presenter.calls)

	require.Equal(t, []string{
		ports.EventSearchStarted,
		ports.EventStepProduced, ports.EventStepProduced, ports.EventStepProduced, ports.EventStepProduced, ports.EventStepProduced,
		ports.EventSearchCompleted,
	}, pub.types())

	require.Len(t, hist.records, 1)
	rec := hist.records[0]
	require.Equal(t, "session-1", rec.ID)
	require.Equal(t, "linear", rec.Algorithm)
	require.Equal(t, "5,3,8,1,9", rec.Input)
	require.True(t, rec.Found)
	require.True(t, rec.Completed)
	require.False(t, rec.Resorted)
	require.Equal(t, 5, rec.Comparisons)
}

func TestDriveBinaryResortsBeforeFirstStep(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	hist := &memoryHistory{}
	svc := newTestService(pub, hist)
	presenter := &scriptPresenter{}

	res, err := svc.Drive(context.Background(), Request{Input: "7,2,9,2", Algorithm: search.AlgorithmBinary}, presenter)
	require.NoError(t, err)
	require.True(t, res.Found)

	require.Equal(t, "begin binary [7 2 9 2]", presenter.calls[0])
	require.Equal(t, "resort [2 2 7 9]", presenter.calls[1])
	require.Contains(t, presenter.calls[2], "step")

	types := pub.types()
	require.Equal(t, ports.EventSearchStarted, types[0])
	require.Equal(t, ports.EventSequenceResorted, types[1])
	require.Equal(t, ports.EventStepProduced, types[2])

	resorts := 0
	for _, typ := range types {
		if typ == ports.EventSequenceResorted {
			resorts++
		}
	}
	require.Equal(t, 1, resorts)
	require.True(t, hist.records[0].Resorted)
}

func TestStartRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	hist := &memoryHistory{}
	svc := newTestService(pub, hist)
	presenter := &scriptPresenter{}

	_, err := svc.Drive(context.Background(), Request{Input: "1,x,3", Algorithm: search.AlgorithmLinear}, presenter)
	require.ErrorIs(t, err, search.ErrInvalidInput)

	var invalid *search.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "x", invalid.Token)

	require.Empty(t, presenter.calls)
	require.Empty(t, hist.records)
	require.Equal(t, []string{ports.EventSearchRejected}, pub.types())
	payload := pub.events[0].Payload().(map[string]interface{})
	require.Equal(t, "x", payload["token"])
	require.Equal(t, 1, payload["position"])
}

func TestStartRejectsUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	svc := NewService()
	_, err := svc.Start(context.Background(), Request{Input: "1,2", Algorithm: "ternary"})
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestPresenterErrorAbandonsSession(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	hist := &memoryHistory{}
	svc := newTestService(pub, hist)
	presenter := &scriptPresenter{failOn: "step 1"}

	_, err := svc.Drive(context.Background(), Request{Input: "5,3,8,1,9", Algorithm: search.AlgorithmLinear}, presenter)
	require.Error(t, err)
	require.Contains(t, err.Error(), "presenter step")

	types := pub.types()
	require.Equal(t, ports.EventSearchAbandoned, types[len(types)-1])
	require.Len(t, hist.records, 1)
	require.False(t, hist.records[0].Completed)
	require.Equal(t, 2, hist.records[0].Comparisons)
	require.Equal(t, search.NotFound, hist.records[0].Index)
}

type cancellingPresenter struct {
	scriptPresenter
	cancel context.CancelFunc
}

func (p *cancellingPresenter) Step(ctx context.Context, step search.Step) error {
	p.cancel()
	return p.scriptPresenter.Step(ctx, step)
}

func TestCancelledDriveStillRecordsAbandonedRun(t *testing.T) {
	t.Parallel()

	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	svc := newTestService(&recordingPublisher{}, store)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	presenter := &cancellingPresenter{cancel: cancel}

	_, err = svc.Drive(ctx, Request{Input: "5,3,8,1,9", Algorithm: search.AlgorithmLinear}, presenter)
	require.ErrorIs(t, err, context.Canceled)

	runs, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "session-1", runs[0].ID)
	require.False(t, runs[0].Completed)
	require.Equal(t, 1, runs[0].Comparisons)
	require.Equal(t, search.NotFound, runs[0].Index)
}

func TestDriveStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	svc := NewService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	presenter := &scriptPresenter{}
	_, err := svc.Drive(ctx, Request{Input: "1,2,3", Algorithm: search.AlgorithmLinear}, presenter)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, presenter.calls, 1, "only Begin runs before cancellation is observed")
}

func TestSessionPullsFramesInOrder(t *testing.T) {
	t.Parallel()

	svc := NewService()
	session, err := svc.Start(context.Background(), Request{Input: "1,3,5,8,9,8", Algorithm: search.AlgorithmBinary})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 5, 8, 9, 8}, session.Info().Sequence)

	var kinds []FrameKind
	for {
		frame, ok := session.Next(context.Background())
		if !ok {
			break
		}
		kinds = append(kinds, frame.Kind)
	}

	require.Equal(t, FrameResort, kinds[0])
	require.Equal(t, FrameResult, kinds[len(kinds)-1])
	for _, k := range kinds[1 : len(kinds)-1] {
		require.Equal(t, FrameStep, k)
	}
	require.True(t, session.Done())
	require.Equal(t, []int{1, 3, 5, 8, 8, 9}, session.Searched())

	res, ok := session.Result()
	require.True(t, ok)
	require.True(t, res.Found)
	require.Equal(t, session.Comparisons(), res.TotalComparisons)
}

func TestSessionCloseAfterResultIsNoop(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	hist := &memoryHistory{}
	svc := newTestService(pub, hist)

	session, err := svc.Start(context.Background(), Request{Input: "4", Algorithm: search.AlgorithmLinear})
	require.NoError(t, err)
	for {
		if _, ok := session.Next(context.Background()); !ok {
			break
		}
	}
	session.Close(context.Background())

	require.Len(t, hist.records, 1)
	require.True(t, hist.records[0].Completed)
	require.NotContains(t, pub.types(), ports.EventSearchAbandoned)
}

func TestHistoryFailureDoesNotAbortSearch(t *testing.T) {
	t.Parallel()

	svc := newTestService(&recordingPublisher{}, &memoryHistory{err: errors.New("disk full")})
	res, err := svc.Drive(context.Background(), Request{Input: "2,1", Algorithm: search.AlgorithmLinear}, &scriptPresenter{})
	require.NoError(t, err)
	require.True(t, res.Found)
}

func TestCompareRunsEveryAlgorithm(t *testing.T) {
	t.Parallel()

	svc := NewService()
	traces, err := svc.Compare(context.Background(), "1,3,5,8,9,8")
	require.NoError(t, err)
	require.Len(t, traces, 2)

	require.Equal(t, search.AlgorithmLinear, traces[0].Algorithm)
	require.Equal(t, search.Result{Found: true, Index: 3, TotalComparisons: 4}, traces[0].Result)

	require.Equal(t, search.AlgorithmBinary, traces[1].Algorithm)
	require.NotNil(t, traces[1].Sort)
	require.True(t, traces[1].Result.Found)
}

func TestCompareRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := NewService().Compare(context.Background(), "", search.AlgorithmLinear)
	require.ErrorIs(t, err, search.ErrInvalidInput)
}

func TestHistoryDisabled(t *testing.T) {
	t.Parallel()

	_, err := NewService().History(context.Background(), 5)
	require.ErrorIs(t, err, ErrHistoryDisabled)

	hist := &memoryHistory{records: []ports.RunRecord{{ID: "a"}, {ID: "b"}}}
	records, err := newTestService(nil, hist).History(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []ports.RunRecord{{ID: "a"}}, records)
}

func TestFrameKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "resort", FrameResort.String())
	require.Equal(t, "step", FrameStep.String())
	require.Equal(t, "result", FrameResult.String())
	require.Equal(t, "unknown", FrameKind(0).String())
}
