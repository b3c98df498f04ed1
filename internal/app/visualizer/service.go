package visualizer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
	"github.com/alexisbeaulieu97/searchviz/internal/logger"
	"github.com/alexisbeaulieu97/searchviz/internal/ports"
)

// ErrHistoryDisabled is returned by History when no store is configured.
var ErrHistoryDisabled = errors.New("run history is disabled")

// Service starts search sessions and wires them to events and run history.
type Service struct {
	publisher ports.EventPublisher
	history   ports.HistoryStore
	logger    ports.Logger
	now       func() time.Time
	newID     func() string
}

// Option customises a Service.
type Option func(*Service)

// WithPublisher routes session events to publisher.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

// WithHistory records finished sessions in store.
func WithHistory(store ports.HistoryStore) Option {
	return func(s *Service) { s.history = store }
}

// WithLogger sets the service logger.
func WithLogger(log ports.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithClock overrides the timestamp source used for history records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides session id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService constructs a Service. Without options it logs nothing and keeps no history.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger: logger.NewNoOpLogger(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "visualizer")
	return s
}

// Request describes a search to run.
type Request struct {
	Input     string
	Algorithm search.Algorithm
}

// Start validates the request and returns a session ready to produce frames.
// Malformed input fails with *search.InvalidInputError before any frame exists.
func (s *Service) Start(ctx context.Context, req Request) (*Session, error) {
	algo, err := search.ParseAlgorithm(string(req.Algorithm))
	if err != nil {
		return nil, err
	}

	in, err := search.Normalize(req.Input)
	if err != nil {
		payload := map[string]interface{}{"algorithm": string(algo), "error": err.Error()}
		var invalid *search.InvalidInputError
		if errors.As(err, &invalid) {
			payload["token"] = invalid.Token
			payload["position"] = invalid.Position
		}
		s.publish(ctx, ports.EventSearchRejected, payload)
		return nil, err
	}

	run, err := search.StartInput(in, algo)
	if err != nil {
		return nil, err
	}

	session := &Session{
		service: s,
		run:     run,
		info: Info{
			ID:        s.newID(),
			Algorithm: algo,
			Input:     search.Format(in.Sequence),
			Sequence:  slices.Clone(in.Sequence),
			Target:    in.Target,
		},
	}
	session.log = s.logger.With("session_id", session.info.ID, "algorithm", string(algo))

	s.publish(ctx, ports.EventSearchStarted, map[string]interface{}{
		"session_id": session.info.ID,
		"algorithm":  string(algo),
		"length":     len(in.Sequence),
		"target":     in.Target,
	})
	session.log.Debug(ctx, "session started", "length", len(in.Sequence), "target", in.Target)

	return session, nil
}

// Presenter renders a session pushed to it by Drive. Each method may block to
// pace the display; returning an error stops the session.
type Presenter interface {
	Begin(ctx context.Context, info Info) error
	Resorted(ctx context.Context, ev search.SortEvent) error
	Step(ctx context.Context, step search.Step) error
	Finished(ctx context.Context, res search.Result) error
}

// Drive starts a session and feeds every frame to p in order.
func (s *Service) Drive(ctx context.Context, req Request, p Presenter) (search.Result, error) {
	session, err := s.Start(ctx, req)
	if err != nil {
		return search.Result{}, err
	}
	defer session.Close(ctx)

	if err := p.Begin(ctx, session.Info()); err != nil {
		return search.Result{}, fmt.Errorf("presenter begin: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return search.Result{}, err
		}

		frame, ok := session.Next(ctx)
		if !ok {
			break
		}

		switch frame.Kind {
		case FrameResort:
			err = p.Resorted(ctx, frame.Sort)
		case FrameStep:
			err = p.Step(ctx, frame.Step)
		case FrameResult:
			err = p.Finished(ctx, frame.Result)
		}
		if err != nil {
			return search.Result{}, fmt.Errorf("presenter %s: %w", frame.Kind, err)
		}
	}

	res, _ := session.Result()
	return res, nil
}

// Compare runs every algorithm over the same input concurrently and returns
// the traces in the order requested.
func (s *Service) Compare(ctx context.Context, input string, algos ...search.Algorithm) ([]search.Trace, error) {
	if len(algos) == 0 {
		algos = search.Algorithms
	}

	in, err := search.Normalize(input)
	if err != nil {
		return nil, err
	}

	traces := make([]search.Trace, len(algos))
	g, gctx := errgroup.WithContext(ctx)
	for i, algo := range algos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run, err := search.StartInput(in, algo)
			if err != nil {
				return err
			}
			traces[i] = search.Collect(run)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "comparison finished", "algorithms", len(algos), "length", len(in.Sequence))
	return traces, nil
}

// History returns the most recent recorded runs.
func (s *Service) History(ctx context.Context, limit int) ([]ports.RunRecord, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.Recent(ctx, limit)
}

func (s *Service) record(ctx context.Context, session *Session, completed bool) {
	if s.history == nil {
		return
	}

	rec := ports.RunRecord{
		ID:          session.info.ID,
		Algorithm:   string(session.info.Algorithm),
		Input:       session.info.Input,
		Target:      session.info.Target,
		Index:       search.NotFound,
		Comparisons: session.run.Comparisons(),
		Completed:   completed,
		CreatedAt:   s.now(),
	}
	if _, ok := session.run.SortEvent(); ok {
		rec.Resorted = true
	}
	if res, ok := session.run.Result(); ok {
		rec.Found = res.Found
		rec.Index = res.Index
	}

	// Abandoned runs are usually recorded after ctx was cancelled.
	if err := s.history.Record(context.WithoutCancel(ctx), rec); err != nil {
		session.log.Warn(ctx, "failed to record run", "error", err)
	}
}
