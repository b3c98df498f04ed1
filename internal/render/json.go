package render

import (
	"context"
	"encoding/json"
	"io"

	"github.com/alexisbeaulieu97/searchviz/internal/app/visualizer"
	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
)

// Record is one line of JSON output. Only the fields matching Type are set.
type Record struct {
	Type      string            `json:"type"`
	SessionID string            `json:"session_id,omitempty"`
	Algorithm string            `json:"algorithm,omitempty"`
	Sequence  []int             `json:"sequence,omitempty"`
	Target    *int              `json:"target,omitempty"`
	Sort      *search.SortEvent `json:"sort,omitempty"`
	Step      *search.Step      `json:"step,omitempty"`
	Result    *search.Result    `json:"result,omitempty"`
}

// JSON writes each frame as a newline-delimited JSON record.
type JSON struct {
	enc   *json.Encoder
	pacer *Pacer
	id    string
}

// NewJSON creates a JSON-lines presenter writing to w.
func NewJSON(w io.Writer, opts Options) *JSON {
	return &JSON{enc: json.NewEncoder(w), pacer: NewPacer(opts.Delay)}
}

// Begin implements visualizer.Presenter.
func (j *JSON) Begin(_ context.Context, info visualizer.Info) error {
	j.id = info.ID
	target := info.Target
	return j.enc.Encode(Record{
		Type:      "begin",
		SessionID: info.ID,
		Algorithm: string(info.Algorithm),
		Sequence:  info.Sequence,
		Target:    &target,
	})
}

// Resorted implements visualizer.Presenter.
func (j *JSON) Resorted(_ context.Context, ev search.SortEvent) error {
	return j.enc.Encode(Record{Type: "resort", SessionID: j.id, Sort: &ev})
}

// Step implements visualizer.Presenter.
func (j *JSON) Step(ctx context.Context, step search.Step) error {
	if err := j.pacer.Wait(ctx); err != nil {
		return err
	}
	return j.enc.Encode(Record{Type: "step", SessionID: j.id, Step: &step})
}

// Finished implements visualizer.Presenter.
func (j *JSON) Finished(_ context.Context, res search.Result) error {
	return j.enc.Encode(Record{Type: "result", SessionID: j.id, Result: &res})
}

var _ visualizer.Presenter = (*JSON)(nil)
