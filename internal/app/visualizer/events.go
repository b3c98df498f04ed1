package visualizer

import (
	"context"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
	"github.com/alexisbeaulieu97/searchviz/internal/ports"
)

type searchEvent struct {
	eventType string
	payload   map[string]interface{}
}

func (e searchEvent) EventType() string {
	return e.eventType
}

func (e searchEvent) Payload() interface{} {
	return e.payload
}

func (s *Service) publish(ctx context.Context, eventType string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, searchEvent{eventType: eventType, payload: payload}); err != nil {
		s.logger.Warn(ctx, "failed to publish search event", "event_type", eventType, "error", err)
	}
}

func stepPayload(sessionID string, step search.Step) map[string]interface{} {
	payload := map[string]interface{}{
		"session_id":  sessionID,
		"index":       step.Index,
		"value":       step.Value,
		"comparisons": step.Comparisons,
		"matched":     step.Matched,
	}
	if step.Bounds != nil {
		payload["left"] = step.Bounds.Left
		payload["right"] = step.Bounds.Right
	}
	return payload
}

func resultPayload(sessionID string, res search.Result) map[string]interface{} {
	return map[string]interface{}{
		"session_id":  sessionID,
		"found":       res.Found,
		"index":       res.Index,
		"comparisons": res.TotalComparisons,
	}
}

var _ ports.DomainEvent = searchEvent{}
