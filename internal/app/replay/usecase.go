package replay

import (
	"context"
	"errors"
	"strings"

	"gridcourier/internal/app/ports"
	"gridcourier/internal/domain/delivery"
	"gridcourier/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Runs   ports.RunRepository
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.RunID = strings.TrimSpace(req.RunID)
	if req.RunID == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.FromTick != nil && req.ToTick != nil && *req.FromTick > *req.ToTick {
		return Response{}, ErrInvalidRequest
	}
	if u.Runs != nil {
		if _, err := u.Runs.GetByID(ctx, req.RunID); err != nil {
			return Response{}, err
		}
	}
	events, err := u.Events.ListByRunID(ctx, req.RunID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	latest := reconstruct(events)
	events = filterByTickWindow(events, req.FromTick, req.ToTick)
	return Response{RunID: req.RunID, Events: events, Latest: latest}, nil
}

func filterByTickWindow(events []delivery.Event, from, to *world.Tick) []delivery.Event {
	if from == nil && to == nil {
		return events
	}
	out := make([]delivery.Event, 0, len(events))
	for _, evt := range events {
		if from != nil && evt.Tick < *from {
			continue
		}
		if to != nil && evt.Tick > *to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func reconstruct(events []delivery.Event) Latest {
	latest := Latest{State: delivery.Planning.String()}
	for _, evt := range events {
		switch evt.Type {
		case delivery.EventPlanned, delivery.EventReplanned, delivery.EventStep:
			latest.State = delivery.Executing.String()
			latest.Position = evt.Position
			latest.Tick = evt.Tick
		case delivery.EventBlocked, delivery.EventReplanning:
			latest.State = delivery.Replanning.String()
			latest.Position = evt.Position
		case delivery.EventSucceeded:
			latest.State = delivery.Succeeded.String()
			latest.Position = evt.Position
			latest.Tick = evt.Tick
		case delivery.EventFailed:
			latest.State = delivery.Failed.String()
			latest.Position = evt.Position
			latest.Tick = evt.Tick
			latest.Reason = failureReason(evt.Detail)
		}
	}
	return latest
}

// failureReason reads the reason prefix of a failed event's detail.
func failureReason(detail string) string {
	reason, _, _ := strings.Cut(detail, ":")
	return strings.TrimSpace(reason)
}
