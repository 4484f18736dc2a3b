package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventModuleStart  EventType = "module_start"
	EventPartComplete EventType = "part_complete"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ModuleEvent is emitted before a puzzle's input is resolved.
type ModuleEvent struct {
	EventBase
	Descriptor Descriptor `json:"descriptor"`
	Variant    Variant    `json:"variant"`
}

// PartEvent is emitted once per produced ExecutionResult.
type PartEvent struct {
	EventBase
	Descriptor Descriptor      `json:"descriptor"`
	Result     ExecutionResult `json:"result"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnModuleStart  func(context.Context, *ModuleEvent)
	OnPartComplete func(context.Context, *PartEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnModuleStart: func(ctx context.Context, e *ModuleEvent) {
			if h.OnModuleStart != nil {
				h.OnModuleStart(ctx, e)
			}
			if other.OnModuleStart != nil {
				other.OnModuleStart(ctx, e)
			}
		},
		OnPartComplete: func(ctx context.Context, e *PartEvent) {
			if h.OnPartComplete != nil {
				h.OnPartComplete(ctx, e)
			}
			if other.OnPartComplete != nil {
				other.OnPartComplete(ctx, e)
			}
		},
	}
}
