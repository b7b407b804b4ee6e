package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var Emit = func(ctx context.Context, name string, evt StudioEvent) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt StudioEvent) {
		if evt.TurnKey == "" {
			if turn := TurnFromContext(ctx); turn != "" {
				evt.TurnKey = turn
			}
		}

		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt StudioEvent)) {
	if f == nil {
		Emit = func(context.Context, string, StudioEvent) {}
		return
	}
	Emit = func(ctx context.Context, name string, evt StudioEvent) {
		if evt.TurnKey == "" {
			if turn := TurnFromContext(ctx); turn != "" {
				evt.TurnKey = turn
			}
		}
		f(ctx, name, evt)
	}
}
