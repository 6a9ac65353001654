package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit delivers a backend event to the frontend. It is a no-op until
// EnableRuntimeEmitter is called, so packages can emit from tests without a
// Wails runtime.
var Emit = func(ctx context.Context, name string, payload any) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, payload any) {
		runtime.EventsEmit(ctx, name, payload)
		logRuntimeEvent(ctx, name, payload)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, payload any)) {
	if f == nil {
		Emit = func(context.Context, string, any) {}
		return
	}
	Emit = f
}
