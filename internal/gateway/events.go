package gateway

import (
	"context"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"styr/internal/basedirs"
)

// ChangedTopic is emitted with the full list after every successful mutation.
const ChangedTopic = "basedirs:changed"

type emitFunc func(ctx context.Context, eventName string, optionalData ...interface{})

// NewEventEmitter returns a store listener forwarding changes to the webview.
// Events are dropped while no app context is available.
func NewEventEmitter(ctxProvider func() context.Context) basedirs.Listener {
	return newEmitter(ctxProvider, wailsruntime.EventsEmit)
}

func newEmitter(ctxProvider func() context.Context, emit emitFunc) basedirs.Listener {
	return func(dirs []string) {
		if ctxProvider == nil {
			return
		}
		ctx := ctxProvider()
		if ctx == nil {
			return
		}
		emit(ctx, ChangedTopic, dirs)
	}
}
