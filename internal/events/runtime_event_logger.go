package events

import (
	"context"
	"encoding/json"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func logRuntimeEvent(ctx context.Context, name string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		runtime.LogError(ctx, "events: failed to marshal "+name+": "+err.Error())
		return
	}

	msg := name + " " + string(data)

	notice, ok := payload.(Notice)
	if !ok {
		runtime.LogDebug(ctx, msg)
		return
	}
	switch notice.Type {
	case NoticeError:
		runtime.LogError(ctx, msg)
	case NoticeWarn:
		runtime.LogWarning(ctx, msg)
	default:
		runtime.LogInfo(ctx, msg)
	}
}
