package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/reclass/pkg/observability"
)

// debugHooks reports save and upload events as debug log lines.
type debugHooks struct {
	logger *log.Logger
}

var (
	_ observability.SaveHooks   = debugHooks{}
	_ observability.UploadHooks = debugHooks{}
)

func (h debugHooks) OnSaveStart(target string, classCount int) {
	h.logger.Debug("Save started", "target", target, "classes", classCount)
}

func (h debugHooks) OnNodeSkipped(className, nodeName, kind string) {
	h.logger.Debug("Node skipped", "class", className, "node", nodeName, "kind", kind)
}

func (h debugHooks) OnSaveComplete(target string, classCount int, duration time.Duration, err error) {
	h.logger.Debug("Save finished", "target", target, "classes", classCount, "duration", duration.Round(time.Microsecond), "err", err)
}

func (h debugHooks) OnUploadStart(_ context.Context, bucket, key string, size int64) {
	h.logger.Debug("Upload started", "bucket", bucket, "key", key, "bytes", size)
}

func (h debugHooks) OnUploadComplete(_ context.Context, bucket, key string, duration time.Duration, err error) {
	h.logger.Debug("Upload finished", "bucket", bucket, "key", key, "duration", duration.Round(time.Millisecond), "err", err)
}

// registerHooks routes library events to l.
func registerHooks(l *log.Logger) {
	h := debugHooks{logger: l}
	observability.SetSaveHooks(h)
	observability.SetUploadHooks(h)
}
