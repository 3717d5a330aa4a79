package logged

import (
	"go.uber.org/zap"
)

// Reporter writes stream events to a zap logger.
type Reporter struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Reporter {
	return &Reporter{log.Named("report")}
}

func (r *Reporter) Line(stream string, size int) {
	r.log.Debug("line", zap.String("stream", stream), zap.Int("size", size))
}

func (r *Reporter) End(stream string, err error) {
	if err != nil {
		r.log.Error("stream failed", zap.String("stream", stream), zap.Error(err))
		return
	}
	r.log.Info("stream done", zap.String("stream", stream))
}

// Close leaves syncing to the logger owner.
func (r *Reporter) Close() error { return nil }
