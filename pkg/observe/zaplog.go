package observe

import (
	"go.uber.org/zap"

	"github.com/quantward/tasignal/pkg/logger"
)

// ZapObserver logs every record through a zap logger: successful
// computations at debug level, failures at warn.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver wraps log; a nil log falls back to the package logger.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	if log == nil {
		log = logger.Get()
	}
	return &ZapObserver{log: log}
}

// Observe logs one computation record.
func (z *ZapObserver) Observe(rec Record) {
	fields := []zap.Field{
		zap.String("indicator", rec.Indicator),
		zap.Int("bars", rec.Bars),
		zap.Any("params", rec.Params),
		zap.Duration("elapsed", rec.Elapsed),
	}
	if rec.Err != nil {
		z.log.Warn("indicator computation failed", append(fields, zap.Error(rec.Err))...)
		return
	}
	z.log.Debug("indicator computed", append(fields, zap.Any("result", rec.Result))...)
}
