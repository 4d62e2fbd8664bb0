package zapsink

import (
	"context"
	"errors"

	goBoard "github.com/MrEthical07/goBoard"
	"go.uber.org/zap"
)

var ErrNilLogger = errors.New("nil logger")

type Sink struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) (*Sink, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &Sink{logger: logger}, nil
}

func (s *Sink) Emit(ctx context.Context, event goBoard.AuditEvent) {
	if s == nil || s.logger == nil {
		return
	}

	// Event timestamps predate the log write; the dispatcher delivers asynchronously.
	fields := make([]zap.Field, 0, 8)
	fields = append(fields,
		zap.Time("timestamp", event.Timestamp),
		zap.Bool("success", event.Success),
	)
	if event.EngineID != "" {
		fields = append(fields, zap.String("engine_id", event.EngineID))
	}
	if event.LoginID != "" {
		fields = append(fields, zap.String("login_id", event.LoginID))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.Error != "" {
		fields = append(fields, zap.String("error", event.Error))
	}
	if len(event.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", event.Metadata))
	}

	if event.Success {
		s.logger.Info(event.EventType, fields...)
		return
	}
	s.logger.Warn(event.EventType, fields...)
}
