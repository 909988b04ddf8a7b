package framework

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// StructuredTestLogger writes one structured log entry per probe event, for runs whose
// output is collected by a log pipeline rather than read on a console.
type StructuredTestLogger struct {
	logger *zap.Logger
}

func NewStructuredTestLogger(logger *zap.Logger) *StructuredTestLogger {
	return &StructuredTestLogger{logger: logger}
}

func (s *StructuredTestLogger) TestStarted(id TestID) {
	s.logger.Info("probe_started", zap.String("probe", id.String()))
}

func (s *StructuredTestLogger) TestError(id TestID, err error) {
	s.logger.Warn("probe_error", zap.String("probe", id.String()), zap.Error(err))
}

func (s *StructuredTestLogger) TestFinished(id TestID, result TestResult, debugOutput CapturedOutput) {
	fields := []zap.Field{
		zap.String("probe", id.String()),
		zap.Bool("success", result.Passed()),
		zap.String("message", result.Message),
	}
	if result.Detail != "" {
		fields = append(fields, zap.String("detail", result.Detail))
	}
	if errs := multierr.Errors(result.Err()); len(errs) > 0 {
		fields = append(fields, zap.Errors("errors", errs))
	}
	if len(debugOutput) > 0 {
		fields = append(fields, zap.Strings("debug", debugOutput.Lines()))
	}
	s.logger.Info("probe_finished", fields...)
}

func (s *StructuredTestLogger) TestSkipped(id TestID, reason string) {
	s.logger.Info("probe_skipped", zap.String("probe", id.String()), zap.String("reason", reason))
}

func (s *StructuredTestLogger) CheckFinished(id TestID, result TestResult) {
	s.logger.Info("check_finished",
		zap.String("check", id.String()),
		zap.Bool("success", result.Passed()),
		zap.String("message", result.Message),
	)
}

// Sync flushes buffered log entries.
func (s *StructuredTestLogger) Sync() error {
	return s.logger.Sync()
}
