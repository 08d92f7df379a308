package logging

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// NewJSON builds the service logger: a slog front end over a zap JSON core,
// so call sites use the standard structured API while encoding and level
// gating stay on zap.
func NewJSON(level Level) *slog.Logger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		level,
	)

	return FromCore(core)
}

// FromCore wraps an arbitrary zap core in a slog logger. Used by tests to
// log into an observer core.
func FromCore(core zapcore.Core) *slog.Logger {
	if core == nil {
		core = zapcore.NewNopCore()
	}
	return slog.New(&zapHandler{core: core})
}

func NewNop() *slog.Logger {
	return FromCore(zapcore.NewNopCore())
}

// zapHandler adapts slog records onto a zap core. Records carry the span
// context of the call as trace_id/span_id fields when one is present.
type zapHandler struct {
	core   zapcore.Core
	fields []zapcore.Field
	group  string
}

func (h *zapHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.core.Enabled(zapLevel(level))
}

func (h *zapHandler) Handle(ctx context.Context, rec slog.Record) error {
	checked := h.core.Check(zapcore.Entry{
		Level:   zapLevel(rec.Level),
		Time:    rec.Time,
		Message: rec.Message,
	}, nil)
	if checked == nil {
		return nil
	}

	fields := make([]zapcore.Field, 0, len(h.fields)+rec.NumAttrs()+2)
	fields = append(fields, h.fields...)
	rec.Attrs(func(attr slog.Attr) bool {
		fields = append(fields, h.zapField(attr))
		return true
	})
	fields = append(fields, traceFields(ctx)...)

	checked.Write(fields...)
	return nil
}

func (h *zapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	fields := make([]zapcore.Field, 0, len(h.fields)+len(attrs))
	fields = append(fields, h.fields...)
	for _, attr := range attrs {
		fields = append(fields, h.zapField(attr))
	}

	return &zapHandler{core: h.core, fields: fields, group: h.group}
}

func (h *zapHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	group := name
	if h.group != "" {
		group = h.group + "." + name
	}

	return &zapHandler{core: h.core, fields: h.fields, group: group}
}

func (h *zapHandler) zapField(attr slog.Attr) zapcore.Field {
	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}

	value := attr.Value.Resolve()
	if err, ok := value.Any().(error); ok {
		return zap.NamedError(key, err)
	}
	return zap.Any(key, value.Any())
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func traceFields(ctx context.Context) []zapcore.Field {
	if ctx == nil {
		return nil
	}
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}
	return []zapcore.Field{
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	}
}
