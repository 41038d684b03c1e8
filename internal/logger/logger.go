// Package logger is the structured logging facade used across the service.
package logger

import (
    "fmt"
    "strings"
    "time"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

type Logger interface {
    Debug(msg string, fields ...Field)
    Info(msg string, fields ...Field)
    Warn(msg string, fields ...Field)
    Error(msg string, fields ...Field)
    With(fields ...Field) Logger
    Sync() error
}

type Field = zap.Field

type Config struct {
    Level       string
    Development bool
    OutputPaths []string // defaults to stderr
}

type zapLogger struct {
    logger *zap.Logger
}

// New builds a JSON zap logger.
func New(cfg Config) (Logger, error) {
    zapCfg := zap.NewProductionConfig()
    zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
    zapCfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
    zapCfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
    zapCfg.OutputPaths = []string{"stderr"}
    if len(cfg.OutputPaths) > 0 {
        zapCfg.OutputPaths = cfg.OutputPaths
    }
    if cfg.Development {
        zapCfg.Sampling = nil
    }
    z, err := zapCfg.Build(zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
    if err != nil {
        return nil, fmt.Errorf("build zap logger: %w", err)
    }
    return &zapLogger{logger: z}, nil
}

func parseLevel(level string) zapcore.Level {
    switch strings.ToLower(level) {
    case "debug":
        return zapcore.DebugLevel
    case "warn", "warning":
        return zapcore.WarnLevel
    case "error":
        return zapcore.ErrorLevel
    }
    return zapcore.InfoLevel
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.logger.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.logger.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.logger.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.logger.Error(msg, fields...) }
func (l *zapLogger) Sync() error                       { return l.logger.Sync() }

func (l *zapLogger) With(fields ...Field) Logger {
    return &zapLogger{logger: l.logger.With(fields...)}
}

func String(key, val string) Field                 { return zap.String(key, val) }
func Strings(key string, val []string) Field       { return zap.Strings(key, val) }
func Int(key string, val int) Field                { return zap.Int(key, val) }
func Int64(key string, val int64) Field            { return zap.Int64(key, val) }
func Bool(key string, val bool) Field              { return zap.Bool(key, val) }
func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
func Error(err error) Field                        { return zap.Error(err) }
func Any(key string, val any) Field                { return zap.Any(key, val) }
