package logging

import "context"

// NopLogger discards everything. Used in tests and as a safe default before
// configuration is loaded.
type NopLogger struct{}

func NewNop() *NopLogger { return &NopLogger{} }

func (*NopLogger) Debug(context.Context, string, ...any) {}
func (*NopLogger) Info(context.Context, string, ...any)  {}
func (*NopLogger) Warn(context.Context, string, ...any)  {}
func (*NopLogger) Error(context.Context, string, ...any) {}

func (n *NopLogger) With(...any) Logger { return n }
