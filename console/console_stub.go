//go:build !wasm
// +build !wasm

package console

// Native builds have no browser console. Messages go to the global zap
// logger instead, which is a no-op until the CLI installs one.

import "go.uber.org/zap"

// Log writes an info message.
func Log(args ...any) {
	zap.S().Info(args...)
}

// Warn writes a warning.
func Warn(args ...any) {
	zap.S().Warn(args...)
}

// Error writes an error message.
func Error(args ...any) {
	zap.S().Error(args...)
}
