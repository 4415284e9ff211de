// Package logger wraps zap with a process-wide sugared logger, a settable
// level, and helpers that pull the logger out of a context.
package logger
