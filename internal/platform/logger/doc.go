// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Request-scoped loggers and request IDs travel through
// context.Context so that every record written while serving a request carries its ID.
package logger
