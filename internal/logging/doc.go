// Package logging provides zerolog-based structured logging for collegelist.
//
// It builds loggers from a small Config (level, format, output, file), attaches
// per-component fields, and carries a per-invocation trace ID through
// context.Context so that every log line of one command run can be correlated.
package logging
