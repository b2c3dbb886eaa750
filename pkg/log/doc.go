/*
Package log provides structured logging for Hyperion using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging with
component-specific loggers, configurable log levels, and helper functions for
common logging patterns. All logs include timestamps and support filtering by
severity level for production debugging.

# Architecture

Hyperion's logging system provides structured JSON logging with minimal overhead:

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Global Logger                    │          │
	│  │  - Zerolog instance                         │          │
	│  │  - Initialized via log.Init()               │          │
	│  │  - Thread-safe for concurrent use           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Configuration                     │          │
	│  │  - Level: debug/info/warn/error             │          │
	│  │  - Format: JSON or console (human)          │          │
	│  │  - Output: stdout, file, or custom writer   │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Component Loggers                   │          │
	│  │  - WithComponent("controller")              │          │
	│  │  - WithModule("ns/name/v1")                 │          │
	│  │  - WithTopic("core.hyperion.io/app=...log") │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │                                              │          │
	│  │  JSON Format:                               │          │
	│  │  {                                           │          │
	│  │    "level": "info",                         │          │
	│  │    "component": "controller",               │          │
	│  │    "time": "2026-07-30T10:30:00Z",          │          │
	│  │    "message": "process spawned"             │          │
	│  │  }                                           │          │
	│  │                                              │          │
	│  │  Console Format:                            │          │
	│  │  2026-07-30T10:30:00Z INF process spawned component=controller │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Core Components

Global Logger:
  - Package-level zerolog.Logger instance
  - Initialized once via log.Init()
  - Accessible from all Hyperion packages
  - Thread-safe concurrent writes

Log Levels:
  - Debug: Detailed debugging information
  - Info: General informational messages
  - Warn: Warning messages (potential issues)
  - Error: Error messages (operation failed)
  - Fatal: Critical errors (process exits)

Configuration:
  - Level: Filter messages below threshold
  - JSONOutput: JSON vs human-readable console
  - Output: io.Writer for log destination (stdout, file)

Context Loggers:
  - WithComponent: Add component name to all logs
  - WithModule: Add a module's canonical key to all logs
  - WithTopic: Add a bus topic to all logs

# Log Levels

Debug Level:
  - Purpose: Detailed debugging information
  - Usage: Development and troubleshooting
  - Performance: Verbose, may impact production
  - Example: "Read 37 bytes from controller stdout pipe"

Info Level:
  - Purpose: General informational messages
  - Usage: Default production level
  - Performance: Moderate volume
  - Example: "module applied: ns/echo/v1"

Warn Level:
  - Purpose: Potential issues or unexpected conditions
  - Usage: Situations that may require attention
  - Performance: Low volume
  - Example: "publish to slow subscriber dropped"

Error Level:
  - Purpose: Operation failures that need investigation
  - Usage: Failed operations, exceptions
  - Performance: Low volume
  - Example: "Failed to acquire binary: checksum mismatch"

Fatal Level:
  - Purpose: Critical errors causing process termination
  - Usage: Unrecoverable errors only
  - Behavior: Logs message and exits process (os.Exit(1))
  - Example: "Failed to bind gRPC listener: %v"

# Usage

Initializing the Logger:

	import "github.com/sagacious-labs/hyperion/pkg/log"

	// JSON output (production)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stdout,
	})

	// Console output (development)
	log.Init(log.Config{
		Level:      log.DebugLevel,
		JSONOutput: false,
		Output:     os.Stdout,
	})

	// Custom output (file)
	file, _ := os.OpenFile("/var/log/hyperion.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     file,
	})

Simple Logging:

	log.Info("manager initialized")
	log.Debug("checking module registry")
	log.Warn("backoff increasing for ns/echo/v1")
	log.Error("failed to spawn child process")
	log.Fatal("cannot bind gRPC listener") // Exits process

Structured Logging:

	log.Logger.Info().
		Str("module", "ns/echo/v1").
		Int("exit_code", 0).
		Msg("process exited")

	log.Logger.Error().
		Err(err).
		Str("module", "ns/echo/v1").
		Msg("binary acquisition failed")

Component Loggers:

	// Create component-specific logger
	ctrlLog := log.WithComponent("controller")
	ctrlLog.Info().Msg("starting supervision loop")
	ctrlLog.Debug().Str("module", "ns/echo/v1").Msg("spawning child")

	// Multiple context fields
	apiLog := log.WithComponent("api").
		With().Str("method", "/hyperion.api.v1.HyperionApiService/Apply").Logger()
	apiLog.Info().Msg("handling request")
	apiLog.Error().Err(err).Msg("request failed")

Context Logger Helpers:

	// Module-specific logs
	moduleLog := log.WithModule("ns/echo/v1")
	moduleLog.Info().Msg("entering InitCrashLoopBackoff")

	// Topic-specific logs
	topicLog := log.WithTopic("core.hyperion.io/app=ns/echo/v1.data")
	topicLog.Debug().Msg("subscriber count changed")

Complete Example:

	package main

	import (
		"errors"
		"os"
		"github.com/sagacious-labs/hyperion/pkg/log"
	)

	func main() {
		// Initialize logger
		log.Init(log.Config{
			Level:      log.InfoLevel,
			JSONOutput: true,
			Output:     os.Stdout,
		})

		log.Info("hyperion starting")

		// Component-specific logging
		ctrlLog := log.WithComponent("controller")
		ctrlLog.Info().
			Str("module", "ns/echo/v1").
			Int("backoff_seconds", 2).
			Msg("restarting after exit")

		// Error logging
		err := errors.New("connection refused")
		log.Logger.Error().
			Err(err).
			Str("component", "api").
			Msg("failed to dial downstream")

		log.Info("hyperion stopped")
	}

# Integration Points

This package integrates with:

  - pkg/manager: Logs Apply/Delete/Get/List and registry mutations
  - pkg/controller: Logs supervision loop transitions and backoff
  - pkg/bus: Logs topic subscribe/unsubscribe and publish failures
  - pkg/api: Logs gRPC request handling
  - cmd/hyperion: Logs process startup and shutdown

# Log Output Examples

JSON Format (Production):

	{"level":"info","component":"manager","time":"2026-07-30T10:30:00Z","message":"applied ns/echo/v1"}
	{"level":"info","module":"ns/echo/v1","time":"2026-07-30T10:30:01Z","message":"process spawned"}
	{"level":"error","module":"ns/echo/v1","time":"2026-07-30T10:30:02Z","error":"checksum mismatch","message":"binary acquisition failed"}

Console Format (Development):

	2026-07-30T10:30:00Z INF applied ns/echo/v1 component=manager
	2026-07-30T10:30:01Z INF process spawned module=ns/echo/v1
	2026-07-30T10:30:02Z ERR binary acquisition failed error="checksum mismatch" module=ns/echo/v1

# Design Patterns

Global Logger Pattern:
  - Single package-level Logger instance
  - Initialized once at application start
  - Accessible from all packages without passing
  - Simplifies logging in deeply nested calls

Context Logger Pattern:
  - Create child loggers with context fields
  - Pass context loggers to functions
  - Automatically includes context in all logs
  - Avoids repetitive field specification

Structured Logging Pattern:
  - Use typed fields (.Str, .Int, .Err)
  - Enables log aggregation and querying
  - Better than string concatenation
  - Parseable by log analysis tools

Error Logging Pattern:
  - Always use .Err(err) for error objects
  - Provides stack trace information
  - Enables error tracking and alerting
  - Consistent error format across codebase

# Best Practices

Do:
  - Use Info level for production
  - Use structured fields for queryable data
  - Create component-specific loggers
  - Log errors with .Err() for stack traces
  - Include context (module key, topic)

Don't:
  - Log sensitive data (binary download URLs with embedded credentials)
  - Use Debug level in production
  - Log in tight loops (use sampling)
  - Concatenate strings (use .Str, .Int)
  - Block on log writes (use buffered output)

# See Also

  - Zerolog documentation: https://github.com/rs/zerolog
  - Structured logging: https://www.thoughtworks.com/radar/techniques/structured-logging
  - 12-Factor App Logs: https://12factor.net/logs
*/
package log
