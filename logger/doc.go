// Package logger provides structured logging for streamkit
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("materializer")
//	log.Info("run completed", logger.Fields(logger.FieldRunID, id))
package logger
