// File: doc.go
// Title: Core Logging Package Documentation
// Description: Structured logging used by the truffle builder and CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

/*
Package log provides structured, leveled logging with JSON and text output.

Loggers are immutable: WithField, WithName and WithCorrelationID return a
derived logger and leave the receiver untouched, so a component can tag its
own logger once and hand it around:

	logger := log.GetDefault().WithField("component", "truffle-builder")
	logger.Debug("Building function", log.Fields{"name": "add"})

Errors created by the core error package are expanded into an
"error_details" object by the JSON formatter.
*/
package log
