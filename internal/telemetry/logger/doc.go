// Package logger provides structured logging for Soul Forge.
//
// See logger.go for configuration and redact.go for the sensitive-data
// masking rules applied to every log record.
package logger
