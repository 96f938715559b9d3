package security

import (
	"crypto/sha256"
	"fmt"

	"github.com/rs/zerolog/log"
)

// AuditLogger logs tool invocations with hashed identifiers
type AuditLogger struct {
	enabled bool
}

func NewAuditLogger(enabled bool) *AuditLogger {
	return &AuditLogger{enabled: enabled}
}

// LogToolCall records one tool invocation
func (a *AuditLogger) LogToolCall(
	tool, apiKey string,
	executionTimeMs int64,
	success bool,
	errMsg string,
) {
	if !a.enabled {
		return
	}
	keyHash := ""
	if apiKey != "" {
		keyHash = hashStr(apiKey)[:16]
	}

	evt := log.Info().
		Str("event", "tool_audit").
		Str("tool", tool).
		Str("api_key_hash", keyHash).
		Int64("execution_time_ms", executionTimeMs).
		Bool("success", success)

	if errMsg != "" {
		evt = evt.Str("error", errMsg)
	}
	evt.Msg("audit")
}

// LogFileAccess records a file open, save or export event
func (a *AuditLogger) LogFileAccess(action, path string, success bool) {
	if !a.enabled {
		return
	}
	log.Info().
		Str("event", "file_audit").
		Str("action", action).
		Str("path", path).
		Bool("success", success).
		Msg("audit")
}

func hashStr(s string) string {
	h := sha256.Sum256([]byte(s))
	return fmt.Sprintf("%x", h)
}
