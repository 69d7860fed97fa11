package fifo

import (
	"fmt"

	"github.com/desertwitch/posixipc/internal/configuration"
)

// diagnostic formats a diagnostic context, truncating it to
// [configuration.DiagnosticMaxLen] bytes.
func diagnostic(format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > configuration.DiagnosticMaxLen {
		return msg[:configuration.DiagnosticMaxLen]
	}

	return msg
}
