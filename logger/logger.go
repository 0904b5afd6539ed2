package logger

import (
	"fmt"
	"log/slog"
)

// Log an unrecoverable error and abort.
// Only startup misconfiguration goes through here; the transcription
// path itself reports failures through its return value instead.
func LogErrorFatal(module string, message string) error {
	slog.Error(module, "fatal", message)
	panic(fmt.Sprintf("%s: %s", module, message))
}
