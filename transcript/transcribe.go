package transcript

import (
	"errors"
	"fmt"
	"log/slog"
)

// Transcribe an audio file through the remote recognition backend.
// Every failure is folded into the returned string, so the caller
// always gets something printable.
func Transcribe(filePath string) string {
	audio, err := LoadAudioFile(filePath)
	if err != nil {
		slog.Error("TRANSCRIBE", "action", "loadAudioFile", "filePath", filePath, "error", err)
		return fmt.Sprintf("Error processing audio: %v", err)
	}

	text, err := Recognize(audio)
	if err != nil {
		var serviceErr *ServiceError
		switch {
		case errors.Is(err, ErrUnrecognized):
			return "Could not understand audio"
		case errors.As(err, &serviceErr):
			slog.Error("TRANSCRIBE", "action", "recognize", "filePath", filePath, "error", err)
			return fmt.Sprintf("Error with speech recognition service: %s", serviceErr.Diagnostic)
		default:
			slog.Error("TRANSCRIBE", "action", "recognize", "filePath", filePath, "error", err)
			return fmt.Sprintf("Error processing audio: %v", err)
		}
	}

	return text
}
