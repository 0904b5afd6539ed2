package models

// TranscriptResult is the JSON envelope printed to stdout.
// The transcript field carries either the recognized text or a
// human-readable error description.
type TranscriptResult struct {
	Transcript string `json:"transcript"`
}
