package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Ashwin-premani/studytree-transcriber/configuration"
	"github.com/Ashwin-premani/studytree-transcriber/logger"
	"github.com/Ashwin-premani/studytree-transcriber/models"
	"github.com/Ashwin-premani/studytree-transcriber/transcript"
)

const usage = "Usage: transcribe <audio_file>"

// Transcribe the given audio file and print the result as JSON.
// Expects exactly one argument; anything else is a usage error.
// Transcription failures are reported inside the JSON payload, not
// through the exit code.
func run(args []string, stdout io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	audioFile := args[0]
	slog.Info("MAIN", "message", "Transcribing audio file", "audioFile", audioFile)

	result := models.TranscriptResult{Transcript: transcript.Transcribe(audioFile)}
	encoded, err := json.Marshal(result)
	if err != nil {
		logger.LogErrorFatal("MAIN", fmt.Sprintf("Failed serializing result: %v", err))
	}

	fmt.Fprintln(stdout, string(encoded))
	return 0
}

func main() {
	// A .env file is optional; real environment variables take precedence
	if err := godotenv.Load(); err == nil {
		slog.Info("MAIN", "message", "Loaded environment from .env file")
	}

	configuration.SetUpRecognizerConfig()

	os.Exit(run(os.Args[1:], os.Stdout))
}
