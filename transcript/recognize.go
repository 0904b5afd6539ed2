package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Ashwin-premani/studytree-transcriber/configuration"
)

// The backend understood the request but found no speech in the audio
var ErrUnrecognized = errors.New("no speech could be recognized")

// ServiceError signals that the recognition backend itself failed:
// unreachable, rejected the request or answered with garbage
type ServiceError struct {
	Diagnostic string
}

func (e *ServiceError) Error() string {
	return e.Diagnostic
}

type recognitionAlternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

type recognitionResult struct {
	Alternative []recognitionAlternative `json:"alternative"`
	Final       bool                     `json:"final"`
}

type recognitionResponse struct {
	Result []recognitionResult `json:"result"`
}

// Flatten PCM samples to raw little-endian 16 bit, as expected for audio/l16 uploads
func encodePcm16(samples []int) []byte {
	out := make([]byte, 2*len(samples))
	for i, sample := range samples {
		out[2*i] = byte(sample)
		out[2*i+1] = byte(sample >> 8)
	}
	return out
}

// Send audio to the recognition backend and return the best transcription hypothesis
func Recognize(audio AudioData) (string, error) {
	config := configuration.GetRecognizerConfig()
	url := fmt.Sprintf("%s?client=chromium&lang=%s&key=%s", config.Url, config.Language, config.Key)

	req, err := http.NewRequest("POST", url, bytes.NewReader(encodePcm16(audio.Data)))
	if err != nil {
		return "", &ServiceError{Diagnostic: fmt.Sprintf("recognition request failed: %v", err)}
	}
	req.Header.Set("Content-Type", fmt.Sprintf("audio/l16; rate=%d", audio.SampleRate))

	slog.Info("RECOGNIZER",
		"action", "recognize",
		"endpoint", config.Url,
		"language", config.Language,
		"sampleRate", audio.SampleRate,
	)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", &ServiceError{Diagnostic: fmt.Sprintf("recognition connection failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ServiceError{Diagnostic: fmt.Sprintf("recognition request failed: %s", resp.Status)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ServiceError{Diagnostic: fmt.Sprintf("failed reading recognition response: %v", err)}
	}

	// The backend streams one JSON object per line; the first line with a
	// non-empty result carries the hypotheses
	var hypotheses []recognitionAlternative
	for _, line := range bytes.Split(raw, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var parsed recognitionResponse
		if err := json.Unmarshal(line, &parsed); err != nil {
			return "", &ServiceError{Diagnostic: fmt.Sprintf("recognition response was malformed: %v", err)}
		}
		if len(parsed.Result) > 0 {
			hypotheses = parsed.Result[0].Alternative
			break
		}
	}

	// Pick the hypothesis with the highest confidence; ties keep the
	// backend's ordering
	var transcript string
	var bestConfidence float64 = -1
	for _, hypothesis := range hypotheses {
		if hypothesis.Transcript == "" {
			continue
		}
		if hypothesis.Confidence > bestConfidence {
			bestConfidence = hypothesis.Confidence
			transcript = hypothesis.Transcript
		}
	}

	if transcript == "" {
		return "", ErrUnrecognized
	}

	slog.Info("RECOGNIZER", "action", "recognize", "transcript", transcript, "confidence", bestConfidence)
	return transcript, nil
}
