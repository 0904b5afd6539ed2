package transcript

import (
	"fmt"
	"log/slog"
	"os"

	wav "github.com/go-audio/wav"
)

// AudioData holds the fully decoded contents of an audio file
type AudioData struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Data       []int // PCM samples
}

// Load a WAV file entirely into memory
func LoadAudioFile(filePath string) (AudioData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return AudioData{}, err
	}
	defer file.Close()

	dec := wav.NewDecoder(file)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return AudioData{}, fmt.Errorf("failed decoding WAV data: %w", err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return AudioData{}, fmt.Errorf("file contains no audio samples")
	}

	audio := AudioData{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Data:       buf.Data,
	}

	slog.Info("AUDIO",
		"action", "loadAudioFile",
		"reference", filePath,
		"sampleRate", audio.SampleRate,
		"channels", audio.Channels,
		"samples", len(audio.Data),
	)

	return audio, nil
}
