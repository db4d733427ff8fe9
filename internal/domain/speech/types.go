// Package speech wraps text-to-speech synthesis behind a provider
// registry. Providers return the full audio in memory; nothing is
// streamed to the caller and nothing is written to disk.
package speech

import (
	"bytes"
	"encoding/base64"

	mp3 "github.com/hajimehoshi/go-mp3"
)

const mimeType = "audio/mpeg"

// Result carries one synthesized utterance in the three representations
// the API returns, plus the decoded duration.
type Result struct {
	Audio           []byte
	Base64          string
	DataURL         string
	DurationSeconds float64
}

// NewResult derives the base64, data-URL and duration forms from raw MP3
// bytes. Duration is best-effort: zero when the payload does not decode.
func NewResult(audio []byte) *Result {
	encoded := base64.StdEncoding.EncodeToString(audio)
	return &Result{
		Audio:           audio,
		Base64:          encoded,
		DataURL:         "data:" + mimeType + ";base64," + encoded,
		DurationSeconds: mp3Duration(audio),
	}
}

func mp3Duration(audio []byte) float64 {
	decoder, err := mp3.NewDecoder(bytes.NewReader(audio))
	if err != nil || decoder.SampleRate() <= 0 {
		return 0
	}
	// Length is in bytes of 16-bit stereo PCM, 4 bytes per sample.
	samples := decoder.Length() / 4
	return float64(samples) / float64(decoder.SampleRate())
}
