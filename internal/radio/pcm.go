// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package radio turns the AI collaborator's base64 PCM16 briefing payload
// into playable audio: float sample decoding, WAV container writing, and
// external-player playback.
package radio

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultSampleRate is the PCM sample rate of generated briefings in Hz.
const DefaultSampleRate = 24000

// Decode converts the base64 briefing payload to raw little-endian PCM16
// bytes. A payload that does not split into whole 16-bit samples is
// rejected.
func Decode(b64 string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decoding audio payload: %w", err)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("audio payload has odd length %d", len(data))
	}
	return data, nil
}

// Samples converts raw PCM16 bytes to normalized float32 samples in
// [-1, 1). Each sample is the signed 16-bit value divided by 32768.
func Samples(data []byte) []float32 {
	samples := make([]float32, len(data)/2)
	for i := range samples {
		sample := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = float32(sample) / 32768.0
	}
	return samples
}

// DecodePCM decodes the base64 briefing payload straight to normalized
// float samples.
func DecodePCM(b64 string) ([]float32, error) {
	data, err := Decode(b64)
	if err != nil {
		return nil, err
	}
	return Samples(data), nil
}

// WriteWAV wraps raw PCM16 mono bytes in a RIFF/WAVE container.
func WriteWAV(w io.Writer, data []byte, sampleRate int) error {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	const (
		numChannels   = 1
		bitsPerSample = 16
	)
	blockAlign := numChannels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	var header [44]byte
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(data)))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(data)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing WAV data: %w", err)
	}
	return nil
}
