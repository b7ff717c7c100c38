// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package radio

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"testing"
)

func encodeSamples(samples ...int16) string {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func TestDecodePCM(t *testing.T) {
	got, err := DecodePCM(encodeSamples(0, 32767, -32768, 16384, -1))
	if err != nil {
		t.Fatal(err)
	}

	want := []float32{0, 32767.0 / 32768.0, -1, 0.5, -1.0 / 32768.0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodePCMRejectsBadPayloads(t *testing.T) {
	if _, err := DecodePCM("not base64!!!"); err == nil {
		t.Error("invalid base64 should fail")
	}
	odd := base64.StdEncoding.EncodeToString([]byte{0x01, 0x02, 0x03})
	if _, err := DecodePCM(odd); err == nil {
		t.Error("odd byte count should fail")
	}
}

func TestDecodePCMEmpty(t *testing.T) {
	got, err := DecodePCM("")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestWriteWAV(t *testing.T) {
	data := []byte{0x00, 0x00, 0xff, 0x7f}
	var buf bytes.Buffer
	if err := WriteWAV(&buf, data, 24000); err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	if len(out) != 44+len(data) {
		t.Fatalf("len = %d, want %d", len(out), 44+len(data))
	}
	if string(out[0:4]) != "RIFF" || string(out[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}
	if got := binary.LittleEndian.Uint32(out[4:8]); got != uint32(36+len(data)) {
		t.Errorf("riff size = %d", got)
	}
	if got := binary.LittleEndian.Uint16(out[22:24]); got != 1 {
		t.Errorf("channels = %d, want mono", got)
	}
	if got := binary.LittleEndian.Uint32(out[24:28]); got != 24000 {
		t.Errorf("sample rate = %d", got)
	}
	if got := binary.LittleEndian.Uint32(out[28:32]); got != 48000 {
		t.Errorf("byte rate = %d", got)
	}
	if got := binary.LittleEndian.Uint16(out[34:36]); got != 16 {
		t.Errorf("bits per sample = %d", got)
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != uint32(len(data)) {
		t.Errorf("data size = %d", got)
	}
	if !bytes.Equal(out[44:], data) {
		t.Error("data bytes not carried verbatim")
	}
}

func TestWriteWAVDefaultsSampleRate(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWAV(&buf, nil, 0); err != nil {
		t.Fatal(err)
	}
	if got := binary.LittleEndian.Uint32(buf.Bytes()[24:28]); got != DefaultSampleRate {
		t.Errorf("sample rate = %d, want default", got)
	}
}
