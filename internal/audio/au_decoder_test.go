package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func buildAU(encoding, rate, channels uint32, body []byte) []byte {
	var buf bytes.Buffer
	header := []uint32{auMagic, auHeaderSize, uint32(len(body)), encoding, rate, channels}
	for _, v := range header {
		_ = binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(body)
	return buf.Bytes()
}

// TestDecodeULaw 测试 μ-law 关键码值
func TestDecodeULaw(t *testing.T) {
	tests := []struct {
		in   byte
		want int16
	}{
		{0xff, 0},
		{0x7f, 0},
		{0x80, 32124},
		{0x00, -32124},
	}
	for _, tt := range tests {
		if got := decodeULaw(tt.in); got != tt.want {
			t.Errorf("decodeULaw(0x%02x) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestDecodeAUMonoULaw 测试单声道 μ-law 扩展为立体声
func TestDecodeAUMonoULaw(t *testing.T) {
	stream, err := DecodeAU(bytes.NewReader(buildAU(auEncodingULaw, 8000, 1, []byte{0x80, 0xff})))
	if err != nil {
		t.Fatalf("DecodeAU() error: %v", err)
	}
	if stream.SampleRate() != 8000 {
		t.Errorf("Expected sample rate 8000, got %d", stream.SampleRate())
	}
	if stream.Length() != 8 {
		t.Fatalf("Expected 2 stereo frames (8 bytes), got %d", stream.Length())
	}

	pcm, _ := io.ReadAll(stream)
	left := int16(binary.LittleEndian.Uint16(pcm[0:]))
	right := int16(binary.LittleEndian.Uint16(pcm[2:]))
	if left != 32124 || right != 32124 {
		t.Errorf("Expected mono sample duplicated to both channels, got %d/%d", left, right)
	}
}

// TestDecodeAUStereoPCM16 测试 16 位立体声
func TestDecodeAUStereoPCM16(t *testing.T) {
	body := []byte{0x01, 0x00, 0xff, 0xff} // L=256, R=-1
	stream, err := DecodeAU(bytes.NewReader(buildAU(auEncodingPCM16, 22050, 2, body)))
	if err != nil {
		t.Fatalf("DecodeAU() error: %v", err)
	}
	pcm, _ := io.ReadAll(stream)
	if len(pcm) != 4 {
		t.Fatalf("Expected 1 frame, got %d bytes", len(pcm))
	}
	if l := int16(binary.LittleEndian.Uint16(pcm[0:])); l != 256 {
		t.Errorf("Expected left 256, got %d", l)
	}
	if r := int16(binary.LittleEndian.Uint16(pcm[2:])); r != -1 {
		t.Errorf("Expected right -1, got %d", r)
	}
}

// TestDecodeAUErrors 测试非法输入
func TestDecodeAUErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{0x2e, 0x73}},
		{"bad magic", append([]byte("RIFF"), make([]byte, 20)...)},
		{"bad encoding", buildAU(27, 8000, 1, []byte{0})},
		{"bad channels", buildAU(auEncodingULaw, 8000, 6, []byte{0})},
		{"zero rate", buildAU(auEncodingULaw, 0, 1, []byte{0})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeAU(bytes.NewReader(tt.data)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

// TestAUStreamSeek 测试回绕
func TestAUStreamSeek(t *testing.T) {
	stream, err := DecodeAU(bytes.NewReader(buildAU(auEncodingULaw, 8000, 1, []byte{0x80})))
	if err != nil {
		t.Fatalf("DecodeAU() error: %v", err)
	}
	_, _ = io.ReadAll(stream)
	if pos, err := stream.Seek(0, io.SeekStart); err != nil || pos != 0 {
		t.Fatalf("Seek() = %d, %v", pos, err)
	}
	if n, _ := stream.Read(make([]byte, 4)); n != 4 {
		t.Errorf("Expected 4 bytes after rewind, got %d", n)
	}
	if _, err := stream.Seek(-10, io.SeekStart); err == nil {
		t.Error("Expected error for negative position")
	}
}
