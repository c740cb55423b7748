// Package audio 提供 ebiten 未内置的音频格式解码
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
)

// AU 文件头（大端序，至少 24 字节）
const (
	auHeaderSize    = 24
	auMagic         = 0x2e736e64 // ".snd"
	auUnknownSize   = 0xffffffff
	auEncodingULaw  = 1 // 8-bit μ-law
	auEncodingPCM16 = 3 // 16-bit 线性 PCM
)

// AUStream Sun/NeXT (.au) 音频解码结果
//
// 输出固定为 16 位有符号小端立体声 PCM，单声道源会复制到左右声道，
// 与 ebiten audio.Player 的输入格式一致。采样率保持源文件的值，
// 需要时由调用方重采样。
type AUStream struct {
	data       []byte
	sampleRate int
	offset     int64
}

// DecodeAU 读取完整的 AU 数据并解码
func DecodeAU(r io.Reader) (*AUStream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU data: %w", err)
	}
	if len(data) < auHeaderSize {
		return nil, fmt.Errorf("AU data too short: %d bytes", len(data))
	}

	be := binary.BigEndian
	if magic := be.Uint32(data[0:]); magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic number: 0x%08x", magic)
	}
	offset := be.Uint32(data[4:])
	size := be.Uint32(data[8:])
	encoding := be.Uint32(data[12:])
	rate := be.Uint32(data[16:])
	channels := be.Uint32(data[20:])

	if offset < auHeaderSize || int(offset) > len(data) {
		return nil, fmt.Errorf("invalid AU data offset %d (length %d)", offset, len(data))
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("unsupported AU channel count: %d", channels)
	}
	if rate == 0 {
		return nil, fmt.Errorf("invalid AU sample rate: 0")
	}

	body := data[offset:]
	if size != auUnknownSize && int(size) < len(body) {
		body = body[:size]
	}

	var samples []int16
	switch encoding {
	case auEncodingULaw:
		samples = make([]int16, len(body))
		for i, b := range body {
			samples[i] = decodeULaw(b)
		}
	case auEncodingPCM16:
		samples = make([]int16, len(body)/2)
		for i := range samples {
			samples[i] = int16(be.Uint16(body[i*2:]))
		}
	default:
		return nil, fmt.Errorf("unsupported AU encoding: %d", encoding)
	}

	return &AUStream{
		data:       toStereoPCM(samples, int(channels)),
		sampleRate: int(rate),
	}, nil
}

// decodeULaw G.711 μ-law 解压
func decodeULaw(b byte) int16 {
	u := ^b
	sign := u & 0x80
	exponent := (u >> 4) & 0x07
	mantissa := u & 0x0f
	magnitude := ((int32(mantissa) << 3) + 0x84) << exponent
	magnitude -= 0x84
	if sign != 0 {
		return int16(-magnitude)
	}
	return int16(magnitude)
}

// toStereoPCM 交错样本转为小端立体声字节流
func toStereoPCM(samples []int16, channels int) []byte {
	frames := len(samples) / channels
	out := make([]byte, frames*4)
	for f := 0; f < frames; f++ {
		left := samples[f*channels]
		right := left
		if channels == 2 {
			right = samples[f*channels+1]
		}
		binary.LittleEndian.PutUint16(out[f*4:], uint16(left))
		binary.LittleEndian.PutUint16(out[f*4+2:], uint16(right))
	}
	return out
}

// Read 实现 io.Reader
func (s *AUStream) Read(p []byte) (int, error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek 实现 io.Seeker
func (s *AUStream) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.offset + offset
	case io.SeekEnd:
		next = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("negative position: %d", next)
	}
	s.offset = next
	return next, nil
}

// Length 解码后 PCM 字节数
func (s *AUStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate 源采样率（Hz）
func (s *AUStream) SampleRate() int {
	return s.sampleRate
}
