// Package audio 解码 Sun/NeXT .au 音效
//
// 解码结果统一为 16 位小端立体声 PCM，可直接交给 ebiten 的 audio.Player；
// 采样率与音频上下文不一致时由调用方重采样。
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	auMagic      = 0x2e736e64 // ".snd"
	auHeaderSize = 24

	// EncodingULaw 8 位 μ-law
	EncodingULaw = 1
	// EncodingPCM16 16 位大端线性 PCM
	EncodingPCM16 = 3
)

// Stream 解码后的 PCM 流，实现 io.ReadSeeker
type Stream struct {
	pcm        []byte
	sampleRate int
	pos        int64
}

var mulawTable = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// DecodeAU 读取完整的 .au 文件并转换为立体声 PCM
//
// 支持 μ-law 与 16 位 PCM，单声道会复制到左右声道。
func DecodeAU(r io.Reader) (*Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read au data: %w", err)
	}
	if len(data) < auHeaderSize {
		return nil, fmt.Errorf("au data too short: %d bytes", len(data))
	}

	be := binary.BigEndian
	if magic := be.Uint32(data[0:]); magic != auMagic {
		return nil, fmt.Errorf("invalid au magic 0x%08x", magic)
	}
	offset := int(be.Uint32(data[4:]))
	size := be.Uint32(data[8:])
	encoding := be.Uint32(data[12:])
	rate := int(be.Uint32(data[16:]))
	channels := int(be.Uint32(data[20:]))

	if offset < auHeaderSize || offset > len(data) {
		return nil, fmt.Errorf("invalid au data offset %d (file size %d)", offset, len(data))
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("unsupported au channel count %d", channels)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("invalid au sample rate %d", rate)
	}

	body := data[offset:]
	// 0xFFFFFFFF 表示长度未知，读到文件末尾
	if size != 0xFFFFFFFF && int(size) < len(body) {
		body = body[:size]
	}

	var samples []int16
	switch encoding {
	case EncodingULaw:
		samples = make([]int16, len(body))
		for i, b := range body {
			samples[i] = mulawTable[b]
		}
	case EncodingPCM16:
		samples = make([]int16, len(body)/2)
		for i := range samples {
			samples[i] = int16(be.Uint16(body[i*2:]))
		}
	default:
		return nil, fmt.Errorf("unsupported au encoding %d", encoding)
	}

	return &Stream{pcm: toStereo(samples, channels), sampleRate: rate}, nil
}

func toStereo(samples []int16, channels int) []byte {
	frames := len(samples) / channels
	out := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		left := samples[i*channels]
		right := left
		if channels == 2 {
			right = samples[i*channels+1]
		}
		binary.LittleEndian.PutUint16(out[i*4:], uint16(left))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(right))
	}
	return out
}

// Read 实现 io.Reader
func (s *Stream) Read(p []byte) (int, error) {
	if s.pos >= int64(len(s.pcm)) {
		return 0, io.EOF
	}
	n := copy(p, s.pcm[s.pos:])
	s.pos += int64(n)
	return n, nil
}

// Seek 实现 io.Seeker
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.pos + offset
	case io.SeekEnd:
		next = int64(len(s.pcm)) + offset
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("negative position %d", next)
	}
	s.pos = next
	return next, nil
}

// Length PCM 字节数
func (s *Stream) Length() int64 { return int64(len(s.pcm)) }

// SampleRate 原始采样率
func (s *Stream) SampleRate() int { return s.sampleRate }
