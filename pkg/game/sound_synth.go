package game

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SoundSampleRate 合成音效的采样率，与 ebiten 音频上下文一致
const SoundSampleRate = 48000

// 音效 ID
const (
	SoundPlink = "plink"
	SoundBonus = "bonus"
)

// toneGenerator 带指数衰减的正弦波发生器
type toneGenerator struct {
	freq     float64
	decay    float64 // 每秒的衰减系数
	rate     beep.SampleRate
	position int
	duration int
}

// newTone 创建单音发生器
func newTone(freq float64, duration time.Duration, decay float64, rate beep.SampleRate) beep.Streamer {
	return &toneGenerator{
		freq:     freq,
		decay:    decay,
		rate:     rate,
		duration: rate.N(duration),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.position >= g.duration {
			return i, i > 0
		}

		t := float64(g.position) / float64(g.rate)
		val := math.Sin(2*math.Pi*g.freq*t) * math.Exp(-g.decay*t)

		// 前 2ms 线性起音，避免爆音
		if attack := g.rate.N(2 * time.Millisecond); g.position < attack {
			val *= float64(g.position) / float64(attack)
		}

		samples[i][0] = val
		samples[i][1] = val
		g.position++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// withVolume 按线性音量缩放（0 为静音）
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// SynthesizePlink 合成弹珠柱撞击音：短促的高音加泛音
func SynthesizePlink() []byte {
	rate := beep.SampleRate(SoundSampleRate)
	duration := 120 * time.Millisecond

	plink := beep.Mix(
		withVolume(newTone(1318.5, duration, 30, rate), 0.5),
		withVolume(newTone(2637.0, duration, 45, rate), 0.2),
	)
	return RenderPCM(plink, rate.N(duration))
}

// SynthesizeBonus 合成奖励音：三个上行音符
func SynthesizeBonus() []byte {
	rate := beep.SampleRate(SoundSampleRate)
	note := 90 * time.Millisecond

	notes := []float64{880.0, 1108.7, 1318.5}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		seq = append(seq, beep.Take(rate.N(note), withVolume(newTone(freq, note, 12, rate), 0.5)))
	}
	return RenderPCM(beep.Seq(seq...), rate.N(note)*len(notes))
}

// RenderPCM 将音频流渲染为 16 位小端立体声 PCM
//
// 参数：
//   - s: 音频流
//   - maxSamples: 最多渲染的采样帧数
//
// 返回：
//   - []byte: 每帧 4 字节（左右声道各 2 字节）
func RenderPCM(s beep.Streamer, maxSamples int) []byte {
	out := make([]byte, 0, maxSamples*4)
	buf := make([][2]float64, 512)

	for rendered := 0; rendered < maxSamples; {
		chunk := buf
		if left := maxSamples - rendered; left < len(chunk) {
			chunk = chunk[:left]
		}

		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(chunk[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(chunk[i][1])))
		}
		rendered += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// toInt16 将 [-1, 1] 的采样值转换为 16 位整数（超出范围截断）
func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
