package game

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestToneGeneratorRange 测试发生器输出范围与长度
func TestToneGeneratorRange(t *testing.T) {
	rate := beep.SampleRate(SoundSampleRate)
	tone := newTone(440, 10*time.Millisecond, 20, rate)

	samples := make([][2]float64, 1024)
	n, ok := tone.Stream(samples)
	if !ok {
		t.Fatal("first Stream() returned ok=false")
	}
	if n != rate.N(10*time.Millisecond) {
		t.Errorf("streamed samples: got %d, want %d", n, rate.N(10*time.Millisecond))
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Fatalf("sample %d out of range: %f", i, samples[i][0])
		}
	}

	if n, ok := tone.Stream(samples); ok || n != 0 {
		t.Errorf("drained Stream(): got (%d, %v), want (0, false)", n, ok)
	}
}

// TestSynthesizedSoundLength 测试合成音效的 PCM 长度
func TestSynthesizedSoundLength(t *testing.T) {
	rate := beep.SampleRate(SoundSampleRate)

	tests := []struct {
		name string
		pcm  []byte
		want int
	}{
		{name: "plink", pcm: SynthesizePlink(), want: rate.N(120*time.Millisecond) * 4},
		{name: "bonus", pcm: SynthesizeBonus(), want: rate.N(90*time.Millisecond) * 3 * 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.pcm) != tt.want {
				t.Errorf("len(pcm): got %d, want %d", len(tt.pcm), tt.want)
			}

			// 必须包含非静音采样
			silent := true
			for i := 0; i+1 < len(tt.pcm); i += 2 {
				if binary.LittleEndian.Uint16(tt.pcm[i:]) != 0 {
					silent = false
					break
				}
			}
			if silent {
				t.Error("pcm is silent")
			}
		})
	}
}

// TestToInt16Clamp 测试采样值截断
func TestToInt16Clamp(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{2.5, 32767},
		{-3, -32767},
	}

	for _, tt := range tests {
		if got := toInt16(tt.in); got != tt.want {
			t.Errorf("toInt16(%v): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
