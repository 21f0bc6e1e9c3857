package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestOscillatorSampleRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)

		samples := make([][2]float64, 256)
		n, ok := osc.Stream(samples)
		if !ok || n != 256 {
			t.Fatalf("wave %d: stream returned n=%d ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
				t.Fatalf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error: %v", wave, osc.Err())
		}
	}
}

func TestOscillatorEndsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 10*time.Millisecond, WaveSine, rate) // 10 samples

	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if ok {
		t.Error("finite oscillator should end within one oversized read")
	}
	if n != 10 {
		t.Errorf("streamed %d samples, want 10", n)
	}
}

func TestSweepStaysInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewSweep(200, 800, 50*time.Millisecond, rate)

	samples := make([][2]float64, 512)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Fatalf("sample %d out of range: %f", i, samples[i][0])
		}
	}
}

func TestEnvelopeRampsAttack(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 20*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 10)
	n, ok := env.Stream(samples)
	if !ok || n != 10 {
		t.Fatalf("stream returned n=%d ok=%v", n, ok)
	}
	// Square wave has magnitude 1; inside the attack ramp it must be scaled down
	if mag := samples[5][0]; mag <= -1.0 || mag >= 1.0 {
		t.Errorf("attack ramp should attenuate, sample = %f", mag)
	}
}

func TestGainScalesSamples(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 100*time.Millisecond, WaveSquare, rate)
	g := NewGain(osc, 0.5)

	samples := make([][2]float64, 10)
	n, _ := g.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] < -0.5 || samples[i][0] > 0.5 {
			t.Fatalf("gained sample %d out of range: %f", i, samples[i][0])
		}
	}
}
