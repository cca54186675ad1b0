package worker

import (
	"context"
	"math"
)

// WaveformSummary describes a generated sine waveform without carrying
// the raw samples across the coordinator boundary.
type WaveformSummary struct {
	// FrequencyHz is the tone frequency.
	FrequencyHz float64 `json:"frequency_hz"`
	// DurationSeconds is the generated length.
	DurationSeconds float64 `json:"duration_seconds"`
	// SampleRate is the samples-per-second the waveform was generated at.
	SampleRate int `json:"sample_rate"`
	// Samples is the total sample count.
	Samples int `json:"samples"`
	// PeakAmplitude is the largest absolute sample value.
	PeakAmplitude float64 `json:"peak_amplitude"`
	// RMS is the root-mean-square level of the waveform.
	RMS float64 `json:"rms"`
}

// AudioAgent synthesizes sine waveforms and reports their features.
type AudioAgent struct {
	// SampleRate is the generation rate in samples per second.
	SampleRate int
}

// NewAudioAgent creates an audio agent at 8 kHz, enough resolution for
// feature extraction without large allocations.
func NewAudioAgent() *AudioAgent {
	return &AudioAgent{SampleRate: 8000}
}

// Waveform synthesizes a sine tone and summarizes its features.
// Frequency defaults to 440 Hz and duration to one second when out of
// range.
func (a *AudioAgent) Waveform(freqHz, seconds float64) *WaveformSummary {
	if freqHz <= 0 {
		freqHz = 440
	}
	if seconds <= 0 || seconds > 10 {
		seconds = 1
	}

	n := int(float64(a.SampleRate) * seconds)
	var peak, sumSquares float64
	for i := 0; i < n; i++ {
		sample := math.Sin(2 * math.Pi * freqHz * float64(i) / float64(a.SampleRate))
		if abs := math.Abs(sample); abs > peak {
			peak = abs
		}
		sumSquares += sample * sample
	}

	summary := &WaveformSummary{
		FrequencyHz:     freqHz,
		DurationSeconds: seconds,
		SampleRate:      a.SampleRate,
		Samples:         n,
	}
	if n > 0 {
		summary.PeakAmplitude = peak
		summary.RMS = math.Sqrt(sumSquares / float64(n))
	}
	return summary
}

// Table returns the agent's operation declaration.
func (a *AudioAgent) Table(name string) *Table {
	return NewTable().
		Register(KindAudio, func(_ context.Context, _ string) (any, error) {
			return a.Waveform(440, 1), nil
		}).
		Register(KindGeneric, Echo(name))
}
