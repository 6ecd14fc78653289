package window

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate is the audio context rate used by the window frontend.
const SampleRate = 48000

// Tone describes a short decaying sine used for placement feedback.
type Tone struct {
	Freq     float64       // Hz
	Duration time.Duration // Total length, the envelope decays linearly to zero
	Volume   float64       // 0..1
}

// Feedback tones. Perfect placements ring an octave above a normal click.
var (
	ClickTone   = Tone{Freq: 440, Duration: 60 * time.Millisecond, Volume: 0.4}
	PerfectTone = Tone{Freq: 880, Duration: 90 * time.Millisecond, Volume: 0.4}
	MissTone    = Tone{Freq: 110, Duration: 180 * time.Millisecond, Volume: 0.5}
)

// Synthesize renders the tone as 16-bit signed little-endian stereo PCM,
// the format audio.Context.NewPlayerFromBytes expects.
func (t Tone) Synthesize(sampleRate int) []byte {
	if sampleRate <= 0 || t.Duration <= 0 {
		return nil
	}
	n := int(int64(t.Duration) * int64(sampleRate) / int64(time.Second))
	if n <= 0 {
		return nil
	}
	vol := math.Max(0, math.Min(1, t.Volume))

	buf := make([]byte, n*4)
	for i := range n {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*t.Freq*float64(i)/float64(sampleRate)) * env * vol
		s := int16(v * math.MaxInt16) //#nosec G115 -- |v| <= 1
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))   //#nosec G115 -- two's complement reinterpretation
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s)) //#nosec G115 -- two's complement reinterpretation
	}
	return buf
}
