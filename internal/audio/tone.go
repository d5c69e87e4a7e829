package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a sine wave at freq Hz lasting d, fading out linearly to avoid a click.
func tone(sr beep.SampleRate, freq float64, d time.Duration, amp float64) beep.Streamer {
	total := sr.N(d)
	step := 2 * math.Pi * freq / float64(sr)
	i := 0
	sine := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for n := range samples {
			env := 1.0
			if total > 0 {
				env = 1 - float64(i)/float64(total)
			}
			v := amp * env * math.Sin(step*float64(i))
			samples[n][0], samples[n][1] = v, v
			i++
		}
		return len(samples), true
	})
	return beep.Take(total, sine)
}
