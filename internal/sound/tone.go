package sound

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
)

type note struct {
	freq float64
	dur  time.Duration
}

// rest is a silent note.
const rest = 0

var tones = map[string][]note{
	Click: {
		{1200, 40 * time.Millisecond},
	},
	Departure: {
		{880, 250 * time.Millisecond},
		{rest, 80 * time.Millisecond},
		{1175, 500 * time.Millisecond},
	},
	Arrival: {
		{660, 200 * time.Millisecond},
		{880, 200 * time.Millisecond},
		{1320, 400 * time.Millisecond},
	},
}

// tone renders the built-in sound for an effect, or nil if there is none.
func tone(name string) *beep.Buffer {
	notes, ok := tones[name]
	if !ok {
		return nil
	}

	buf := beep.NewBuffer(format)

	for _, n := range notes {
		samples := SampleRate.N(n.dur)

		if n.freq == rest {
			buf.Append(beep.Silence(samples))
			continue
		}

		s, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			buf.Append(beep.Silence(samples))
			continue
		}

		buf.Append(beep.Take(samples, s))
	}

	return buf
}
