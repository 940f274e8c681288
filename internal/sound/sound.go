// Package sound plays the journey's sound effects and background music.
// Playback failures are logged and never returned to the caller.
package sound

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	Click     = "click"
	Departure = "departure"
	Arrival   = "arrival"
)

// SampleRate is the rate every stream is resampled to before playback.
const SampleRate beep.SampleRate = 44100

const (
	resampleQuality = 4
	fetchTimeout    = 30 * time.Second
)

var format = beep.Format{
	SampleRate:  SampleRate,
	NumChannels: 2,
	Precision:   2,
}

// Track is an entry in the music playlist.
type Track struct {
	Name   string
	Source string
}

type output interface {
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

// speakerOutput initialises the speaker on first use.
type speakerOutput struct {
	err  error
	once sync.Once
}

func (o *speakerOutput) ready() bool {
	o.once.Do(func() {
		bufferSize := 10
		o.err = speaker.Init(
			SampleRate,
			SampleRate.N(time.Second/time.Duration(bufferSize)),
		)

		if o.err != nil {
			slog.Warn("unable to initialise speaker", slog.Any("error", o.err))
		}
	})

	return o.err == nil
}

func (o *speakerOutput) Play(s ...beep.Streamer) {
	if o.ready() {
		speaker.Play(s...)
	}
}

func (o *speakerOutput) Lock() {
	if o.ready() {
		speaker.Lock()
	}
}

func (o *speakerOutput) Unlock() {
	if o.ready() {
		speaker.Unlock()
	}
}

// Player plays one-shot effects and loops playlist tracks.
type Player struct {
	ctx     context.Context
	out     output
	client  *http.Client
	sources map[string]string
	buffers map[string]*beep.Buffer
	music   *beep.Ctrl
	closer  beep.StreamSeekCloser
	tracks  []Track
	volume  int
	current int
	gen     uint64
	mu      sync.Mutex
}

// Option configures a Player.
type Option func(*Player)

// WithEffect plays the sound at src (a file path or http(s) URL) for the
// named effect instead of the built-in tone.
func WithEffect(name, src string) Option {
	return func(p *Player) {
		if src != "" {
			p.sources[name] = src
		}
	}
}

// WithPlaylist sets the music tracks.
func WithPlaylist(tracks []Track) Option {
	return func(p *Player) {
		p.tracks = tracks
	}
}

// WithVolume sets the playback volume as a percentage.
func WithVolume(pct int) Option {
	return func(p *Player) {
		p.volume = min(max(pct, 0), 100)
	}
}

// New returns a Player. ctx bounds the downloads of remote sounds.
func New(ctx context.Context, opts ...Option) *Player {
	p := &Player{
		ctx:     ctx,
		out:     &speakerOutput{},
		client:  &http.Client{Timeout: fetchTimeout},
		sources: make(map[string]string),
		buffers: make(map[string]*beep.Buffer),
		volume:  100,
		current: -1,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Tracks returns the playlist.
func (p *Player) Tracks() []Track {
	return p.tracks
}

// TrackName returns the name of track i or an empty string.
func (p *Player) TrackName(i int) string {
	if i < 0 || i >= len(p.tracks) {
		return ""
	}

	return p.tracks[i].Name
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(float64(p.volume) / 100),
		Silent:   p.volume == 0,
	}
}

// Preload decodes every effect so the first playback does not wait on a
// download.
func (p *Player) Preload() {
	for _, name := range []string{Click, Departure, Arrival} {
		p.effect(name)
	}
}

// effect returns the decoded buffer for name, loading it on first use. A
// source that cannot be loaded is replaced with the built-in tone.
func (p *Player) effect(name string) *beep.Buffer {
	p.mu.Lock()
	buf, ok := p.buffers[name]
	src := p.sources[name]
	p.mu.Unlock()

	if ok {
		return buf
	}

	if src != "" {
		var err error

		buf, err = p.load(src)
		if err != nil {
			slog.Warn(
				"unable to load sound effect",
				slog.String("effect", name),
				slog.String("source", src),
				slog.Any("error", err),
			)
		}
	}

	if buf == nil {
		buf = tone(name)
	}

	if buf == nil {
		return nil
	}

	p.mu.Lock()
	p.buffers[name] = buf
	p.mu.Unlock()

	return buf
}

func (p *Player) load(src string) (*beep.Buffer, error) {
	stream, f, err := decode(p.ctx, p.client, src)
	if err != nil {
		return nil, err
	}

	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(beep.Resample(resampleQuality, f.SampleRate, SampleRate, stream))

	return buf, nil
}

// PlayEffect plays the named effect once. Unknown effects are ignored.
func (p *Player) PlayEffect(name string) {
	buf := p.effect(name)
	if buf == nil {
		slog.Debug("unknown sound effect", slog.String("effect", name))
		return
	}

	p.out.Play(p.withVolume(buf.Streamer(0, buf.Len())))
}

// PlayTrack loops track i. The current track resumes where it paused;
// any other track is loaded in the background and replaces it.
func (p *Player) PlayTrack(i int) {
	if i < 0 || i >= len(p.tracks) {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if i == p.current && p.music != nil {
		p.out.Lock()
		p.music.Paused = false
		p.out.Unlock()

		return
	}

	p.stopMusic()

	p.current = i
	p.gen++

	go p.startTrack(i, p.gen)
}

func (p *Player) startTrack(i int, gen uint64) {
	t := p.tracks[i]

	stream, f, err := decode(p.ctx, p.client, t.Source)
	if err != nil {
		slog.Warn(
			"unable to load music track",
			slog.String("track", t.Name),
			slog.String("source", t.Source),
			slog.Any("error", err),
		)

		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// paused or switched while loading
	if gen != p.gen {
		_ = stream.Close()
		return
	}

	p.closer = stream
	p.music = &beep.Ctrl{
		Streamer: beep.Resample(
			resampleQuality,
			f.SampleRate,
			SampleRate,
			beep.Loop(-1, stream),
		),
	}

	p.out.Play(p.withVolume(p.music))
}

// PauseMusic pauses the current track.
func (p *Player) PauseMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	// a track still loading must not start playing
	p.gen++

	if p.music == nil {
		return
	}

	p.out.Lock()
	p.music.Paused = true
	p.out.Unlock()
}

// stopMusic must be called with p.mu held.
func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}

	p.out.Lock()
	p.music.Paused = true
	p.music.Streamer = nil
	p.out.Unlock()

	if p.closer != nil {
		_ = p.closer.Close()
	}

	p.music = nil
	p.closer = nil
}

// Close stops the music.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gen++
	p.stopMusic()
}
