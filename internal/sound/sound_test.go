package sound

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutput struct {
	played []beep.Streamer
	mu     sync.Mutex
}

func (o *fakeOutput) Play(s ...beep.Streamer) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.played = append(o.played, s...)
}

func (o *fakeOutput) Lock()   {}
func (o *fakeOutput) Unlock() {}

func (o *fakeOutput) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.played)
}

func newTestPlayer(t *testing.T, opts ...Option) (*Player, *fakeOutput) {
	t.Helper()

	p := New(context.Background(), opts...)
	out := &fakeOutput{}
	p.out = out

	t.Cleanup(p.Close)

	return p, out
}

// writeTone writes a 100ms sine tone to a wav file in a temp dir.
func writeTone(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tone.wav")

	f, err := os.Create(path)
	require.NoError(t, err)

	defer f.Close()

	s, err := generators.SineTone(SampleRate, 440)
	require.NoError(t, err)

	err = wav.Encode(f, beep.Take(SampleRate.N(100*time.Millisecond), s), format)
	require.NoError(t, err)

	return path
}

func TestPlayEffectUsesBuiltInTone(t *testing.T) {
	p, out := newTestPlayer(t)

	p.PlayEffect(Click)

	assert.Equal(t, 1, out.count())
	assert.Equal(t, SampleRate.N(40*time.Millisecond), p.buffers[Click].Len())
}

func TestPlayEffectIgnoresUnknownNames(t *testing.T) {
	p, out := newTestPlayer(t)

	p.PlayEffect("horn")

	assert.Equal(t, 0, out.count())
}

func TestMissingEffectFallsBackToTone(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.wav")

	p, out := newTestPlayer(t, WithEffect(Arrival, missing))

	p.PlayEffect(Arrival)

	assert.Equal(t, 1, out.count())
	assert.Equal(t, tone(Arrival).Len(), p.buffers[Arrival].Len())
}

func TestEffectFromFile(t *testing.T) {
	p, out := newTestPlayer(t, WithEffect(Click, writeTone(t)))

	p.Preload()
	p.PlayEffect(Click)

	assert.Equal(t, 1, out.count())
	assert.InDelta(t, SampleRate.N(100*time.Millisecond), p.buffers[Click].Len(), 64)
}

func TestEffectFromURL(t *testing.T) {
	b, err := os.ReadFile(writeTone(t))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chime.wav" {
			http.NotFound(w, r)
			return
		}

		_, _ = w.Write(b)
	}))
	defer srv.Close()

	p, _ := newTestPlayer(
		t,
		WithEffect(Departure, srv.URL+"/chime.wav?v=1"),
		WithEffect(Arrival, srv.URL+"/gone.wav"),
	)

	p.Preload()

	assert.InDelta(t, SampleRate.N(100*time.Millisecond), p.buffers[Departure].Len(), 64)
	assert.Equal(t, tone(Arrival).Len(), p.buffers[Arrival].Len())
}

func TestDecodeRejectsUnknownFormats(t *testing.T) {
	_, _, err := decode(context.Background(), http.DefaultClient, "song.aiff")
	require.Error(t, err)
	assert.Equal(t, "invalid sound file format: song.aiff", err.Error())
}

func TestPlayTrack(t *testing.T) {
	src := writeTone(t)

	p, out := newTestPlayer(t, WithPlaylist([]Track{
		{Name: "one", Source: src},
		{Name: "two", Source: src},
	}))

	p.PlayTrack(0)

	assert.Eventually(t, func() bool {
		return out.count() == 1
	}, time.Second, 10*time.Millisecond)

	p.PauseMusic()

	p.mu.Lock()
	assert.True(t, p.music.Paused)
	p.mu.Unlock()

	// resuming the same track does not start a new stream
	p.PlayTrack(0)

	p.mu.Lock()
	assert.False(t, p.music.Paused)
	p.mu.Unlock()
	assert.Equal(t, 1, out.count())

	p.PlayTrack(1)

	assert.Eventually(t, func() bool {
		return out.count() == 2
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "two", p.TrackName(1))
	assert.Empty(t, p.TrackName(2))
}

func TestPlayTrackIgnoresOutOfRange(t *testing.T) {
	p, out := newTestPlayer(t)

	p.PlayTrack(0)
	p.PlayTrack(-1)
	p.PauseMusic()

	assert.Equal(t, 0, out.count())
}

func TestPauseWhileLoadingKeepsTrackSilent(t *testing.T) {
	release := make(chan struct{})

	b, err := os.ReadFile(writeTone(t))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	p, out := newTestPlayer(t, WithPlaylist([]Track{
		{Name: "slow", Source: srv.URL + "/slow.wav"},
	}))

	p.PlayTrack(0)
	p.PauseMusic()
	close(release)

	assert.Never(t, func() bool {
		return out.count() > 0
	}, 200*time.Millisecond, 10*time.Millisecond)
}

func TestWithVolumeClamps(t *testing.T) {
	p, _ := newTestPlayer(t, WithVolume(150))
	assert.Equal(t, 100, p.volume)

	p, _ = newTestPlayer(t, WithVolume(-5))
	assert.Equal(t, 0, p.volume)
}
