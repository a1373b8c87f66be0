// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ik5/pluck/formats/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder remembers the order of played clips.
type recorder struct {
	rate int
	fail map[string]error

	mu     sync.Mutex
	played []string
}

func (r *recorder) SampleRate() int { return r.rate }

func (r *recorder) Play(ctx context.Context, clip Clip) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.fail[clip.ID]; err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, clip.ID)
	return nil
}

func (r *recorder) Played() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.played...)
}

func newTestScheduler(t *testing.T, ids ...string) (*Scheduler, *recorder) {
	t.Helper()

	rec := &recorder{rate: 8000}
	s := NewScheduler(rec, nil, rand.New(rand.NewPCG(1, 2)))
	for _, id := range ids {
		require.NoError(t, s.Add(Clip{ID: id, SampleRate: 8000, Samples: make([]float32, 8)}))
	}
	return s, rec
}

func TestScheduler_AddKeepsOrder(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler(t, "A3", "C4", "D4")
	require.NoError(t, s.Add(Clip{ID: "C4", SampleRate: 8000, Samples: make([]float32, 99)}))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"A3", "C4", "D4"}, s.IDs())

	clip, ok := s.lookup("C4")
	require.True(t, ok)
	assert.Len(t, clip.Samples, 99, "re-adding replaces in place")
}

func TestScheduler_AddInvalid(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler(t)
	assert.ErrorIs(t, s.Add(Clip{SampleRate: 8000}), ErrInvalidClip)
	assert.ErrorIs(t, s.Add(Clip{ID: "x"}), ErrInvalidClip)
	assert.Zero(t, s.Len())
}

func TestScheduler_Play(t *testing.T) {
	t.Parallel()

	s, rec := newTestScheduler(t, "A3", "C4")
	require.NoError(t, s.Play(context.Background(), "C4"))
	assert.Equal(t, []string{"C4"}, rec.Played())

	assert.ErrorIs(t, s.Play(context.Background(), "G9"), ErrUnknownClip)
}

func TestScheduler_PlayRandomEmpty(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler(t)
	_, err := s.PlayRandom(context.Background())
	assert.ErrorIs(t, err, ErrNoClips)
}

func TestScheduler_PlayRandomUniform(t *testing.T) {
	t.Parallel()

	ids := []string{"A3", "C4", "D4", "E4"}
	s, _ := newTestScheduler(t, ids...)

	const draws = 8000
	counts := make(map[string]int)
	for range draws {
		id, err := s.PlayRandom(context.Background())
		require.NoError(t, err)
		counts[id]++
	}

	require.Len(t, counts, len(ids))
	for _, id := range ids {
		want := float64(draws) / float64(len(ids))
		assert.InDelta(t, want, float64(counts[id]), want/5, "clip %s", id)
	}
}

func TestScheduler_PlayRandomSeesNewClips(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler(t, "A3")
	id, err := s.PlayRandom(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A3", id)

	require.NoError(t, s.Add(Clip{ID: "C4", SampleRate: 8000}))

	seen := make(map[string]bool)
	for range 200 {
		id, err := s.PlayRandom(context.Background())
		require.NoError(t, err)
		seen[id] = true
	}
	assert.True(t, seen["C4"])
}

func TestScheduler_PlaySequence(t *testing.T) {
	t.Parallel()

	s, rec := newTestScheduler(t, "A3", "C4", "D4")
	boom := errors.New("device lost")
	rec.fail = map[string]error{"D4": boom}

	require.NoError(t, s.PlaySequence(context.Background(), []string{"C4", "A3", "C4"}))
	assert.Equal(t, []string{"C4", "A3", "C4"}, rec.Played())

	err := s.PlaySequence(context.Background(), []string{"A3", "D4", "C4"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"C4", "A3", "C4", "A3"}, rec.Played())
}

func TestScheduler_LoopStopsOnCancel(t *testing.T) {
	t.Parallel()

	s, rec := newTestScheduler(t, "A3", "C4")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Loop(ctx, time.Millisecond) }()

	require.Eventually(t, func() bool { return len(rec.Played()) >= 3 }, 2*time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not return after cancel")
	}
}

func TestScheduler_LoopWaitsForClips(t *testing.T) {
	t.Parallel()

	s, rec := newTestScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Loop(ctx, time.Millisecond) }()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.Add(Clip{ID: "A3", SampleRate: 8000}))
	require.Eventually(t, func() bool { return len(rec.Played()) > 0 }, 2*time.Second, time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestScheduler_LoopReturnsBackendError(t *testing.T) {
	t.Parallel()

	s, rec := newTestScheduler(t, "A3")
	boom := errors.New("device lost")
	rec.fail = map[string]error{"A3": boom}

	err := s.Loop(context.Background(), time.Millisecond)
	assert.ErrorIs(t, err, boom)
}

func writeClip(t *testing.T, rate, frames int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "A3.wav")
	pcm := make([]int16, frames)
	for i := range pcm {
		pcm[i] = int16(i * 10)
	}
	require.NoError(t, wav.WriteFile(path, rate, pcm))
	return path
}

func TestScheduler_Load(t *testing.T) {
	t.Parallel()

	s, rec := newTestScheduler(t)
	path := writeClip(t, 8000, 800)

	require.NoError(t, s.Load("A3", path))
	clip, ok := s.lookup("A3")
	require.True(t, ok)
	assert.Equal(t, 8000, clip.SampleRate)
	assert.Len(t, clip.Samples, 800)
	assert.InDelta(t, 10.0/32768, clip.Samples[1], 1e-6)
	assert.Equal(t, 100*time.Millisecond, clip.Duration())

	require.NoError(t, s.Play(context.Background(), "A3"))
	assert.Equal(t, []string{"A3"}, rec.Played())
}

func TestScheduler_LoadResamples(t *testing.T) {
	t.Parallel()

	rec := &recorder{rate: 16000}
	s := NewScheduler(rec, nil, nil)
	path := writeClip(t, 8000, 800)

	require.NoError(t, s.Load("A3", path))
	clip, ok := s.lookup("A3")
	require.True(t, ok)
	assert.Equal(t, 16000, clip.SampleRate)
	assert.Len(t, clip.Samples, 1600)
}

func TestScheduler_LoadErrors(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler(t)
	dir := t.TempDir()

	assert.ErrorIs(t, s.Load("x", filepath.Join(dir, "x.flac")), ErrUnsupportedFormat)
	assert.Error(t, s.Load("x", filepath.Join(dir, "missing.wav")))
	assert.Zero(t, s.Len())
}

func TestScheduler_WaitAndLoad(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler(t)
	path := writeClip(t, 8000, 80)

	done := make(chan error, 1)
	done <- nil
	require.NoError(t, s.WaitAndLoad(context.Background(), "A3", path, done))
	assert.Equal(t, []string{"A3"}, s.IDs())

	failed := make(chan error, 1)
	failed <- errors.New("render failed")
	assert.Error(t, s.WaitAndLoad(context.Background(), "C4", path, failed))
	assert.Equal(t, 1, s.Len(), "failed render is never loaded")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.WaitAndLoad(ctx, "D4", path, make(chan error)), context.Canceled)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	d := Discard{Rate: 44100}
	assert.Equal(t, 44100, d.SampleRate())
	assert.NoError(t, d.Play(context.Background(), Clip{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Play(ctx, Clip{}), context.Canceled)
}

func TestClip_Duration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Second, Clip{SampleRate: 44100, Samples: make([]float32, 44100)}.Duration())
	assert.Zero(t, Clip{}.Duration())
}

func TestScheduler_LoopZeroIntervalPauses(t *testing.T) {
	t.Parallel()

	s, rec := newTestScheduler(t, "A3")
	ctx, cancel := context.WithTimeout(context.Background(), 10*MinInterval)
	defer cancel()

	require.NoError(t, s.Loop(ctx, 0))
	assert.LessOrEqual(t, len(rec.Played()), 11, "a zero interval still pauses MinInterval between clips")
	assert.NotEmpty(t, rec.Played())
}
