// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/ik5/pluck/audio"
	"github.com/ik5/pluck/formats/aiff"
	"github.com/ik5/pluck/formats/mp3"
	"github.com/ik5/pluck/formats/vorbis"
	"github.com/ik5/pluck/formats/wav"
	"github.com/sirupsen/logrus"
)

// NewRegistry returns a registry holding every clip decoder the scheduler
// knows about.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

type entry struct {
	id   string
	clip Clip
}

// Scheduler keeps an ordered collection of clips and plays them on a
// Backend, by id, in sequence, or drawn uniformly at random.
type Scheduler struct {
	backend  Backend
	registry *audio.Registry

	mu      sync.Mutex
	entries []entry
	rng     *rand.Rand
}

// NewScheduler creates an empty scheduler. A nil registry means NewRegistry
// and a nil rng means a randomly seeded PCG.
func NewScheduler(backend Backend, registry *audio.Registry, rng *rand.Rand) *Scheduler {
	if registry == nil {
		registry = NewRegistry()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Scheduler{
		backend:  backend,
		registry: registry,
		rng:      rng,
	}
}

// Add stores clip under clip.ID. Adding an existing id replaces that clip
// in place and keeps its position.
func (s *Scheduler) Add(clip Clip) error {
	if clip.ID == "" || clip.SampleRate <= 0 {
		return fmt.Errorf("%w: id %q rate %d", ErrInvalidClip, clip.ID, clip.SampleRate)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].id == clip.ID {
			s.entries[i].clip = clip
			return nil
		}
	}
	s.entries = append(s.entries, entry{id: clip.ID, clip: clip})

	return nil
}

// Len returns the number of clips.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// IDs returns clip ids in insertion order.
func (s *Scheduler) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.id
	}
	return ids
}

// Load decodes the file at path by its extension, mixes it to mono,
// resamples it to the backend rate and stores it under id.
func (s *Scheduler) Load(id, path string) error {
	dec, ok := s.registry.ForPath(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open clip: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if src.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}
	if rate := s.backend.SampleRate(); rate > 0 && rate != src.SampleRate() {
		src = audio.NewResampler(src, rate)
	}
	defer src.Close()

	samples, err := audio.Collect(src)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "playback.Scheduler.Load",
		"id":          id,
		"path":        path,
		"sample_rate": src.SampleRate(),
		"samples":     len(samples),
	}).Debug("Clip loaded")

	return s.Add(Clip{ID: id, SampleRate: src.SampleRate(), Samples: samples})
}

// WaitAndLoad loads path once done reports that the clip was written.
// A failed or cancelled render never reaches the decoder.
func (s *Scheduler) WaitAndLoad(ctx context.Context, id, path string, done <-chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("clip %s not ready: %w", id, err)
		}
	}

	return s.Load(id, path)
}

func (s *Scheduler) lookup(id string) (Clip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.id == id {
			return e.clip, true
		}
	}
	return Clip{}, false
}

func (s *Scheduler) play(ctx context.Context, clip Clip) error {
	logrus.WithFields(logrus.Fields{
		"function": "playback.Scheduler.play",
		"id":       clip.ID,
		"duration": clip.Duration(),
	}).Debug("Playing clip")

	if err := s.backend.Play(ctx, clip); err != nil {
		return fmt.Errorf("play %s: %w", clip.ID, err)
	}
	return nil
}

// Play plays the clip stored under id.
func (s *Scheduler) Play(ctx context.Context, id string) error {
	clip, ok := s.lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownClip, id)
	}
	return s.play(ctx, clip)
}

// PlayRandom draws one clip uniformly from the current collection, plays
// it and returns its id.
func (s *Scheduler) PlayRandom(ctx context.Context) (string, error) {
	s.mu.Lock()
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return "", ErrNoClips
	}
	clip := s.entries[s.rng.IntN(len(s.entries))].clip
	s.mu.Unlock()

	return clip.ID, s.play(ctx, clip)
}

// PlaySequence plays ids in order and stops at the first failure.
func (s *Scheduler) PlaySequence(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := s.Play(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// MinInterval is the shortest pause Loop takes between clips.
const MinInterval = 10 * time.Millisecond

// Loop plays random clips, pausing interval (at least MinInterval) between
// them, until ctx is done.
// Cancellation is a normal way to stop and returns nil. An empty collection
// is waited out, since clips may still be loading.
func (s *Scheduler) Loop(ctx context.Context, interval time.Duration) error {
	interval = max(interval, MinInterval)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		id, err := s.PlayRandom(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, ErrNoClips):
		case err != nil:
			return err
		default:
			logrus.WithFields(logrus.Fields{
				"function": "playback.Scheduler.Loop",
				"id":       id,
			}).Info("Played clip")
		}

		timer.Reset(interval)
	}
}
