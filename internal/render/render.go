// SPDX-License-Identifier: EPL-2.0

// Package render synthesizes a set of notes into WAV files in parallel.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/pluck/audio"
	"github.com/ik5/pluck/formats/wav"
	"github.com/ik5/pluck/scale"
	"github.com/ik5/pluck/synth"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrSkipped = errors.New("not rendered")

// Renderer turns notes into clips under OutDir. The zero values of Workers
// and ObserveEvery mean one worker and no observation.
type Renderer struct {
	Synth           *synth.Synthesizer
	OutDir          string
	DurationSamples int
	OutputRate      int // 0 keeps the synthesis rate
	Workers         int
	FailFast        bool // cancel the rest of the batch on the first failure
	Force           bool // re-render notes whose file already exists
	Seed            uint64
	Observer        synth.Observer
	ObserveEvery    int
}

// Job is one note of a batch.
type Job struct {
	Note scale.Note
	Path string

	// Set before Done yields.
	Cached  bool
	Warning *synth.ClipWarning
	Err     error

	done chan error
}

// Done yields the job's result once: nil after the file at Path is
// complete, or the error that stopped it.
func (j *Job) Done() <-chan error { return j.done }

func (j *Job) finish(err error) {
	j.Err = err
	j.done <- err
}

// Batch is a started set of jobs.
type Batch struct {
	Jobs []*Job

	wait chan struct{}
	err  error
}

// Wait blocks until every job finished and returns the failures joined.
func (b *Batch) Wait() error {
	<-b.wait
	return b.err
}

// FileName is the clip file name for a note name.
func FileName(noteName string) string {
	var sb strings.Builder
	for _, r := range noteName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		case r == '#':
			sb.WriteString("sharp")
		default:
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("note")
	}
	sb.WriteString(".wav")
	return sb.String()
}

// Start launches one job per note and returns without waiting. Jobs are
// ordered like notes.
func (r *Renderer) Start(ctx context.Context, notes []scale.Note) *Batch {
	b := &Batch{
		Jobs: make([]*Job, len(notes)),
		wait: make(chan struct{}),
	}
	for i, n := range notes {
		b.Jobs[i] = &Job{
			Note: n,
			Path: filepath.Join(r.OutDir, FileName(n.Name)),
			done: make(chan error, 1),
		}
	}

	go r.run(ctx, b)

	return b
}

func (r *Renderer) run(ctx context.Context, b *Batch) {
	defer close(b.wait)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))

	for i, job := range b.Jobs {
		if gctx.Err() != nil {
			job.finish(fmt.Errorf("%w: %w", ErrSkipped, context.Cause(gctx)))
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				job.finish(fmt.Errorf("%w: %w", ErrSkipped, context.Cause(gctx)))
				return nil
			}

			err := r.render(gctx, i, job)
			job.finish(err)
			if err != nil && r.FailFast {
				return err
			}
			return nil
		})
	}

	_ = g.Wait()

	var errs []error
	for _, job := range b.Jobs {
		if job.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", job.Note.Name, job.Err))
		}
	}
	b.err = errors.Join(errs...)
}

func (r *Renderer) render(ctx context.Context, index int, job *Job) error {
	log := logrus.WithFields(logrus.Fields{
		"function":  "render.Renderer.render",
		"note":      job.Note.Name,
		"frequency": job.Note.Frequency,
		"path":      job.Path,
	})

	if !r.Force {
		if _, err := os.Stat(job.Path); err == nil {
			job.Cached = true
			log.Debug("Clip exists, skipping")
			return nil
		}
	}

	var opts []synth.Option
	if r.Seed != 0 {
		opts = append(opts, synth.WithSeed(r.Seed+uint64(index)))
	}
	if r.Observer != nil && r.ObserveEvery > 0 {
		opts = append(opts, synth.WithObserver(r.ObserveEvery, r.Observer))
	}

	samples, err := r.Synth.Synthesize(ctx, job.Note.Frequency, r.DurationSamples, opts...)
	if err != nil {
		log.WithField("error", err.Error()).Error("Synthesis failed")
		return fmt.Errorf("synthesize: %w", err)
	}

	rate := r.Synth.Config().SampleRate
	if r.OutputRate > 0 && r.OutputRate != rate {
		samples, err = resample(samples, rate, r.OutputRate)
		if err != nil {
			return err
		}
		rate = r.OutputRate
	}

	pcm, warning := synth.Quantize(samples)
	job.Warning = warning

	if err := wav.WriteFile(job.Path, rate, pcm); err != nil {
		log.WithField("error", err.Error()).Error("Writing clip failed")
		return fmt.Errorf("write: %w", err)
	}

	log.WithField("samples", len(pcm)).Info("Clip rendered")

	return nil
}

func resample(samples []float64, from, to int) ([]float64, error) {
	out, err := audio.Collect(audio.NewResampler(audio.NewFloat64Source(from, samples), to))
	if err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}

	res := make([]float64, len(out))
	for i, v := range out {
		res[i] = float64(v)
	}
	return res, nil
}
