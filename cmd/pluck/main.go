// SPDX-License-Identifier: EPL-2.0

// Command pluck renders a scale of plucked-string notes into WAV clips and
// can then play random notes from it until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/pluck/internal/config"
	"github.com/ik5/pluck/internal/render"
	"github.com/ik5/pluck/playback"
	"github.com/ik5/pluck/playback/device"
	"github.com/ik5/pluck/synth"
	"github.com/ik5/pluck/visual"
	"github.com/sirupsen/logrus"
)

type options struct {
	configPath string
	display    bool
	play       bool
	list       bool
	preset     string
	out        string
	seed       uint64
	logLevel   string
	workers    int
	duration   int
}

func parseFlags(args []string, stderr io.Writer) (options, map[string]bool, error) {
	var o options

	fs := flag.NewFlagSet("pluck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.BoolVar(&o.display, "display", false, "draw the ring while synthesizing (re-renders every note)")
	fs.BoolVar(&o.play, "play", false, "play random notes after rendering until interrupted")
	fs.BoolVar(&o.list, "list", false, "print the notes of the preset and exit")
	fs.StringVar(&o.preset, "preset", "", "scale preset: full, piano or one from the config")
	fs.StringVar(&o.out, "out", "", "output directory for clips")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed for reproducible clips (0 = random)")
	fs.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.IntVar(&o.workers, "workers", 0, "parallel synthesis workers")
	fs.IntVar(&o.duration, "duration", 0, "clip length in samples")

	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	if fs.NArg() > 0 {
		return o, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return o, set, nil
}

func loadConfig(o options, set map[string]bool) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	if set["preset"] {
		cfg.Preset = o.preset
	}
	if set["out"] {
		cfg.OutputDir = o.out
	}
	if set["seed"] {
		cfg.Seed = o.seed
	}
	if set["log-level"] {
		cfg.Logging.Level = o.logLevel
	}
	if set["workers"] {
		cfg.Workers = o.workers
	}
	if set["duration"] {
		cfg.DurationSamples = o.duration
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newBackend is replaced in tests to keep them off the sound card.
var newBackend = openBackend

func openBackend(rate int) playback.Backend {
	speaker, err := device.NewSpeaker(rate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main.openBackend",
			"error":    err.Error(),
		}).Warn("No audio output, clips will be discarded")
		return playback.Discard{Rate: rate}
	}
	return speaker
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(o, set)
	if err != nil {
		return err
	}
	if err := config.SetupLogging(cfg.Logging, stderr); err != nil {
		return err
	}

	notes, err := cfg.Notes()
	if err != nil {
		return err
	}

	if o.list {
		for _, n := range notes {
			fmt.Fprintf(stdout, "%-6s %10.3f Hz\n", n.Name, n.Frequency)
		}
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	s, err := synth.NewSynthesizer(cfg.SynthConfig())
	if err != nil {
		return err
	}

	r := &render.Renderer{
		Synth:           s,
		OutDir:          cfg.OutputDir,
		DurationSamples: cfg.DurationSamples,
		OutputRate:      cfg.OutputRate,
		Workers:         cfg.Workers,
		Seed:            cfg.Seed,
	}
	if o.display {
		plot := visual.NewTerminalPlot(os.Stdout)
		r.Observer = plot.Observe
		r.ObserveEvery = cfg.ObserveEvery
		r.Force = true
		r.Workers = 1
	}

	batch := r.Start(ctx, notes)

	if !o.play {
		if err := batch.Wait(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"function": "main.run",
			"notes":    len(batch.Jobs),
			"dir":      cfg.OutputDir,
		}).Info("Rendering finished")
		return nil
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = synth.NewRand(cfg.Seed)
	}
	sched := playback.NewScheduler(newBackend(cfg.Playback.DeviceRate), nil, rng)

	for _, job := range batch.Jobs {
		go func() {
			if err := sched.WaitAndLoad(ctx, job.Note.Name, job.Path, job.Done()); err != nil && ctx.Err() == nil {
				logrus.WithFields(logrus.Fields{
					"function": "main.run",
					"note":     job.Note.Name,
					"error":    err.Error(),
				}).Warn("Note left out of playback")
			}
		}()
	}

	err = sched.Loop(ctx, cfg.Playback.Interval())
	_ = batch.Wait()

	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "pluck:", err)
		stop()
		os.Exit(1)
	}
}
