package engine

import (
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/logger"
	"github.com/ragbendra/AwwwardsREMS-sub000/internal/math/noise"
	"github.com/ragbendra/AwwwardsREMS-sub000/pkg/config"
)

const (
	sampleRate      = 44100
	framesPerBuffer = 512
)

// AudioEngine plays the ambient bed: low filtered noise whose intensity
// follows the journey, with a mute toggle. Audio is strictly ambient;
// no events are synthesized. When the audio device is unavailable the
// engine degrades to an inert no-op instead of failing construction.
type AudioEngine struct {
	stream *portaudio.Stream
	gen    *noise.NoiseGenerator
	log    *logger.Logger

	mu              sync.Mutex
	muted           bool
	volume          float64
	targetIntensity float64

	// Callback-local state, touched only on the audio thread.
	intensity float64
	phase     float64
	filtered  float64
}

// NewAudioEngine opens the default output stream. Never returns an
// error: a missing or failing audio device logs a warning and yields a
// silent engine.
func NewAudioEngine(cfg config.AudioConfig, log *logger.Logger) *AudioEngine {
	a := &AudioEngine{
		gen:    noise.NewNoiseGenerator(7411),
		log:    log,
		muted:  !cfg.Enabled,
		volume: cfg.Volume,
	}

	if err := portaudio.Initialize(); err != nil {
		log.Warnf("audio unavailable, running silent: %v", err)
		return a
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, float64(sampleRate), framesPerBuffer, a.process)
	if err != nil {
		log.Warnf("failed to open audio stream, running silent: %v", err)
		portaudio.Terminate()
		return a
	}
	if err := stream.Start(); err != nil {
		log.Warnf("failed to start audio stream, running silent: %v", err)
		stream.Close()
		portaudio.Terminate()
		return a
	}

	a.stream = stream
	return a
}

// process fills one output buffer on the audio thread
func (a *AudioEngine) process(out [][]float32) {
	a.mu.Lock()
	muted := a.muted
	volume := a.volume
	target := a.targetIntensity
	a.mu.Unlock()

	if muted {
		target = 0
	}

	for i := range out[0] {
		// Smooth intensity changes across samples to avoid zipper noise.
		a.intensity += (target - a.intensity) * 0.00004

		a.phase += 38.0 / sampleRate
		raw := a.gen.FBM1D(a.phase, 3, 2.1, 0.55)

		// One-pole low-pass keeps only the rumble.
		a.filtered += (raw - a.filtered) * 0.02

		sample := float32(a.filtered * a.intensity * volume)
		out[0][i] = sample
		out[1][i] = sample
	}
}

// SetIntensity sets the ambient bed's target level in [0, 1]
func (a *AudioEngine) SetIntensity(v float64) {
	a.mu.Lock()
	a.targetIntensity = v
	a.mu.Unlock()
}

// Toggle flips the mute state and reports whether audio is now audible
func (a *AudioEngine) Toggle() bool {
	a.mu.Lock()
	a.muted = !a.muted
	audible := !a.muted
	a.mu.Unlock()
	return audible
}

// Shutdown stops the stream and releases the audio device
func (a *AudioEngine) Shutdown() {
	if a.stream == nil {
		return
	}
	a.stream.Stop()
	a.stream.Close()
	a.stream = nil
	portaudio.Terminate()
}
