package audio

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Player decodes sound files once and plays them through the system speaker.
type Player struct {
	mu     sync.Mutex
	logger *slog.Logger

	volume      float64 // 0.0 to 1.0
	initialized bool
	sampleRate  beep.SampleRate

	// Decoded sounds keyed by expanded path.
	buffers map[string]*beep.Buffer
}

// NewPlayer creates a new audio player.
func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}

	return &Player{
		logger:     logger,
		volume:     1.0,
		sampleRate: beep.SampleRate(44100),
		buffers:    make(map[string]*beep.Buffer),
	}
}

// SetVolume sets the playback volume, clamped to 0.0-1.0.
func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = math.Max(0, math.Min(1, volume))
}

// Volume returns the current volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Play plays a WAV, OGG or MP3 file. The decoded sound is cached.
func (p *Player) Play(path string) error {
	buffer, err := p.buffer(path)
	if err != nil || buffer == nil {
		return err
	}
	return p.playBuffer(buffer)
}

// Preload decodes path into the cache without playing it.
func (p *Player) Preload(path string) error {
	_, err := p.buffer(path)
	return err
}

func (p *Player) buffer(path string) (*beep.Buffer, error) {
	if path == "" {
		return nil, nil
	}
	path = expandPath(path)

	p.mu.Lock()
	cached, ok := p.buffers[path]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	buffer, err := p.decode(path)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.buffers[path] = buffer
	p.mu.Unlock()

	p.logger.Debug("sound decoded", "path", path)
	return buffer, nil
}

// decode reads a whole sound file into memory.
func (p *Player) decode(path string) (*beep.Buffer, error) {
	var decoder func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		decoder = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }
	case ".ogg":
		decoder = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) }
	case ".mp3":
		decoder = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }
	default:
		return nil, fmt.Errorf("unsupported audio format: %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	streamer, format, err := decoder(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}
	defer func() { _ = streamer.Close() }()

	if err := p.ensureSpeaker(format.SampleRate); err != nil {
		return nil, err
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// ensureSpeaker initializes the speaker on first use.
func (p *Player) ensureSpeaker(sampleRate beep.SampleRate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	p.sampleRate = sampleRate
	p.initialized = true
	p.logger.Debug("speaker initialized", "sample_rate", sampleRate)
	return nil
}

func (p *Player) playBuffer(buffer *beep.Buffer) error {
	p.mu.Lock()
	volume := p.volume
	sampleRate := p.sampleRate
	p.mu.Unlock()

	var streamer beep.Streamer = buffer.Streamer(0, buffer.Len())

	if buffer.Format().SampleRate != sampleRate {
		streamer = beep.Resample(4, buffer.Format().SampleRate, sampleRate, streamer)
	}

	if volume < 1.0 {
		streamer = withVolume(streamer, volume)
	}

	speaker.Play(streamer)
	return nil
}

// ClearCache drops every decoded sound.
func (p *Player) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buffers = make(map[string]*beep.Buffer)
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
	p.buffers = make(map[string]*beep.Buffer)
	p.logger.Debug("audio player closed")
}

// withVolume scales streamer by a linear volume (0-1). effects.Volume
// multiplies samples by Base^Volume, so the exponent is log10 of the
// volume with base 10.
func withVolume(streamer beep.Streamer, volume float64) *effects.Volume {
	if volume <= 0 {
		return &effects.Volume{Streamer: streamer, Base: 10, Silent: true}
	}
	return &effects.Volume{
		Streamer: streamer,
		Base:     10,
		Volume:   math.Log10(volume),
	}
}

// expandPath expands ~ to the home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
