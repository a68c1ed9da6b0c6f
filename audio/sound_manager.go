package audio

import (
	"log"
	"os"
	"sync"
	"time"

	"gridsnake/game/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
)

const (
	sampleRate       = beep.SampleRate(44100)
	speakerBufferDur = 100 * time.Millisecond
	resampleQuality  = 4
)

// ErrUnknownSound is logged when a cue was never loaded.
var ErrUnknownSound = errors.New("sound not found")

// SoundManager owns the audio device and the decoded cues. Create one with
// NewSoundManager, Init it, Load the cues and Close it at shutdown.
type SoundManager struct {
	mu          sync.Mutex
	sounds      map[types.SoundID]*beep.Buffer
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		sounds: make(map[types.SoundID]*beep.Buffer),
		mixer:  &beep.Mixer{},
	}
}

// Init opens the output device and starts the mixer.
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDur)); err != nil {
		return errors.Wrap(err, "open audio device")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Load decodes the WAV file at path into memory under id, replacing any
// earlier cue with the same id. It does not need the device.
func (sm *SoundManager) Load(id types.SoundID, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "load sound %s", id)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	sm.mu.Lock()
	sm.sounds[id] = buf
	sm.mu.Unlock()
	return nil
}

// Loaded reports whether a cue is registered under id.
func (sm *SoundManager) Loaded(id types.SoundID) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.sounds[id]
	return ok
}

// Play starts the cue on the mixer and reports whether it did.
// An unknown cue is logged and skipped; without a device nothing plays.
func (sm *SoundManager) Play(id types.SoundID) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	buf, ok := sm.sounds[id]
	if !ok {
		log.Printf("audio: %v: %s", ErrUnknownSound, id)
		return false
	}
	if !sm.initialized {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
	return true
}

// Close silences everything and releases the device. Safe to call twice.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}
