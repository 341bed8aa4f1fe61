package midi

import (
	"errors"
	"fmt"
	"sync"

	"go-trellis/debug"
	"go-trellis/sound"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

var ErrNoteRange = errors.New("note outside 0-127")

// SamplerMixer plays samples on an external MIDI sampler: sample i is note
// baseNote+i, unless a drum kit maps the sample's family. Each voice slot
// sounds one note; playing a slot again cuts the note it was playing.
type SamplerMixer struct {
	send     func(msg gomidi.Message) error
	channel  uint8 // 0-based
	baseNote uint8
	velocity uint8
	kit      *DrumKit

	mu       sync.Mutex
	sounding map[int]uint8 // voice slot -> note
}

// OpenSampler connects to a sampler on outPort. channel is 1-16.
func OpenSampler(outPort drivers.Out, channel, baseNote uint8) (*SamplerMixer, error) {
	send, err := gomidi.SendTo(outPort)
	if err != nil {
		return nil, fmt.Errorf("open sampler output %s: %w", outPort, err)
	}
	debug.Log("sampler", "opened %s channel=%d base=%d", outPort, channel, baseNote)
	return newSamplerMixer(send, channel, baseNote), nil
}

func newSamplerMixer(send func(msg gomidi.Message) error, channel, baseNote uint8) *SamplerMixer {
	return &SamplerMixer{
		send:     send,
		channel:  channel - 1,
		baseNote: baseNote,
		velocity: 100,
		sounding: make(map[int]uint8),
	}
}

// UseKit sends kit notes for the sample families the kit covers
func (m *SamplerMixer) UseKit(kit DrumKit) {
	m.mu.Lock()
	m.kit = &kit
	m.mu.Unlock()
}

// Play triggers s on voice slot voice
func (m *SamplerMixer) Play(s sound.Sample, voice int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	note, err := m.note(s)
	if err != nil {
		return err
	}

	if prev, ok := m.sounding[voice]; ok {
		if err := m.send(gomidi.NoteOff(m.channel, prev)); err != nil {
			return fmt.Errorf("note off %d: %w", prev, err)
		}
	}
	m.sounding[voice] = note
	if err := m.send(gomidi.NoteOn(m.channel, note, m.velocity)); err != nil {
		return fmt.Errorf("note on %d: %w", note, err)
	}
	return nil
}

func (m *SamplerMixer) note(s sound.Sample) (uint8, error) {
	if m.kit != nil {
		if note, ok := m.kit.Note(s.Family); ok {
			return note, nil
		}
	}
	n := int(m.baseNote) + s.Index
	if n < 0 || n > 127 {
		return 0, fmt.Errorf("sample %s: note %d: %w", s.Name, n, ErrNoteRange)
	}
	return uint8(n), nil
}

// Close stops every sounding note
func (m *SamplerMixer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var errs []error
	for voice, note := range m.sounding {
		errs = append(errs, m.send(gomidi.NoteOff(m.channel, note)))
		delete(m.sounding, voice)
	}
	return errors.Join(errs...)
}
