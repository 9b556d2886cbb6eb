// Package sound hands notes over to a MIDI playback backend.
// Backends only know sharp spellings, so flats are converted first.
package sound

import (
	"context"
	"errors"
	"strings"

	"github.com/JeanRibes/musicia/music"

	charmlog "github.com/charmbracelet/log"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TICKS = smf.MetricTicks(960)

const VELOCITY = uint8(100)

// PlaybackString formats notes for a backend: "C#5q D5h A4q".
func PlaybackString(notes []music.Note) (string, error) {
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		if n.IsFlat() {
			eq, err := n.Equivalent()
			if err != nil {
				return "", err
			}
			n = eq
		}
		parts = append(parts, n.String())
	}
	return strings.Join(parts, " "), nil
}

// Ticks is the length of a duration at TICKS per quarter note.
func Ticks(d music.Duration) uint32 {
	return uint32(float64(TICKS) * 4 * d.Fraction())
}

// Render turns the notes into a single track, one note after the other.
func Render(notes []music.Note, bpm float64) smf.Track {
	tr := smf.Track{}
	tr.Add(0, smf.MetaTrackSequenceName("musicia"))
	tr.Add(0, smf.MetaTempo(bpm))
	for _, n := range notes {
		key := uint8(n.Key())
		tr.Add(0, midi.NoteOn(0, key, VELOCITY))
		tr.Add(Ticks(n.Duration()), midi.NoteOff(0, key))
	}
	tr.Close(0)
	return tr
}

// Send passes the playable messages of the track to send, in order.
// Timing is left to the backend.
func Send(ctx context.Context, track smf.Track, send func(midi.Message) error) (errs error) {
	logger := charmlog.FromContext(ctx)
	abs := uint32(0)
	var ch, key, vel uint8
	for _, ev := range track {
		abs += ev.Delta
		if !smf.Message(ev.Message).IsPlayable() {
			continue
		}
		select {
		case <-ctx.Done():
			return errors.Join(errs, ctx.Err())
		default:
		}
		if ev.Message.GetNoteOn(&ch, &key, &vel) {
			logger.Debug("note  on", "key", midi.Note(key), "delta", ev.Delta, "abs", abs)
		} else if ev.Message.GetNoteOff(&ch, &key, &vel) {
			logger.Debug("note off", "key", midi.Note(key), "delta", ev.Delta, "abs", abs)
		}
		if err := send(midi.Message(ev.Message)); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
