// Package commands turns front end requests into calls to the music core.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/JeanRibes/musicia/music"
	"github.com/JeanRibes/musicia/scales"
	. "github.com/JeanRibes/musicia/shared"
	"github.com/JeanRibes/musicia/sound"
	"github.com/JeanRibes/musicia/textfile"

	charmlog "github.com/charmbracelet/log"
	"gitlab.com/gomidi/midi/v2"
)

type Settings struct {
	NotesPerLine int
	Duration     string
	BPM          float64
	ImportFile   string
	ExportFile   string
}

func DefaultSettings() Settings {
	return Settings{
		NotesPerLine: 0,
		Duration:     "q",
		BPM:          BPM,
		ImportFile:   DEFAULT_FILE,
		ExportFile:   DEFAULT_FILE,
	}
}

// Dispatcher owns the lookup tables and answers one Message at a time.
type Dispatcher struct {
	order    *music.Order
	circle   *scales.Circle
	settings Settings
	duration music.Duration
	send     func(midi.Message) error
	last     string
}

// New builds the tables once. send receives the MIDI messages of Play requests,
// it may be nil when nothing listens.
func New(settings Settings, send func(midi.Message) error) (*Dispatcher, error) {
	order := music.NewOrder()
	circle, err := scales.NewCircle(order)
	if err != nil {
		return nil, err
	}
	duration := music.Quarter
	if settings.Duration != "" {
		if duration, err = music.NewDurationTable().ByCode(settings.Duration); err != nil {
			return nil, err
		}
	}
	if send == nil {
		send = func(midi.Message) error { return nil }
	}
	return &Dispatcher{
		order:    order,
		circle:   circle,
		settings: settings,
		duration: duration,
		send:     send,
	}, nil
}

// Last is the text of the last Result, the default content of an Export.
func (d *Dispatcher) Last() string {
	return d.last
}

// Handle runs the request and returns the replies: warnings first, then
// either a Result or an Error.
func (d *Dispatcher) Handle(ctx context.Context, msg Message) []Message {
	logger := charmlog.FromContext(ctx)
	logger.Debug("handle", "event", msg.Type, "string", msg.String, "number", msg.Number, "number2", msg.Number2, "boolean", msg.Boolean)

	var replies []Message
	warn := func(s string) {
		logger.Warn(s)
		replies = append(replies, Message{Type: Warning, String: s})
	}

	var res Message
	var err error
	switch msg.Type {
	case Quit:
		return []Message{{Type: Quit}}
	case Transpose:
		res, err = d.transpose(d.parse(msg.String, warn), msg.Number, msg.Number2, msg.Boolean)
	case MajorScale:
		res, err = d.scale(msg.String, scales.Major, msg.Boolean, warn)
	case MinorScale:
		res, err = d.scale(msg.String, scales.Minor, msg.Boolean, warn)
	case Circle:
		res = d.printCircle(msg.Boolean)
	case Play:
		res, err = d.play(ctx, d.parse(msg.String, warn), msg.Number)
	case Import:
		res, err = d.importFile(msg.String, warn)
	case Export:
		res, err = d.exportFile(msg.String)
	case Key:
		variant := scales.Major
		if msg.Number == 1 {
			variant = scales.Minor
		}
		res, err = d.key(msg.String, variant, msg.Boolean, warn)
	default:
		err = fmt.Errorf("%w: unexpected event %v", music.ErrUnsupportedOperation, msg.Type)
	}
	if err != nil {
		logger.Error(err)
		return append(replies, Message{Type: Error, String: err.Error()})
	}
	if msg.Type != Export {
		d.last = res.String
	}
	return append(replies, res)
}

func (d *Dispatcher) parse(text string, warn func(string)) []music.Note {
	p := music.NewParser(text)
	if skipped := p.Skipped(); len(skipped) > 0 {
		warn(fmt.Sprintf("ignored %d invalid note(s): %s", len(skipped), strings.Join(skipped, " ")))
	}
	notes := p.Notes()
	for i := range notes {
		notes[i] = notes[i].WithDuration(d.duration)
	}
	return notes
}

func (d *Dispatcher) transpose(notes []music.Note, from, to int, qualified bool) (Message, error) {
	if len(notes) == 0 {
		return Message{}, fmt.Errorf("%w: no note to transpose", music.ErrInvalidArgument)
	}
	distances := music.Range(from, to)
	if len(distances) == 0 {
		return Message{}, fmt.Errorf("%w: empty distance range [%d, %d]", music.ErrInvalidArgument, from, to)
	}
	transposed, err := music.NewTransposer(d.order, notes...).TransposeAll(distances)
	if err != nil {
		return Message{}, err
	}
	// one line per distance
	p := music.NewPrinter(transposed)
	var text string
	if qualified {
		text = p.IndexedQualified(len(notes), from)
	} else {
		text = p.IndexedNames(len(notes), from)
	}
	return Message{Type: Result, String: text, Number: len(transposed)}, nil
}

func (d *Dispatcher) scale(text string, variant scales.Variant, qualified bool, warn func(string)) (Message, error) {
	notes := d.parse(text, warn)
	if len(notes) != 1 {
		return Message{}, fmt.Errorf("%w: a %s scale needs exactly one root note, got %d", music.ErrInvalidArgument, variant.Name, len(notes))
	}
	s, err := scales.New(notes[0], variant, d.order, d.circle).Notes()
	if err != nil {
		return Message{}, err
	}
	return d.result(s, -1, qualified), nil
}

// key spells the notes following the root in the key of the root.
func (d *Dispatcher) key(text string, variant scales.Variant, qualified bool, warn func(string)) (Message, error) {
	notes := d.parse(text, warn)
	if len(notes) < 2 {
		return Message{}, fmt.Errorf("%w: a key needs a root note and at least one note", music.ErrInvalidArgument)
	}
	conformed, err := scales.New(notes[0], variant, d.order, d.circle).Conform(notes[1:])
	if err != nil {
		return Message{}, err
	}
	return d.result(conformed, d.settings.NotesPerLine, qualified), nil
}

func (d *Dispatcher) printCircle(minor bool) Message {
	notes := d.circle.Major()
	if minor {
		notes = d.circle.Minor()
	}
	return d.result(notes, d.settings.NotesPerLine, false)
}

func (d *Dispatcher) result(notes []music.Note, perLine int, qualified bool) Message {
	p := music.NewPrinter(notes)
	text := p.Names(perLine)
	if qualified {
		text = p.Qualified(perLine)
	}
	return Message{Type: Result, String: text, Number: len(notes)}
}

func (d *Dispatcher) play(ctx context.Context, notes []music.Note, bpm int) (Message, error) {
	if len(notes) == 0 {
		return Message{}, fmt.Errorf("%w: no note to play", music.ErrInvalidArgument)
	}
	tempo := d.settings.BPM
	if bpm > 0 {
		tempo = float64(bpm)
	}
	text, err := sound.PlaybackString(notes)
	if err != nil {
		return Message{}, err
	}
	if err := sound.Send(ctx, sound.Render(notes, tempo), d.send); err != nil {
		return Message{}, err
	}
	return Message{Type: Result, String: text, Number: len(notes)}, nil
}

func (d *Dispatcher) importFile(path string, warn func(string)) (Message, error) {
	if path == "" {
		path = d.settings.ImportFile
	}
	text, err := textfile.Read(path)
	if err != nil {
		return Message{}, err
	}
	notes := d.parse(text, warn)
	return Message{Type: Result, String: text, Number: len(notes)}, nil
}

func (d *Dispatcher) exportFile(text string) (Message, error) {
	if text == "" {
		text = d.last
	}
	if err := textfile.Write(d.settings.ExportFile, text); err != nil {
		return Message{}, err
	}
	return Message{Type: Result, String: d.settings.ExportFile, Number: len(text)}, nil
}
