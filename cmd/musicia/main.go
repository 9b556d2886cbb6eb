package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/JeanRibes/musicia/commands"
	. "github.com/JeanRibes/musicia/shared"

	charmlog "github.com/charmbracelet/log"
)

func main() {
	configFile := flag.String("config", "musicia.yaml", "config file")
	inFile := flag.String("file", "", "read the notes from a text file instead of the command line")
	export := flag.Bool("export", false, "write the result to the export file")
	qualified := flag.Bool("qualified", true, "print octave and duration of each note")
	perLine := flag.Int("per-line", 0, "notes per line when printing a circle, 0 for a single line")
	from := flag.Int("from", -11, "smallest transposition distance, in semitones")
	to := flag.Int("to", 11, "largest transposition distance, in semitones")
	bpm := flag.Float64("bpm", BPM, "playback tempo")
	duration := flag.String("duration", "q", "duration of the parsed notes (w, h., h, q., q, ... o)")
	minor := flag.Bool("minor", false, "key: use the minor scale of the root")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <transpose|major|minor|circle|key|play|import|export> [notes...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           charmlog.InfoLevel,
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "musicia",
	})

	config, err := LoadConfig(*configFile)
	if err != nil {
		logger.Fatal("cannot load config", "file", *configFile, "err", err)
	}
	// flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "qualified":
			config.Output.Qualified = *qualified
		case "per-line":
			config.Output.NotesPerLine = *perLine
		case "from":
			config.Transpose.From = *from
		case "to":
			config.Transpose.To = *to
		case "bpm":
			config.Playback.BPM = *bpm
		case "duration":
			config.Playback.Duration = *duration
		}
	})
	level, err := config.LogLevel()
	if err != nil {
		logger.Fatal(err)
	}
	if *debug {
		level = charmlog.DebugLevel
		logger.SetReportCaller(true)
	}
	logger.SetLevel(level)
	ctx := context.WithValue(context.Background(), charmlog.ContextKey, logger)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	event, ok := ParseEvent(flag.Arg(0))
	if !ok || event == Quit {
		logger.Error("unknown command", "command", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	logger.Debug("config", "file", *configFile, "transpose", config.Transpose, "output", config.Output, "playback", config.Playback)

	d, err := commands.New(config.Settings(), printMIDI)
	if err != nil {
		logger.Fatal(err)
	}

	text := strings.Join(flag.Args()[1:], " ")
	if *inFile != "" && event != Import {
		res, ok := show(d.Handle(ctx, Message{Type: Import, String: *inFile}), Import)
		if !ok {
			os.Exit(1)
		}
		text = res.String
	}

	msg := Message{Type: event, String: text, Boolean: config.Output.Qualified}
	switch event {
	case Transpose:
		msg.Number, msg.Number2 = config.Transpose.From, config.Transpose.To
	case Circle:
		msg.Boolean = text == "minor"
	case Key:
		if *minor {
			msg.Number = 1
		}
	case Import:
		msg.String = *inFile
		if text != "" {
			msg.String = text
		}
	}
	if _, ok := show(d.Handle(ctx, msg), event); !ok {
		os.Exit(1)
	}

	if *export && event != Export {
		if _, ok := show(d.Handle(ctx, Message{Type: Export}), Export); !ok {
			os.Exit(1)
		}
	}
}
