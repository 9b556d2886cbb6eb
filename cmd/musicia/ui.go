package main

import (
	"fmt"

	. "github.com/JeanRibes/musicia/shared"

	"github.com/charmbracelet/lipgloss"
	"gitlab.com/gomidi/midi/v2"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7d56f4"))
	bodyStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#555")).Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
)

// show prints the result among the replies. Warnings and errors are already
// logged by the dispatcher.
func show(replies []Message, request Event) (Message, bool) {
	for _, reply := range replies {
		switch reply.Type {
		case Error:
			return reply, false
		case Result:
			fmt.Println(render(reply, request))
			return reply, true
		}
	}
	return Message{}, false
}

func render(reply Message, request Event) string {
	var header string
	switch request {
	case Export:
		header = fmt.Sprintf("exported %d bytes", reply.Number)
	case Play:
		header = fmt.Sprintf("played %d notes", reply.Number)
	default:
		header = fmt.Sprintf("%s: %d notes", request, reply.Number)
	}
	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(header), bodyStyle.Render(reply.String))
}

// printMIDI stands in for a playback backend: it lists the messages it is given.
func printMIDI(msg midi.Message) error {
	fmt.Println(dimStyle.Render(msg.String()))
	return nil
}
