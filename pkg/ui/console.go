package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ChatSender renders command replies the way a game chat would, prefixed with
// the command tag. It satisfies command.Sender.
type ChatSender struct {
	out    io.Writer
	prefix string
	tag    lipgloss.Style
}

// NewChatSender creates a sender that writes replies to w, tagged with name
func NewChatSender(w io.Writer, name string) *ChatSender {
	r := lipgloss.NewRenderer(w)
	return &ChatSender{
		out:    w,
		prefix: "[" + name + "]",
		tag:    r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	}
}

// SendMessage writes a single reply line
func (c *ChatSender) SendMessage(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.tag.Render(c.prefix), msg)
}
