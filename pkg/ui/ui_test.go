package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.PrintSuccess("Checkpoints saved")
	term.PrintError("Failed to open store", "permission denied")
	term.PrintWarning("Checkpoints file is empty", "")
	term.PrintInfo("Data folder", "/srv/plugins/checkpoints")
	term.PrintHighlight("Checkpoints")
	term.PrintDim("type help for commands")

	// A buffer is not a terminal, so no escape codes are written
	assert.Equal(t, "Checkpoints saved\n"+
		"Failed to open store: permission denied\n"+
		"Checkpoints file is empty\n"+
		"Data folder: /srv/plugins/checkpoints\n"+
		"Checkpoints\n"+
		"type help for commands\n", buf.String())
}

func TestChatSender(t *testing.T) {
	var buf bytes.Buffer
	sender := NewChatSender(&buf, "checkpoints")

	sender.SendMessage("Checkpoint added")
	sender.SendMessage("Checkpoints:")

	assert.Equal(t, "[checkpoints] Checkpoint added\n[checkpoints] Checkpoints:\n", buf.String())
}
