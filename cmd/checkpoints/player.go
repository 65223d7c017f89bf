package main

import (
	"fmt"
	"strconv"

	"checkpoints/pkg/ui"
)

// player is the actor driven from the command line. Replies go to its chat.
type player struct {
	*ui.ChatSender
	name    string
	world   string
	x, y, z float64
}

func newPlayer(chat *ui.ChatSender, name string) *player {
	return &player{ChatSender: chat, name: name}
}

// Name returns the player name
func (p *player) Name() string {
	return p.name
}

// WorldID returns the world the player is in, empty when unknown
func (p *player) WorldID() string {
	return p.world
}

// Coordinates returns the player position
func (p *player) Coordinates() (float64, float64, float64) {
	return p.x, p.y, p.z
}

func (p *player) teleport(world string, x, y, z float64) {
	p.world, p.x, p.y, p.z = world, x, y, z
}

// location renders the position for display
func (p *player) location() string {
	world := p.world
	if world == "" {
		world = "<no world>"
	}
	return fmt.Sprintf("%s (%s, %s, %s)", world, formatFloat(p.x), formatFloat(p.y), formatFloat(p.z))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
