package command

import (
	"fmt"
	"strings"

	"checkpoints/pkg/checkpoint"
	errs "checkpoints/pkg/errors"
	"checkpoints/pkg/logger"
)

// Subcommands understood by the handler
const (
	SubAdd    = "add"
	SubRemove = "remove"
	SubList   = "list"
	SubSave   = "save"
	SubReload = "reload"
)

// Subcommands lists every subcommand in usage order
var Subcommands = []string{SubAdd, SubRemove, SubList, SubSave, SubReload}

// Sender receives command replies
type Sender interface {
	SendMessage(msg string)
}

// Actor is a sender with a position in a world, typically a player
type Actor interface {
	Sender
	checkpoint.PositionSource
	Name() string
}

// Handler executes the checkpoints command against a store
type Handler struct {
	name   string
	store  *checkpoint.Store
	logger logger.Logger
}

// NewHandler creates a handler for the command registered under name
func NewHandler(name string, store *checkpoint.Store, log logger.Logger) *Handler {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Handler{
		name:   name,
		store:  store,
		logger: log.WithField("command", name),
	}
}

// Name returns the registered command name
func (h *Handler) Name() string {
	return h.name
}

// Usage returns the usage line shown for invalid invocations
func (h *Handler) Usage() string {
	return fmt.Sprintf("/%s <%s>", h.name, strings.Join(Subcommands, "|"))
}

// Execute runs a subcommand for sender. It returns false when the invocation
// is invalid (no sender, missing or unknown subcommand) and usage should be
// shown. Subcommands match case-insensitively. Store failures are logged and
// reported to the sender, never returned.
func (h *Handler) Execute(sender Sender, args []string) bool {
	if sender == nil {
		h.logger.Warn("Command issued without a sender")
		return false
	}
	if len(args) == 0 {
		return false
	}

	switch strings.ToLower(args[0]) {
	case SubAdd:
		if actor, ok := h.requireActor(sender); ok {
			h.add(actor)
		}
	case SubRemove:
		if actor, ok := h.requireActor(sender); ok {
			h.remove(actor)
		}
	case SubList:
		h.list(sender)
	case SubSave:
		h.save(sender)
	case SubReload:
		h.reload(sender)
	default:
		return false
	}
	return true
}

func (h *Handler) requireActor(sender Sender) (Actor, bool) {
	actor, ok := sender.(Actor)
	if !ok {
		sender.SendMessage("Only players can use this subcommand")
		return nil, false
	}
	return actor, true
}

func (h *Handler) add(actor Actor) {
	record, err := checkpoint.FromSource(actor)
	if err != nil {
		h.fail(actor, SubAdd, "Could not add checkpoint", err)
		return
	}

	h.store.Add(record)
	h.logger.WithFields(map[string]interface{}{
		"player": actor.Name(),
		"world":  record.World(),
		"x":      record.X(),
		"y":      record.Y(),
		"z":      record.Z(),
	}).Info("Checkpoint added")
	actor.SendMessage("Checkpoint added")
}

func (h *Handler) remove(actor Actor) {
	removed, err := h.store.RemoveAt(actor)
	if err != nil {
		h.fail(actor, SubRemove, "Could not remove checkpoint", err)
		return
	}
	if !removed {
		actor.SendMessage("No checkpoint at your location")
		return
	}

	h.logger.WithField("player", actor.Name()).Info("Checkpoint removed")
	actor.SendMessage("Checkpoint removed")
}

func (h *Handler) list(sender Sender) {
	sender.SendMessage("Checkpoints:")
	for _, record := range h.store.List() {
		sender.SendMessage(record.String())
	}
}

func (h *Handler) save(sender Sender) {
	if err := h.store.Save(); err != nil {
		h.fail(sender, SubSave, "Checkpoints were not saved", err)
		return
	}
	sender.SendMessage("Checkpoints saved")
}

func (h *Handler) reload(sender Sender) {
	if err := h.store.Reload(); err != nil {
		h.fail(sender, SubReload, "Checkpoints reloaded with problems", err)
		return
	}
	sender.SendMessage("Checkpoints reloaded")
}

// fail logs err and tells the sender what went wrong
func (h *Handler) fail(sender Sender, op, msg string, err error) {
	logger.LogStoreEvent(h.logger, op, h.store.Path(), h.store.Len(), err)
	sender.SendMessage(fmt.Sprintf("%s: %s", msg, describeError(err)))
}

// describeError turns a store error into a short message for players
func describeError(err error) string {
	switch errs.TypeOf(err) {
	case errs.ErrorTypeInvalidInput:
		return "your position is not valid"
	case errs.ErrorTypeMissingWorld:
		return "your location has no world"
	case errs.ErrorTypeMissingFile:
		return "the checkpoints file is missing"
	case errs.ErrorTypeEmptyFile:
		return "the checkpoints file is empty"
	case errs.ErrorTypeMalformedRecord:
		return "the checkpoints file could not be read"
	case errs.ErrorTypeIO:
		return "storage error, see the server log"
	default:
		return err.Error()
	}
}
