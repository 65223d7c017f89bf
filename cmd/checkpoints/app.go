package main

import (
	"fmt"
	"io"
	"time"

	"checkpoints/pkg/checkpoint"
	"checkpoints/pkg/command"
	"checkpoints/pkg/config"
	errs "checkpoints/pkg/errors"
	"checkpoints/pkg/logger"
	"checkpoints/pkg/storage"
	"checkpoints/pkg/ui"
)

// plugin wires the data folder, the checkpoint store and the command handler
// together, the way a game server enables a plugin
type plugin struct {
	cfg     *config.Config
	storage *storage.Manager
	store   *checkpoint.Store
	handler *command.Handler
	logger  logger.Logger
	out     *ui.Terminal
}

// enablePlugin prepares the data folder and loads the checkpoints. Storage
// problems are reported but never stop the plugin from coming up.
func enablePlugin(cfg *config.Config, log logger.Logger, out io.Writer) *plugin {
	p := &plugin{
		cfg:    cfg,
		logger: log,
		out:    ui.NewTerminal(out),
	}

	manager, err := storage.NewManager(cfg.Storage.DataDir)
	if err != nil {
		log.WithError(err).Warn("Failed to create data folder")
	}
	p.storage = manager

	store, err := checkpoint.Open(cfg.CheckpointPath(),
		checkpoint.WithLogger(log),
		checkpoint.WithIndent(cfg.Storage.Indent),
	)
	if err != nil {
		p.reportLoad(err)
	}
	p.store = store
	p.handler = command.NewHandler(cfg.Command.Name, store, log)

	logger.LogComponentStart(log, cfg.Command.Name, map[string]interface{}{
		"path":        store.Path(),
		"checkpoints": store.Len(),
	})

	return p
}

// reportLoad logs a failed initial load at the matching level
func (p *plugin) reportLoad(err error) {
	l := p.logger.WithError(err).WithField("path", p.cfg.CheckpointPath())
	if errs.IsWarning(errs.TypeOf(err)) {
		l.Warn("Checkpoints file could not be loaded, starting with no checkpoints")
		return
	}
	l.Error("Checkpoints file could not be read, starting with no checkpoints")
}

// disable mirrors plugin shutdown. Unsaved checkpoints are dropped.
func (p *plugin) disable(reason string) {
	logger.LogComponentStop(p.logger, p.cfg.Command.Name, reason)
}

// dispatch runs the checkpoints command for sender and prints usage on
// invalid input
func (p *plugin) dispatch(sender command.Sender, args []string) bool {
	if !p.handler.Execute(sender, args) {
		p.out.PrintWarning("Usage", p.handler.Usage())
		return false
	}
	return true
}

// backup copies the checkpoints file inside the data folder
func (p *plugin) backup(now time.Time) (string, error) {
	if p.storage == nil {
		return "", fmt.Errorf("data folder %s is not available", p.cfg.Storage.DataDir)
	}
	return p.storage.Backup(p.cfg.Storage.FileName, now)
}
