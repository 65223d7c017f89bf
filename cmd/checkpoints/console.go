package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"checkpoints/pkg/logger"
	"checkpoints/pkg/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// consoleCmd represents the interactive console command
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start an interactive session as a player",
	Long: `Start an interactive session that behaves like a game server chat.

Available input:
  tp <world> <x> <y> <z>     move the player
  where                      show the player location
  backup                     copy the checkpoints file to a timestamped backup
  /checkpoints <subcommand>  run the checkpoints command (the slash is optional)
  help                       show this help
  quit                       leave the session (unsaved checkpoints are lost)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			ui.PrintError("Failed to load configuration", err.Error())
			return err
		}

		p := enablePlugin(cfg, logger.GetLogger(), os.Stdout)
		defer p.disable("console closed")

		session := newConsoleSession(p, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
		return session.run(os.Stdin)
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

// consoleSession reads chat lines and routes them to the plugin
type consoleSession struct {
	plugin      *plugin
	player      *player
	out         io.Writer
	term        *ui.Terminal
	interactive bool
}

func newConsoleSession(p *plugin, out io.Writer, interactive bool) *consoleSession {
	chat := ui.NewChatSender(out, p.cfg.Command.Name)
	return &consoleSession{
		plugin:      p,
		player:      newPlayer(chat, p.cfg.Command.PlayerName),
		out:         out,
		term:        ui.NewTerminal(out),
		interactive: interactive,
	}
}

func (s *consoleSession) run(in io.Reader) error {
	if s.interactive {
		s.term.PrintHighlight("Checkpoints console")
		s.term.PrintDim("Type help for commands, quit to leave.")
	}

	scanner := bufio.NewScanner(in)
	s.prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && s.handle(line) {
			return nil
		}
		s.prompt()
	}
	return scanner.Err()
}

func (s *consoleSession) prompt() {
	if s.interactive {
		fmt.Fprintf(s.out, "%s> ", s.player.name)
	}
}

// handle processes one line and reports whether the session should end
func (s *consoleSession) handle(line string) bool {
	fields := strings.Fields(line)
	name := strings.TrimPrefix(fields[0], "/")

	switch strings.ToLower(name) {
	case "quit", "exit":
		return true
	case "help":
		s.term.PrintInfo("tp <world> <x> <y> <z>", "move the player")
		s.term.PrintInfo("where", "show the player location")
		s.term.PrintInfo("backup", "copy the checkpoints file to a timestamped backup")
		s.term.PrintInfo("/"+s.plugin.handler.Name()+" <subcommand>", s.plugin.handler.Usage())
		s.term.PrintInfo("quit", "leave the session")
	case "where":
		s.term.PrintInfo("Location", s.player.location())
	case "tp":
		s.teleport(fields[1:])
	case "backup":
		s.backup()
	case strings.ToLower(s.plugin.handler.Name()):
		s.plugin.dispatch(s.player, fields[1:])
	default:
		s.term.PrintWarning("Unknown command", name)
	}
	return false
}

func (s *consoleSession) teleport(args []string) {
	if len(args) != 4 {
		s.term.PrintWarning("Usage", "tp <world> <x> <y> <z>")
		return
	}

	var coords [3]float64
	for i, arg := range args[1:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			s.term.PrintError("Invalid coordinate", arg)
			return
		}
		coords[i] = v
	}

	s.player.teleport(args[0], coords[0], coords[1], coords[2])
	s.term.PrintInfo("Teleported to", s.player.location())
}

func (s *consoleSession) backup() {
	path, err := s.plugin.backup(time.Now())
	switch {
	case err != nil:
		s.term.PrintError("Backup failed", err.Error())
	case path == "":
		s.term.PrintWarning("Nothing to back up", "the checkpoints file does not exist")
	default:
		s.term.PrintSuccess("Backup written: " + path)
	}
}
