package main

import (
	"fmt"
	"os"

	"checkpoints/pkg/command"
	"checkpoints/pkg/logger"
	"checkpoints/pkg/ui"

	"github.com/spf13/cobra"
)

// Position flags shared by the one-shot subcommands
var (
	posWorld     string
	posX         float64
	posY         float64
	posZ         float64
	saveAfterRun bool
)

var subcommandHelp = map[string]string{
	command.SubAdd:    "Add a checkpoint at the player position",
	command.SubRemove: "Remove the first checkpoint at the player position",
	command.SubList:   "List all checkpoints",
	command.SubSave:   "Write the checkpoints to the data file",
	command.SubReload: "Reload the checkpoints from the data file",
}

func init() {
	for _, sub := range command.Subcommands {
		rootCmd.AddCommand(newSubcommand(sub))
	}
}

// newSubcommand builds a one-shot cobra command that runs a single
// checkpoints subcommand
func newSubcommand(sub string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   sub,
		Short: subcommandHelp[sub],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubcommand(sub)
		},
	}

	if sub == command.SubAdd || sub == command.SubRemove {
		cmd.Example = fmt.Sprintf("  checkpoints %s --world world --x 10 --y 64 --z -3.5 --save", sub)
		cmd.Flags().StringVar(&posWorld, "world", "", "world the player is in")
		cmd.Flags().Float64Var(&posX, "x", 0, "player x coordinate")
		cmd.Flags().Float64Var(&posY, "y", 0, "player y coordinate")
		cmd.Flags().Float64Var(&posZ, "z", 0, "player z coordinate")
		cmd.Flags().BoolVar(&saveAfterRun, "save", false, "save the checkpoints file afterwards")
	}

	return cmd
}

func runSubcommand(sub string) error {
	cfg, err := loadConfig()
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		return err
	}

	log := logger.GetLogger()
	p := enablePlugin(cfg, log, os.Stdout)
	defer p.disable("command finished")

	actor := newPlayer(ui.NewChatSender(os.Stdout, cfg.Command.Name), cfg.Command.PlayerName)
	actor.teleport(posWorld, posX, posY, posZ)

	if !p.dispatch(actor, []string{sub}) {
		return fmt.Errorf("invalid subcommand %q", sub)
	}

	// Mutations only live in memory until saved
	if saveAfterRun && (sub == command.SubAdd || sub == command.SubRemove) {
		p.dispatch(actor, []string{command.SubSave})
	}

	return nil
}
