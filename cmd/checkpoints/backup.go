package main

import (
	"fmt"
	"time"

	"checkpoints/pkg/storage"
	"checkpoints/pkg/ui"

	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the checkpoints file to a timestamped backup",
	Long: `Copy the checkpoints file inside the data folder to
<file>.<UTC timestamp>.bak. Nothing is written when the file does not exist.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			ui.PrintError("Failed to load configuration", err.Error())
			return err
		}

		manager, err := storage.NewManager(cfg.Storage.DataDir)
		if err != nil {
			ui.PrintError("Failed to open data folder", err.Error())
			return err
		}

		path, err := manager.Backup(cfg.Storage.FileName, time.Now())
		if err != nil {
			ui.PrintError("Backup failed", err.Error())
			return err
		}
		if path == "" {
			ui.PrintWarning("Nothing to back up", fmt.Sprintf("%s does not exist", manager.Path(cfg.Storage.FileName)))
			return nil
		}

		ui.PrintSuccess("Backup written: " + path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
