package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Cancel open focus sessions that ran past their target duration",
	Long: `sweep runs one pass of the overdue-session sweeper against the database.
Use it when the server is not running; a live server sweeps on its own.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		orch := offlineOrchestrator(st, cfg, log)
		open, err := orch.Restore(cmd.Context())
		if err != nil {
			return err
		}
		swept := orch.Sweep(cmd.Context(), time.Now().UTC())
		for _, id := range swept {
			fmt.Printf("cancelled %s\n", id)
		}
		fmt.Printf("%d open, %d cancelled\n", open, len(swept))
		return nil
	},
}
