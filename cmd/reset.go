package cmd

import (
	"fmt"

	"github.com/marcus/blink/internal/output"
	"github.com/marcus/blink/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:     "reset",
	Short:   "Clear all goals and reflections",
	Long:    `Clear the persisted store. This is the only way to delete reflections; there is no per-entry removal.`,
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTeacherCode(cmd); err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to clear the portfolio without --force")
		}

		st, err := store.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(); err != nil {
			output.Error("%v", err)
			return err
		}

		output.Success("Portfolio cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "confirm clearing all data")
	rootCmd.AddCommand(resetCmd)
}
