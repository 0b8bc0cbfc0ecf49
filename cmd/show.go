package cmd

import (
	"fmt"

	"github.com/marcus/blink/internal/output"
	"github.com/marcus/blink/internal/store"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Short:   "Show one reflection in full",
	GroupID: "portfolio",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTeacherCode(cmd); err != nil {
			return err
		}

		st, err := store.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer st.Close()

		entry, ok := st.FindReflection(args[0])
		if !ok {
			return fmt.Errorf("no reflection with id %s", args[0])
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return output.JSON(entry)
		}

		rendered, err := output.RenderMarkdown(output.ReflectionMarkdown(entry))
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}
