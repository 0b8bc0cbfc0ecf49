package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/blink/internal/output"
	"github.com/marcus/blink/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export the whole portfolio as markdown",
	Long:    `Export every submitted reflection as one markdown document, newest first. Use --raw for plain markdown suitable for piping to a file.`,
	GroupID: "portfolio",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTeacherCode(cmd); err != nil {
			return err
		}

		st, err := store.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer st.Close()

		reflections := st.Reflections()
		if len(reflections) == 0 {
			output.Info("No reflections handed in yet.")
			return nil
		}

		parts := make([]string, 0, len(reflections))
		for _, entry := range reflections {
			parts = append(parts, output.ReflectionMarkdown(entry))
		}
		doc := strings.Join(parts, "\n---\n\n")

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Println(doc)
			return nil
		}

		rendered, err := output.RenderMarkdown(doc)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("raw", false, "plain markdown, no terminal styling")
	rootCmd.AddCommand(exportCmd)
}
