package cmd

import (
	"github.com/marcus/blink/internal/models"
	"github.com/marcus/blink/internal/output"
	"github.com/marcus/blink/internal/store"
	"github.com/spf13/cobra"
)

var reflectionsCmd = &cobra.Command{
	Use:     "reflections",
	Short:   "Browse submitted reflections",
	GroupID: "portfolio",
}

var reflectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reflections, newest first",
	Long: `List submitted reflections.

Examples:
  blink reflections list --code BLINK123     # timeline, newest first
  blink reflections list --by-student        # grouped per student
  blink reflections list --json`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTeacherCode(cmd); err != nil {
			return err
		}

		st, err := store.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer st.Close()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return output.JSON(st.Reflections())
		}

		byStudent, _ := cmd.Flags().GetBool("by-student")
		if byStudent {
			groups := st.ReflectionsByStudent()
			if len(groups) == 0 {
				output.Info("No reflections handed in yet.")
				return nil
			}
			for _, group := range groups {
				output.Info("%s (%d)", output.Title(group.Name), len(group.Entries))
				for _, entry := range group.Entries {
					printReflectionLine(entry)
				}
			}
			return nil
		}

		reflections := st.Reflections()
		if len(reflections) == 0 {
			output.Info("No reflections handed in yet.")
			return nil
		}
		for _, entry := range reflections {
			printReflectionLine(entry)
		}
		return nil
	},
}

func printReflectionLine(entry models.ReflectionEntry) {
	output.Info("  %s  %s  %s  %s  %s",
		entry.ID,
		entry.StudentName,
		output.FormatStars(entry.Rating),
		entry.LessonGoal,
		output.Subtle(entry.LessonDate))
}

func init() {
	reflectionsListCmd.Flags().Bool("by-student", false, "group by student name")
	reflectionsListCmd.Flags().Bool("json", false, "output as JSON")

	reflectionsCmd.AddCommand(reflectionsListCmd)
	rootCmd.AddCommand(reflectionsCmd)
}
