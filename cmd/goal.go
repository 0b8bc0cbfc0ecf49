package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/blink/internal/models"
	"github.com/marcus/blink/internal/output"
	"github.com/marcus/blink/internal/store"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Short:   "Manage lesson goals",
	Long:    `Add, list, and remove the lesson goals offered to students.`,
	GroupID: "portfolio",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <subject> <text>",
	Short: "Publish a new lesson goal",
	Long: `Publish a new lesson goal for one subject.

Subjects: geography (geo), history (hist), nature_technology (nature, tech)

Examples:
  blink goal add geography "Describe the water cycle" --code BLINK123
  blink goal add hist "Name two causes of the Eighty Years' War"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTeacherCode(cmd); err != nil {
			return err
		}

		subject, ok := models.ParseSubject(args[0])
		if !ok {
			return fmt.Errorf("unknown subject %q (geography, history, nature_technology)", args[0])
		}
		text := strings.Join(args[1:], " ")

		st, err := store.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer st.Close()

		goal, err := st.AddGoal(text, subject)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		output.Success("ADDED %s %s", goal.ID, goal.Text)
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List active lesson goals by subject",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer st.Close()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return output.JSON(st.Goals())
		}

		groups := st.ActiveGoalsBySubject()
		if len(groups) == 0 {
			output.Info("No active lesson goals.")
			return nil
		}
		for _, group := range groups {
			output.Info("%s", output.FormatSubject(group.Subject))
			for _, goal := range group.Goals {
				output.Info("  %s  %s  %s", goal.ID, goal.Text, output.Subtle(goal.Date))
			}
		}
		return nil
	},
}

var goalRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Short:   "Remove a lesson goal",
	Long:    `Remove a lesson goal. Already-submitted reflections keep their copy of the goal text.`,
	Aliases: []string{"rm"},
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

		if err := st.RemoveGoal(args[0]); err != nil {
			output.Error("%v", err)
			return err
		}

		output.Success("REMOVED %s", args[0])
		return nil
	},
}

func init() {
	goalListCmd.Flags().Bool("json", false, "output as JSON")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalRemoveCmd)
	rootCmd.AddCommand(goalCmd)
}
