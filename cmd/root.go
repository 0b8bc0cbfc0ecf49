package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/blink/internal/auth"
	"github.com/marcus/blink/internal/coach"
	"github.com/marcus/blink/internal/config"
	"github.com/marcus/blink/internal/store"
	"github.com/marcus/blink/internal/tui"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "blink",
	Short: "Classroom reflection portfolio",
	Long: `blink - A local classroom reflection portfolio.

Teachers publish lesson goals per subject, students submit structured
self-assessments against those goals, and teachers review them on a
timeline or grouped per student. Run without arguments for the
interactive screens; subcommands cover headless use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer st.Close()

		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}

		var c coach.Coach = coach.Disabled{}
		if key := cfg.APIKey(); key != "" {
			client, err := coach.New(coach.Config{
				APIKey:    key,
				Model:     cfg.Model,
				MaxTokens: cfg.MaxTokens,
			})
			if err == nil {
				c = client
			}
		}

		model := tui.NewModel(st, c, auth.NewStaticCode(cfg.AccessCode))
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.AddGroup(
		&cobra.Group{ID: "portfolio", Title: "Portfolio Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")

	rootCmd.PersistentFlags().String("code", "", "teacher access code (or set BLINK_TEACHER_CODE)")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory holding the portfolio data
func getBaseDir() string {
	return baseDir
}

// requireTeacherCode gates teacher-only commands behind the same access
// code as the interactive dashboard
func requireTeacherCode(cmd *cobra.Command) error {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return err
	}

	code, _ := cmd.Flags().GetString("code")
	if code == "" {
		code = os.Getenv("BLINK_TEACHER_CODE")
	}

	if !auth.NewStaticCode(cfg.AccessCode).Verify(code) {
		return fmt.Errorf("invalid teacher access code (use --code or BLINK_TEACHER_CODE)")
	}
	return nil
}
