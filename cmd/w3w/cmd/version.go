package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/what3words/w3w-go-wrapper/pkg/what3words"
)

const (
	// Version of the w3w command.
	Version = "1.0.0"
	gh      = "https://github.com/what3words/w3w-go-wrapper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current version",
		Args:  cobra.NoArgs,
		// no config needed to print a version
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			l := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
				ReportCaller:    false,
				ReportTimestamp: false,
				Prefix:          "",
			})

			styles := log.DefaultStyles()
			styles.Values["version"] = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			styles.Values["client"] = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
			styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			l.SetStyles(styles)

			l.Print("")
			l.Print("[ w3w ] Finds, checks and converts three word addresses")
			l.Print("", "version", Version, "client", what3words.Version)
			l.Print("")
			l.Print("use -h or --help to see available commands")
			l.Print("Github Repo", "gh", gh)
		},
	}
}
