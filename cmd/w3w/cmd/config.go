package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/what3words/w3w-go-wrapper/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Show the active config file and resolved API settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:    %s\n", config.GetActiveConfigPath(a.activePath))
			fmt.Fprintf(out, "host:    %s\n", a.config.API.Host)
			fmt.Fprintf(out, "key:     %s\n", maskKey(a.config.API.Key))
			fmt.Fprintf(out, "timeout: %s\n", a.config.API.Timeout())
			return nil
		},
	}

	c.AddCommand(&cobra.Command{
		Use:   "set-key <key>",
		Short: "Store an API key in the active config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.activePath == "" {
				return errors.New("no writable config file; pass --config")
			}
			if err := a.config.SetAPIKey(a.activePath, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved key to %s\n", a.activePath)
			return nil
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "rebuild",
		Short: "Overwrite the default config file with built-in defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.RebuildConfigFile()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})
	return c
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	switch {
	case key == "":
		return "(not set)"
	case len(key) <= 4:
		return "****"
	default:
		return "****" + key[len(key)-4:]
	}
}
