package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/what3words/w3w-go-wrapper/internal/cli"
	"github.com/what3words/w3w-go-wrapper/pkg/config"
	"github.com/what3words/w3w-go-wrapper/pkg/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve 3wa recognition over MessagePack on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lookup := a.lookup(a.config.Server.EnableLookups)
			srv := server.NewServerWithIO(lookup, a.config, cmd.InOrStdin(), cmd.OutOrStdout())
			showStartupInfo(a, lookup != nil)
			return srv.Start(cmd.Context())
		},
	}
}

func newCliCmd(a *app) *cobra.Command {
	var lookupFlag, offsets bool

	c := &cobra.Command{
		Use:   "cli",
		Short: "Interactive mode: analyse each line you type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wantLookup := a.config.CLI.Lookup || lookupFlag
			showOffsets := a.config.CLI.ShowOffsets || offsets
			log.Debug("Input info:", "lookup", wantLookup, "offsets", showOffsets)

			h := cli.NewInputHandlerWithIO(a.lookup(wantLookup), showOffsets, cmd.InOrStdin(), cmd.OutOrStdout())
			return h.Start(cmd.Context())
		},
	}
	c.Flags().BoolVar(&lookupFlag, "lookup", false, "Confirm each line against the API")
	c.Flags().BoolVar(&offsets, "offsets", false, "Show byte offsets of matches")
	return c
}

// showStartupInfo displays some basic info on stderr; stdout carries the IPC stream.
func showStartupInfo(a *app, lookups bool) {
	l := printer(os.Stderr)
	l.Print("===========")
	l.Print("    w3w    ")
	l.Print("===========")
	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	l.Infof("config: ( %s )", config.GetActiveConfigPath(a.activePath))
	l.Infof("lookups: %t", lookups)
	l.Info("status: ready")
	l.Print("===========")
}
