// Package cmd holds the w3w subcommands.
package cmd

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/what3words/w3w-go-wrapper/internal/logger"
	"github.com/what3words/w3w-go-wrapper/pkg/config"
	"github.com/what3words/w3w-go-wrapper/pkg/recognize"
	"github.com/what3words/w3w-go-wrapper/pkg/what3words"
)

var errNoAPIKey = errors.New("no API key: set W3W_API_KEY, pass --key or set [api].key in the config file")

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	debug      bool
	apiKey     string
	host       string

	config     *config.Config
	activePath string
}

// NewRootCmd builds the w3w command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "w3w",
		Short: "what3words client and three word address recogniser",
		Long: "Find, check and convert three word addresses (3wa).\n" +
			"Shape checks run offline; lookups call the what3words API.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a config.toml (default [UserConfigDir]/w3w/config.toml)")
	flags.BoolVarP(&a.debug, "debug", "d", false, "Toggle debug mode")
	flags.StringVar(&a.apiKey, "key", "", "what3words API key (overrides config and W3W_API_KEY)")
	flags.StringVar(&a.host, "host", "", "API host (overrides config and W3W_HOST)")

	root.AddCommand(
		newServeCmd(a),
		newCliCmd(a),
		newCheckCmd(a),
		newFindCmd(a),
		newValidCmd(a),
		newSuggestCmd(a),
		newConvertCmd(a),
		newLanguagesCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger.Setup(a.debug)

	cfg, path, err := config.LoadConfigWithPriority(a.configPath)
	if err != nil {
		return err
	}
	if a.apiKey != "" {
		cfg.API.Key = a.apiKey
	}
	if a.host != "" {
		cfg.API.Host = a.host
	}
	a.config = cfg
	a.activePath = path
	log.Debug("config loaded", "path", config.GetActiveConfigPath(path), "host", cfg.API.Host)
	return nil
}

// client builds an API client from the resolved config.
// A key is required unless the host has been changed, since self-hosted
// instances may not check it.
func (a *app) client() (*what3words.Client, error) {
	api := a.config.API
	if api.Key == "" && (api.Host == "" || api.Host == what3words.DefaultHost) {
		return nil, errNoAPIKey
	}
	opts := []what3words.Option{
		what3words.WithLogger(logger.New("api")),
	}
	if api.Host != "" {
		opts = append(opts, what3words.WithHost(api.Host))
	}
	if api.TimeoutSeconds > 0 {
		opts = append(opts, what3words.WithTimeout(api.Timeout()))
	}
	for k, v := range api.Headers {
		opts = append(opts, what3words.WithHeader(k, v))
	}
	return what3words.New(api.Key, opts...), nil
}

// lookup returns the client as a recognize.Lookup when wanted and possible,
// or nil to stay offline.
func (a *app) lookup(wanted bool) recognize.Lookup {
	if !wanted {
		return nil
	}
	c, err := a.client()
	if err != nil {
		log.Warn("lookups disabled", "err", err)
		return nil
	}
	return c
}

// printer returns a logger that writes plain lines to w.
func printer(w io.Writer) *log.Logger {
	return logger.NewWithConfig(w, "", log.InfoLevel, false, false, log.TextFormatter)
}
