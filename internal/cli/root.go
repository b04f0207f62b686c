package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/noctalia-dev/plugin-registry/internal/branding"
	"github.com/noctalia-dev/plugin-registry/internal/config"
	"github.com/noctalia-dev/plugin-registry/internal/logging"
)

// buildInfo is injected via ldflags in main.
type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app carries the state shared by the commands of one invocation.
type app struct {
	info       buildInfo
	v          *viper.Viper
	configFile string
	log        *zap.Logger
}

// Execute runs the command tree against the process arguments.
func Execute(version, commit, date string) error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr, version, commit, date)
}

// ExecuteArgs runs the command tree with explicit arguments and streams.
// A returned error has already been logged to stderr.
func ExecuteArgs(args []string, stdout, stderr io.Writer, version, commit, date string) error {
	a := &app{
		info: buildInfo{Version: version, Commit: commit, Date: date},
		v:    config.New(),
	}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		log := a.log
		if log == nil {
			log = fallbackLogger(stderr)
		}
		log.Error(err.Error())
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scans the plugin directories under the repository root,
reads each plugin's manifest.json, and writes registry.json: the sorted index
of every plugin's id, name, version, author, description, repository,
minNoctaliaVersion, and license.

Run without arguments from the root of a checkout of
https://github.com/` + branding.GitHubRepo() + ` to regenerate the registry.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runBuild,
	}

	pf := cmd.PersistentFlags()
	pf.String("root", "", "plugin root directory (default: current directory)")
	pf.StringVar(&a.configFile, "config", "", "config file (default: <root>/"+branding.ConfigFile()+")")
	pf.String("output", "", "registry file, relative to the root (default: "+branding.RegistryFile()+")")
	pf.StringSlice("exclude", nil, "additional directory name globs to skip")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", logging.FormatConsole, "log format: console or json")

	cmd.Flags().Bool("check", false, "verify the registry file is up to date instead of writing it")

	cmd.AddCommand(a.versionCmd(), a.validateCmd(), a.listCmd(), a.configCmd())
	return cmd
}

// setup resolves configuration for the running command and builds its
// logger. Every command that touches the plugin root calls it first.
func (a *app) setup(cmd *cobra.Command) (*config.Config, error) {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return nil, err
	}
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	a.log = log
	return cfg, nil
}

// fallbackLogger is used for errors raised before setup built a logger.
func fallbackLogger(w io.Writer) *zap.Logger {
	log, err := logging.New(logging.DefaultConfig(), w)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
