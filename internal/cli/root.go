// Package cli implements the shelf command-line interface: the interactive
// catalog menu and the file-based check and list commands.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/internal/library"
	"github.com/mesh-intelligence/shelf/internal/paths"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Exit codes.
const (
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	seedFile  string
	noColor   bool
	logLevel  string
	logFormat string
}

// app is the state shared by the commands of one root command.
type app struct {
	flags     rootFlags
	configDir string
	config    types.Config
	logger    *slog.Logger
	palette   palette
}

// NewRootCmd creates the top-level "shelf" command with global flags and all
// subcommands registered. Run without a subcommand it starts the menu.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "shelf",
		Short: "Manage a small catalog of books and magazines",
		Long: "Shelf keeps an in-memory catalog of books and magazines.\n" +
			"Run without arguments for the interactive menu, or use check and list\n" +
			"to validate and print item files.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/shelf)")
	pf.StringVar(&a.flags.seedFile, "seed", "", "item file to load into the catalog before the menu starts")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newListCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintln(os.Stderr, ee.err)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

// setup resolves the config directory, loads configuration and builds the
// logger and palette.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return &exitError{code: exitSysError, err: fmt.Errorf("resolve config dir: %w", err)}
	}
	a.configDir = configDir

	cfg, err := loadConfig(configDir, cmd.Flags())
	if err != nil {
		return &exitError{code: exitUserError, err: fmt.Errorf("load config: %w", err)}
	}
	a.config = cfg
	a.logger = newLogger(cfg, cmd.ErrOrStderr())
	a.palette = newPalette(cfg.Color)

	a.logger.Debug("configuration loaded",
		"config_dir", configDir,
		"log_level", cfg.LogLevel,
		"seed_file", cfg.SeedFile)
	return nil
}

// newCatalog returns an empty catalog wired to the app logger.
func (a *app) newCatalog() *library.Catalog {
	return library.NewCatalog(library.WithLogger(a.logger.With("component", "catalog")))
}

// exitError carries a process exit code alongside the error to print.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}
