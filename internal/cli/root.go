// Package cli implements the circle command-line interface: a thin shell that
// builds a circle.Circle from flags and configuration and reports on it.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/circles/internal/paths"
	"github.com/mesh-intelligence/circles/pkg/circle"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	verbose   bool
}

// app is the state shared by one command tree. It is filled in by the root
// PersistentPreRunE before any subcommand runs.
type app struct {
	flags     rootFlags
	configDir string
	config    *viper.Viper
	log       *zap.Logger
}

// sysError marks failures of the environment (filesystem, config I/O) as
// opposed to bad user input.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemErr(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// NewRootCmd creates the top-level "circle" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "circle",
		Short: "Inspect circles and classify points against them",
		Long: "circle builds a circle from one size (radius, diameter, area or\n" +
			"circumference), an optional center and an optional precision for pi,\n" +
			"then prints its properties or classifies points against it.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/circle)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&a.flags.verbose, "verbose", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newPiCmd(a))

	return root
}

// setup resolves the config directory, loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	log, err := newLogger(a.flags.verbose, cmd.ErrOrStderr())
	if err != nil {
		return systemErr("create logger: %w", err)
	}
	a.log = log

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemErr("resolve config dir: %w", err)
	}
	a.configDir = dir

	cfg, err := loadConfig(dir)
	if err != nil {
		return systemErr("load config: %w", err)
	}
	a.config = cfg

	a.log.Debug("config resolved",
		zap.String("dir", dir),
		zap.String("file", cfg.ConfigFileUsed()),
		zap.String("command", cmd.Name()))
	return nil
}

// jsonOutput reports whether results should be written as JSON. The --json
// flag wins over the config file, whose value must be a boolean.
func (a *app) jsonOutput(cmd *cobra.Command) (bool, error) {
	if cmd.Flags().Changed("json") {
		return a.flags.jsonMode, nil
	}
	b, ok := configValue(a.config, cfgKeyJSON).(bool)
	if !ok {
		return false, &circle.FieldError{Field: cfgKeyJSON, Reason: "must be a boolean", Err: circle.ErrTypeMismatch}
	}
	return b, nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:]))
}

// run executes root with args and maps the outcome to an exit code.
func run(root *cobra.Command, args []string) int {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(root.ErrOrStderr(), "Error:", err)

	var sysErr *sysError
	if errors.As(err, &sysErr) {
		return exitSysError
	}
	return exitUserError
}
