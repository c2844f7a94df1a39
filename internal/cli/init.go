package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/circles/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and a default config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(a.configDir, 0o755); err != nil {
				return systemErr("create config directory: %w", err)
			}
			written, err := writeConfigIfMissing(a.configDir)
			if err != nil {
				return systemErr("write config: %w", err)
			}

			path := paths.ConfigFile(a.configDir)
			a.log.Debug("init", zap.String("path", path), zap.Bool("written", written))
			if written {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
			}
			return nil
		},
	}
}
