package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/wam/internal/config"
)

func configCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and save wam configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after applying, in order of precedence:
flags, ` + config.EnvBackendURL + ` / ` + config.EnvLegacyBackendURL + ` / ` + config.EnvTimeout + ` (including .env),
.wam/config.json, and built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Backend: %s\n", e.cfg.BackendURL)
			fmt.Fprintf(out, "Timeout: %s\n", formatTimeout(e.cfg.Timeout))
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to .wam/config.json",
		Long: `Write the effective configuration to .wam/config.json in the current
directory, so later commands pick it up without flags.

Examples:
  wam config init --backend-url http://allocations.internal:5000/api
  wam config init --timeout 10s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := e.getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			if err := config.SaveConfig(cwd, e.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", filepath.Join(cwd, ".wam", "config.json"))
			return nil
		},
	}

	cmd.AddCommand(showCmd)
	cmd.AddCommand(initCmd)

	return cmd
}
