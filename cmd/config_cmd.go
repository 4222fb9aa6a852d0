package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/hecto/internal/config"
)

func newConfigCmd(e *env) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the hecto config file",
	}
	configCmd.AddCommand(newConfigInitCmd(e))
	return configCmd
}

func newConfigInitCmd(e *env) *cobra.Command {
	var force, fromCurrent bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Long: fmt.Sprintf(`Write a commented config file with every default value.

With --from-current the effective configuration (defaults, the loaded config
file and --debug) is written instead, without comments.

The default path is %s in the current directory.`, config.LocalConfigPath),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.LocalConfigPath
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			write := config.WriteDefaultConfig
			if fromCurrent {
				write = func(p string) error { return config.Save(p, e.cfg) }
			}
			if err := write(path); err != nil {
				return err
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", abs)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&fromCurrent, "from-current", false, "write the effective configuration instead of the template")
	return cmd
}
