package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/amanKp27/toDoList/internal/infra/crypto"
	"github.com/amanKp27/toDoList/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage todo configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(d))
	cmd.AddCommand(newConfigInitCommand(d))
	cmd.AddCommand(newConfigKeygenCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}

			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			printConfigSource(w, out.GlobalConfig)
			if out.OverrideConfig.Path != "" {
				printConfigSource(w, out.OverrideConfig)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}

	return cmd
}

func printConfigSource(w io.Writer, info domain.ConfigInfo) {
	switch {
	case info.Path == "":
		_, _ = fmt.Fprintln(w, "- (no global config directory)")
	case info.Exists:
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
	default:
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
	}
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the global config file",
		Long: `Create the global config file with the default template.

The file is written to $XDG_CONFIG_HOME/todo/config.toml
(or ~/.config/todo/config.toml). An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}

			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Config: domain.NewDefaultConfig(),
			})
			if errors.Is(err, domain.ErrConfigExists) {
				return fmt.Errorf("%w: %s", err, c.ConfigManager.GlobalConfigInfo().Path)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config: %s\n", out.Path)
			return nil
		},
	}

	return cmd
}

// newConfigKeygenCommand creates the config keygen subcommand.
func newConfigKeygenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a storage encryption key",
		Long: `Print a fresh random key for [storage] encryption_key.

Only the key goes to stdout, so it can be captured by scripts:
  KEY=$(todo config keygen)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := crypto.GenerateKey()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), key)
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Set it as encryption_key under [storage] in your config. Losing it loses the list.")
			return nil
		},
	}

	return cmd
}
