package cli

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AlexStarov/zpl-GoLang-lib/internal/config"
)

func newConfigCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after the config file, ZPLCONV_* environment
variables and defaults have been applied. The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(ro.cfg, cmd.OutOrStdout())
		},
	}
}

func runConfig(cfg *config.Config, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]*config.Config{"zplconv": cfg}); err != nil {
		return err
	}
	return enc.Close()
}
