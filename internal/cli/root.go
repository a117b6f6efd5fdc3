// Package cli implements the zplconv commands using the cobra framework.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/AlexStarov/zpl-GoLang-lib/internal/config"
	logInternal "github.com/AlexStarov/zpl-GoLang-lib/log"
)

const version = "0.2.0"

// rootOptions carries the persistent flags and the config they resolve to.
type rootOptions struct {
	configFile string
	logLevel   string

	cfg *config.Config
}

// NewRootCmd builds the zplconv command tree.
func NewRootCmd() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "zplconv",
		Short: "zplconv - convert images to ZPL ^GF graphic fields",
		Long: `zplconv converts PNG, JPEG, GIF, BMP and TIFF images into a ZPL label holding
a single ^GFA graphic field, ready to be sent to a Zebra printer.

Encodings:
  hex                raw hexadecimal rows
  hex-compressed     ZPL run-length compressed hexadecimal (default)
  base64             :B64: frame with CRC
  base64-compressed  :Z64: frame, zlib compressed, with CRC`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ro.load()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logInternal.Close()
		},
	}

	cmd.PersistentFlags().StringVarP(&ro.configFile, "config", "c", "",
		"config file path (YAML, root key 'zplconv')")
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "",
		"override log level (debug/info/warn/error)")

	cmd.AddCommand(newConvertCmd(ro))
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newConfigCmd(ro))
	return cmd
}

// Execute runs the command tree against os.Args. It is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

func (ro *rootOptions) load() error {
	cfg, err := config.Load(ro.configFile)
	if err != nil {
		return err
	}
	if ro.logLevel != "" {
		cfg.Log.Level = ro.logLevel
		if err := cfg.ValidateAndApplyDefaults(); err != nil {
			return err
		}
	}
	if err := logInternal.Init(cfg.Log); err != nil {
		return err
	}
	ro.cfg = cfg
	return nil
}
