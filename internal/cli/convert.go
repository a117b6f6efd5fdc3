package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexStarov/zpl-GoLang-lib/convert"
	logInternal "github.com/AlexStarov/zpl-GoLang-lib/log"
	"github.com/AlexStarov/zpl-GoLang-lib/zpl"
)

type convertOptions struct {
	output           string
	encoding         string
	threshold        int
	graphicFieldOnly bool
	noMonochrome     bool
	base64Input      bool
}

func newConvertCmd(ro *rootOptions) *cobra.Command {
	co := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <file|->",
		Short: "Convert an image into a ZPL graphic field",
		Long: `Convert an image into a ZPL label holding one ^GFA graphic field.

The input format is taken from the file extension. With "-" the input is read
from stdin and the format is detected from its leading bytes.

Examples:
  zplconv convert label.png
  zplconv convert --encoding z64 -o label.zpl label.png
  base64 label.png | zplconv convert --base64 -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ro.cfg.Options
			if err := co.apply(cmd, &opts); err != nil {
				return err
			}

			label, err := runConvert(args[0], cmd.InOrStdin(), &opts, co.base64Input)
			if err != nil {
				return err
			}

			// the output file is only created once the conversion succeeded
			if co.output != "" {
				if err := os.WriteFile(co.output, []byte(label), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", co.output, err)
				}
				return nil
			}
			_, err = io.WriteString(cmd.OutOrStdout(), label)
			return err
		},
	}

	cmd.Flags().StringVarP(&co.output, "output", "o", "", "write ZPL to this file instead of stdout")
	cmd.Flags().StringVarP(&co.encoding, "encoding", "e", "",
		"hex, hex-compressed, base64 or base64-compressed (b64/z64 accepted)")
	cmd.Flags().IntVarP(&co.threshold, "threshold", "t", zpl.DefaultOptions().Threshold,
		"pixels with (R+G+B)/3 below this are black")
	cmd.Flags().BoolVar(&co.graphicFieldOnly, "graphic-field-only", false, "emit the bare ^GFA command without ^XA/^FS")
	cmd.Flags().BoolVar(&co.noMonochrome, "no-monochrome", false,
		"threshold the raw pixels instead of snapping them to black or white first")
	cmd.Flags().BoolVar(&co.base64Input, "base64", false, "the input holds the image as Base64 text")
	return cmd
}

// apply overrides the configured options with the flags given on the command line.
func (co *convertOptions) apply(cmd *cobra.Command, opts *zpl.Options) error {
	flags := cmd.Flags()
	if flags.Changed("encoding") {
		if err := opts.EncodingKind.UnmarshalText([]byte(co.encoding)); err != nil {
			return err
		}
	}
	if flags.Changed("threshold") {
		opts.Threshold = co.threshold
	}
	if flags.Changed("graphic-field-only") {
		opts.GraphicFieldOnly = co.graphicFieldOnly
	}
	if flags.Changed("no-monochrome") {
		opts.MonochromePrepass = !co.noMonochrome
	}
	return opts.Validate()
}

func runConvert(input string, stdin io.Reader, opts *zpl.Options, base64Input bool) (string, error) {
	var (
		out string
		err error
	)
	switch {
	case input == "-":
		data, rerr := io.ReadAll(stdin)
		if rerr != nil {
			return "", fmt.Errorf("failed to read stdin: %w", rerr)
		}
		if base64Input {
			out, err = convert.ConvertBase64(string(data), opts)
		} else {
			out, err = convert.ConvertBytes(data, opts)
		}
	case base64Input:
		data, rerr := os.ReadFile(input)
		if rerr != nil {
			return "", fmt.Errorf("failed to read file %s: %w", input, rerr)
		}
		out, err = convert.ConvertBase64(string(data), opts)
	default:
		out, err = convert.ConvertFile(input, opts)
	}
	if err != nil {
		return "", err
	}

	logInternal.GetLogger().
		WithField("input", input).
		WithField("encoding", opts.EncodingKind.String()).
		WithField("bytes", len(out)).
		Info("converted")
	return out, nil
}
