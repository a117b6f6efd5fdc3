package cli

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"

	imgInternal "github.com/AlexStarov/zpl-GoLang-lib/image"
	"github.com/AlexStarov/zpl-GoLang-lib/zpl"
)

func newPreviewCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "preview <file.zpl|->",
		Short: "Render the first ^GFA graphic field of a ZPL file as PNG",
		Long: `Render the first ^GFA graphic field of a ZPL file as a black and white PNG.

All four payload encodings are understood. B64/Z64 checksums are verified.

Examples:
  zplconv preview -o label.png label.zpl
  zplconv convert label.png | zplconv preview -o check.png -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()
			return runPreview(string(data), f)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runPreview(zplText string, w io.Writer) error {
	field, err := zpl.ParseGraphicField(zplText)
	if err != nil {
		return err
	}
	if field.BytesPerRow == 0 || field.Rows() == 0 {
		return fmt.Errorf("%w: graphic field is empty", zpl.ErrInvalidInput)
	}

	data, err := field.Bitmap()
	if err != nil {
		return err
	}
	raster := imgInternal.NewRaster(data, field.BytesPerRow)
	return png.Encode(w, raster.Image())
}
