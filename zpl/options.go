package zpl

import (
	"fmt"
	"strings"
)

// EncodingKind selects how the packed bitmap is written into the ^GF field.
type EncodingKind int

const (
	// Hexadecimal writes the raw hex rows, newlines included.
	Hexadecimal EncodingKind = iota
	// HexadecimalCompressed writes the hex rows with the ZPL run-length alphabet.
	HexadecimalCompressed
	// Base64 writes a :B64: field.
	Base64
	// Base64Compressed writes a :Z64: field, zlib compressed before encoding.
	Base64Compressed
)

var encodingNames = [...]string{"hex", "hex-compressed", "base64", "base64-compressed"}

var encodingAliases = map[string]EncodingKind{
	"hex":                    Hexadecimal,
	"hexadecimal":            Hexadecimal,
	"hex-compressed":         HexadecimalCompressed,
	"hexadecimal-compressed": HexadecimalCompressed,
	"base64":                 Base64,
	"b64":                    Base64,
	"base64-compressed":      Base64Compressed,
	"z64":                    Base64Compressed,
}

func (k EncodingKind) Valid() bool {
	return k >= Hexadecimal && k <= Base64Compressed
}

func (k EncodingKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("EncodingKind(%d)", int(k))
	}
	return encodingNames[k]
}

func (k EncodingKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedEncodingKind, int(k))
	}
	return []byte(encodingNames[k]), nil
}

// UnmarshalText accepts the names returned by String, the upper case
// underscore forms (HEXADECIMAL_COMPRESSED) and the field tags b64 / z64.
func (k *EncodingKind) UnmarshalText(text []byte) error {
	v, ok := encodingAliases[normalizeName(string(text))]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedEncodingKind, text)
	}
	*k = v
	return nil
}

// DitheringKind is carried in Options for compatibility. Only None is
// implemented; the converter always applies a plain threshold.
type DitheringKind int

const (
	None DitheringKind = iota
	FloydSteinberg
	Atkinson
)

var ditheringNames = [...]string{"none", "floyd-steinberg", "atkinson"}

func (d DitheringKind) Valid() bool {
	return d >= None && d <= Atkinson
}

func (d DitheringKind) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DitheringKind(%d)", int(d))
	}
	return ditheringNames[d]
}

func (d DitheringKind) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: dithering kind %d", ErrInvalidInput, int(d))
	}
	return []byte(ditheringNames[d]), nil
}

func (d *DitheringKind) UnmarshalText(text []byte) error {
	name := normalizeName(string(text))
	for i, n := range ditheringNames {
		if n == name {
			*d = DitheringKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: dithering kind %q", ErrInvalidInput, text)
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}

// Options configures a single conversion. Label metadata and DPI fields are
// carried for callers and are not read by the encoder.
type Options struct {
	EncodingKind EncodingKind `mapstructure:"encoding" yaml:"encoding"`
	// GraphicFieldOnly returns the bare ^GFA command without ^XA / ^FS.
	GraphicFieldOnly bool          `mapstructure:"graphic_field_only" yaml:"graphic_field_only"`
	SetLabelLength   bool          `mapstructure:"set_label_length" yaml:"set_label_length"`
	Threshold        int           `mapstructure:"threshold" yaml:"threshold"`
	Dithering        DitheringKind `mapstructure:"dithering" yaml:"dithering"`
	PrintQuantity    int           `mapstructure:"print_quantity" yaml:"print_quantity"`
	LabelTop         int8          `mapstructure:"label_top" yaml:"label_top"`
	LabelShift       int16         `mapstructure:"label_shift" yaml:"label_shift"`
	OriginalDPI      int64         `mapstructure:"original_dpi" yaml:"original_dpi"`
	TargetDPI        int64         `mapstructure:"target_dpi" yaml:"target_dpi"`
	// MonochromePrepass snaps every pixel to the nearest of black or white
	// before thresholding. On by default; only EncodeImage applies it.
	MonochromePrepass bool `mapstructure:"monochrome_prepass" yaml:"monochrome_prepass"`
}

func DefaultOptions() Options {
	return Options{
		EncodingKind: HexadecimalCompressed,
		Threshold:    128,
		Dithering:    None,
		OriginalDPI:  300,
		TargetDPI:    300,

		MonochromePrepass: true,
	}
}

func (o *Options) Validate() error {
	if !o.EncodingKind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedEncodingKind, int(o.EncodingKind))
	}
	if o.Threshold < 0 || o.Threshold > 255 {
		return fmt.Errorf("%w: threshold %d outside 0..255", ErrInvalidInput, o.Threshold)
	}
	if !o.Dithering.Valid() {
		return fmt.Errorf("%w: dithering kind %d", ErrInvalidInput, int(o.Dithering))
	}
	return nil
}
