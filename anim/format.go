// Package anim renders solved refraction paths: animated GIFs with a
// moving light marker, static PNG stills, interactive HTML charts, and
// travel-time sweep plots.
package anim

import "fmt"

// Format selects the artifact a render command produces.
type Format int8

const (
	GIF Format = iota
	PNG
	HTML
	CSV
	JSON
)

// ParseFormat maps a user-facing format name to a Format.
func ParseFormat(text string) (Format, error) {
	switch text {
	case "gif":
		return GIF, nil
	case "png":
		return PNG, nil
	case "html":
		return HTML, nil
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	switch f {
	case GIF:
		return "gif"
	case PNG:
		return "png"
	case HTML:
		return "html"
	case CSV:
		return "csv"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int8(f))
}

// Ext returns the conventional file extension, dot included.
func (f Format) Ext() string {
	return "." + f.String()
}
