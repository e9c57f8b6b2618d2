// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import "strings"

// FontForFamily maps a PostScript-style family name like "Helvetica-Bold"
// or "Times-Italic" onto a core canvas font family and style string.
// Unknown families fall back to Helvetica.
func FontForFamily(name string) (family, style string) {
	base, suffix := name, ""
	if i := strings.IndexByte(name, '-'); i >= 0 {
		base, suffix = name[:i], name[i+1:]
	}

	switch strings.ToLower(base) {
	case "times", "timesnewroman", "times new roman":
		family = "Times"
	case "courier":
		family = "Courier"
	case "symbol":
		return "Symbol", ""
	case "zapfdingbats":
		return "ZapfDingbats", ""
	default:
		family = "Helvetica"
	}

	switch strings.ToLower(suffix) {
	case "bold":
		style = "B"
	case "italic", "oblique":
		style = "I"
	case "bolditalic", "boldoblique":
		style = "BI"
	case "roman", "":
		style = ""
	}
	return family, style
}
