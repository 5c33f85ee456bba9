package services

import "encoding/base64"

// Data URI prefixes for inline artifact encoding.
const (
	svgDataURIPrefix = "data:image/svg+xml;base64,"
	pngDataURIPrefix = "data:image/png;base64,"
)

// SVGDataURI encodes chart markup as a base64 data URI suitable for
// embedding in HTML or tool responses.
func SVGDataURI(markup string) string {
	return svgDataURIPrefix + base64.StdEncoding.EncodeToString([]byte(markup))
}

// PNGDataURI encodes raster bytes as a base64 data URI.
func PNGDataURI(png []byte) string {
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(png)
}
