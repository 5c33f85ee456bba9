// Package rsvg rasterises SVG markup by shelling out to rsvg-convert
// (librsvg). The binary is probed once at construction; a missing
// binary yields a converter that reports itself unavailable rather
// than a construction error.
package rsvg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.RasterConverter = (*Converter)(nil)

// binaryName is the librsvg command-line converter.
const binaryName = "rsvg-convert"

// Converter invokes rsvg-convert with markup on stdin and reads PNG
// bytes from stdout.
type Converter struct {
	binary string
	log    *zap.Logger
}

// NewConverter probes PATH for rsvg-convert.
func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	binary, err := exec.LookPath(binaryName)
	if err != nil {
		log.Debug("rsvg-convert not found, raster output disabled")
		binary = ""
	}
	return &Converter{binary: binary, log: log}
}

// Available reports whether rsvg-convert was found on PATH.
func (c *Converter) Available() bool {
	return c.binary != ""
}

// Convert rasterises the SVG document to PNG. The scale factor widens
// the output bitmap; rsvg-convert derives the height from the
// document's aspect ratio.
func (c *Converter) Convert(ctx context.Context, svg []byte, opts domain.RasterOptions) ([]byte, error) {
	if !c.Available() {
		return nil, domain.ErrRasterUnavailable
	}

	args := []string{"--format", "png"}
	if width := scaledWidth(opts); width > 0 {
		args = append(args, "--width", strconv.Itoa(width))
	}
	if opts.Background != "" {
		args = append(args, "--background-color", opts.Background)
	}

	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		c.log.Warn("rsvg-convert failed",
			zap.String("stderr", strings.TrimSpace(stderr.String())),
			zap.Error(err))
		return nil, fmt.Errorf("rsvg-convert: %v: %w", err, domain.ErrRasterFailed)
	}

	return out.Bytes(), nil
}

// scaledWidth folds the scale factor into the pixel width, since
// rsvg-convert does not combine --zoom with --width.
func scaledWidth(opts domain.RasterOptions) int {
	if opts.Width <= 0 {
		return 0
	}
	if opts.Scale > 0 {
		return int(float64(opts.Width) * opts.Scale)
	}
	return opts.Width
}
