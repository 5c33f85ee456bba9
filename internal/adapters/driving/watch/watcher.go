// Package watch provides a filesystem watcher that renders chart
// documents as they appear in a directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driving"
)

// ErrMissingRenderService indicates no render service was supplied.
var ErrMissingRenderService = errors.New("watch: render service is required")

// artifactPattern matches files the pipeline itself wrote. Skipping them
// keeps a watch on the output directory from looping.
var artifactPattern = regexp.MustCompile(`_\d{8}_\d{6}\.svg$`)

// Config controls watcher behaviour.
type Config struct {
	// OutputDir overrides the configured output directory when set.
	OutputDir string

	// Settle is how long a file must be quiet before it is rendered.
	// Editors fire several events per save; waiting out the burst
	// renders each file once. Zero selects 500ms.
	Settle time.Duration
}

// Watcher renders every chart document created or modified in a
// directory. Renders run one at a time in the event loop.
type Watcher struct {
	render driving.RenderService
	cfg    Config
	log    *zap.Logger
}

// NewWatcher creates a watcher that feeds documents to render.
func NewWatcher(render driving.RenderService, cfg Config, log *zap.Logger) (*Watcher, error) {
	if render == nil {
		return nil, ErrMissingRenderService
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Settle <= 0 {
		cfg.Settle = 500 * time.Millisecond
	}

	return &Watcher{render: render, cfg: cfg, log: log}, nil
}

// Run watches dir until ctx is cancelled. Every SVG file created or
// modified under dir is rendered once its events settle. Hidden files
// and the pipeline's own artifacts are skipped.
func (w *Watcher) Run(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watching %s: not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck // Shutdown path

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	w.log.Info("watching directory", zap.String("dir", dir))

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !isChartFile(event.Name) {
				continue
			}
			pending[event.Name] = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-ticker.C:
			now := time.Now()
			for path, seen := range pending {
				if now.Sub(seen) < w.cfg.Settle {
					continue
				}
				delete(pending, path)
				w.renderFile(ctx, path)
			}
		}
	}
}

// renderFile runs the pipeline for a single settled file. Failures are
// logged and the watch continues.
func (w *Watcher) renderFile(ctx context.Context, path string) {
	markup, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		w.log.Error("reading chart document", zap.String("path", path), zap.Error(err))
		return
	}

	req := domain.ChartRenderRequest{
		Markup:    string(markup),
		Name:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		OutputDir: w.cfg.OutputDir,
		EmitSVG:   true,
		EmitPNG:   true,
	}

	result, err := w.render.RenderChart(ctx, req)
	if err != nil {
		w.log.Error("rendering chart", zap.String("path", path), zap.Error(err))
		return
	}

	w.log.Info("rendered chart",
		zap.String("source", path),
		zap.String("svg", result.Artifact.SVGPath),
		zap.String("png", result.Artifact.PNGPath),
	)
	for _, warning := range result.Warnings {
		w.log.Warn(warning)
	}
}

// isChartFile reports whether path is a chart document the watcher
// should render.
func isChartFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if !strings.EqualFold(filepath.Ext(base), ".svg") {
		return false
	}
	return !artifactPattern.MatchString(base)
}
