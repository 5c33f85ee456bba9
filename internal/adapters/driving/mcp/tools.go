package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/services"
)

// defaultListLimit caps list_charts output when no limit is given.
const defaultListLimit = 20

// RenderChartInput is the input schema for the render_chart tool.
type RenderChartInput struct {
	Markup         string   `json:"markup" jsonschema:"the SVG chart document to persist"`
	Name           string   `json:"name" jsonschema:"logical chart name, sanitised for the filesystem"`
	OutputDir      string   `json:"output_dir,omitempty" jsonschema:"target directory (defaults to the configured chart directory)"`
	Formats        []string `json:"formats,omitempty" jsonschema:"artifact formats to write: svg and/or png (default both)"`
	Theme          string   `json:"theme,omitempty" jsonschema:"chart theme: classic, light, dark, strawberry or dark-high-contrast"`
	Language       string   `json:"language,omitempty" jsonschema:"chart language code: EN, IT, FR, ES, PT, CN, RU, TR, DE or HI"`
	HouseSystem    string   `json:"house_system,omitempty" jsonschema:"house system identifier letter"`
	ZodiacType     string   `json:"zodiac_type,omitempty" jsonschema:"zodiac type: Tropic or Sidereal"`
	SiderealMode   string   `json:"sidereal_mode,omitempty" jsonschema:"ayanamsha for sidereal charts"`
	Perspective    string   `json:"perspective,omitempty" jsonschema:"observational perspective"`
	ChartStyle     string   `json:"chart_style,omitempty" jsonschema:"chart style: full, wheel_only or aspect_grid"`
	IncludeDataURI bool     `json:"include_data_uri,omitempty" jsonschema:"embed the written artifacts as base64 data URIs"`
}

// RenderChartOutput is the output schema for the render_chart tool.
type RenderChartOutput struct {
	Status     string   `json:"status"`
	OutputDir  string   `json:"output_dir"`
	SVGPath    string   `json:"svg_path,omitempty"`
	PNGPath    string   `json:"png_path,omitempty"`
	Summary    string   `json:"summary"`
	ChartID    string   `json:"chart_id,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
	SVGDataURI string   `json:"svg_data_uri,omitempty"`
	PNGDataURI string   `json:"png_data_uri,omitempty"`
}

// ResolveMarkupInput is the input schema for the resolve_markup tool.
type ResolveMarkupInput struct {
	Markup string `json:"markup" jsonschema:"the SVG document whose CSS custom properties should be inlined"`
}

// ResolveMarkupOutput is the output schema for the resolve_markup tool.
type ResolveMarkupOutput struct {
	Markup     string `json:"markup"`
	Properties int    `json:"properties"`
}

// ListChartsInput is the input schema for the list_charts tool.
type ListChartsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

// ListChartsOutput is the output schema for the list_charts tool.
type ListChartsOutput struct {
	Charts []ChartRecordOutput `json:"charts"`
	Count  int                 `json:"count"`
}

// ChartRecordOutput represents a single catalogued chart.
type ChartRecordOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Theme     string `json:"theme"`
	Language  string `json:"language"`
	Style     string `json:"style"`
	OutputDir string `json:"output_dir"`
	SVGPath   string `json:"svg_path,omitempty"`
	PNGPath   string `json:"png_path,omitempty"`
	CreatedAt string `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_chart",
		Description: "Render an SVG chart document to disk, optionally converting to PNG",
	}, s.handleRenderChart)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_markup",
		Description: "Inline CSS custom properties (var(--name) references) in an SVG document",
	}, s.handleResolveMarkup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_charts",
		Description: "List recently rendered charts from the catalog",
	}, s.handleListCharts)
}

// handleRenderChart handles the render_chart tool invocation.
func (s *Server) handleRenderChart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenderChartInput,
) (*mcp.CallToolResult, RenderChartOutput, error) {
	emitSVG, emitPNG, formatWarnings := parseFormats(input.Formats)

	req := domain.ChartRenderRequest{
		Markup:    input.Markup,
		Name:      input.Name,
		OutputDir: input.OutputDir,
		EmitSVG:   emitSVG,
		EmitPNG:   emitPNG,
		Options: domain.RawChartOptions{
			Theme:        input.Theme,
			Language:     input.Language,
			HouseSystem:  input.HouseSystem,
			ZodiacType:   input.ZodiacType,
			SiderealMode: input.SiderealMode,
			Perspective:  input.Perspective,
			ChartStyle:   input.ChartStyle,
		},
	}

	result, err := s.ports.Render.RenderChart(ctx, req)
	if err != nil {
		return nil, RenderChartOutput{}, err
	}

	output := RenderChartOutput{
		Status:    result.Artifact.Status,
		OutputDir: result.Artifact.OutputDir,
		SVGPath:   result.Artifact.SVGPath,
		PNGPath:   result.Artifact.PNGPath,
		Summary:   result.Artifact.Summary,
		ChartID:   result.ChartID,
		Warnings:  append(formatWarnings, result.Warnings...),
	}

	if input.IncludeDataURI {
		attachDataURIs(&output)
	}

	return nil, output, nil
}

// handleResolveMarkup handles the resolve_markup tool invocation.
func (s *Server) handleResolveMarkup(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ResolveMarkupInput,
) (*mcp.CallToolResult, ResolveMarkupOutput, error) {
	output := ResolveMarkupOutput{
		Markup:     s.ports.Resolver.Resolve(input.Markup),
		Properties: len(s.ports.Resolver.Properties(input.Markup)),
	}
	return nil, output, nil
}

// handleListCharts handles the list_charts tool invocation.
func (s *Server) handleListCharts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListChartsInput,
) (*mcp.CallToolResult, ListChartsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	output := ListChartsOutput{Charts: []ChartRecordOutput{}}

	if s.ports.Catalog == nil {
		return nil, output, nil
	}

	records, err := s.ports.Catalog.Recent(ctx, limit)
	if err != nil {
		// A disabled catalog degrades to an empty history
		if errors.Is(err, domain.ErrCatalogDisabled) {
			return nil, output, nil
		}
		return nil, ListChartsOutput{}, err
	}

	output.Charts = make([]ChartRecordOutput, len(records))
	output.Count = len(records)
	for i := range records {
		output.Charts[i] = chartRecordOutput(&records[i])
	}

	return nil, output, nil
}

// parseFormats maps the formats list to emit flags. Unknown entries are
// reported as warnings; an empty or fully unknown list selects both formats.
func parseFormats(formats []string) (emitSVG, emitPNG bool, warnings []string) {
	if len(formats) == 0 {
		return true, true, nil
	}

	for _, f := range formats {
		switch f {
		case "svg":
			emitSVG = true
		case "png":
			emitPNG = true
		default:
			warnings = append(warnings, fmt.Sprintf("unknown format %q ignored", f))
		}
	}

	if !emitSVG && !emitPNG {
		return true, true, warnings
	}
	return emitSVG, emitPNG, warnings
}

// attachDataURIs embeds the written artifacts as base64 data URIs.
// Read failures degrade to a warning; the paths remain authoritative.
func attachDataURIs(output *RenderChartOutput) {
	if output.SVGPath != "" {
		data, err := os.ReadFile(output.SVGPath)
		if err != nil {
			output.Warnings = append(output.Warnings, fmt.Sprintf("could not embed SVG: %v", err))
		} else {
			output.SVGDataURI = services.SVGDataURI(string(data))
		}
	}

	if output.PNGPath != "" {
		data, err := os.ReadFile(output.PNGPath)
		if err != nil {
			output.Warnings = append(output.Warnings, fmt.Sprintf("could not embed PNG: %v", err))
		} else {
			output.PNGDataURI = services.PNGDataURI(data)
		}
	}
}

// chartRecordOutput maps a catalog record to the tool output shape.
func chartRecordOutput(record *domain.ChartRecord) ChartRecordOutput {
	return ChartRecordOutput{
		ID:        record.ID,
		Name:      record.Name,
		Theme:     record.Theme.String(),
		Language:  string(record.Language),
		Style:     string(record.Style),
		OutputDir: record.OutputDir,
		SVGPath:   record.SVGPath,
		PNGPath:   record.PNGPath,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	}
}
