// Package mcp provides an MCP (Model Context Protocol) server adapter for Stellium.
// It enables AI assistants like Claude to render, resolve and browse charts.
package mcp

import "errors"

var (
	// ErrMissingRenderService is returned when the render service is not provided.
	ErrMissingRenderService = errors.New("mcp: render service is required")

	// ErrMissingResolver is returned when the markup resolver is not provided.
	ErrMissingResolver = errors.New("mcp: markup resolver is required")
)
