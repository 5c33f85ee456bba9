// Package domain defines the core business entities for Stellium.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RenderRequest / ArtifactResult: one artifact pipeline run
//   - ChartOptions: canonical cosmetic options for a chart
//   - ChartRecord: a catalogued render
//   - AppSettings: application configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
