// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RasterConverter: SVG to PNG conversion. Without it, renders still
//     succeed but only vector output is written.
//   - ChartStore: Chart catalog persistence. Without it, renders are not
//     recorded and history is empty.
//   - PaletteProvider: Theme palettes. Without it, themes do not recolour
//     documents.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
