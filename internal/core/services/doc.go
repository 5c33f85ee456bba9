// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The resolver and pipeline services are pure Go; filesystem
// access is limited to the artifact writes the pipeline owns.
package services
