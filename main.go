// =============================================================================
// Artifact Engine - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Artifact Engine CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   artifact-engine generate    - Fabricate a batch of synthetic documents
//   artifact-engine validate    - Validate the configuration without generating
//   artifact-engine version     - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains the fabrication core (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/artifex-labs/artifact-engine/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
