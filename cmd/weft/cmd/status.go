package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-weft/weft/cmd/weft/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show resolved project configuration",
		Long: `Show the current status of the Weft project.

Displays the project root, module path, and the configuration resolved
from weft.yaml (or its defaults when no weft.yaml is present).`,
		Usage: "weft status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	source := "defaults"
	if _, err := os.Stat(filepath.Join(root, "weft.yaml")); err == nil {
		source = "weft.yaml"
	}

	fmt.Printf("Project: %s\n", cfg.AppName)
	fmt.Println()
	fmt.Printf("  root:           %s\n", cfg.Root)
	fmt.Printf("  module:         %s\n", cfg.ModulePath)
	fmt.Printf("  engine version: %s\n", cfg.EngineVersion)
	fmt.Printf("  config source:  %s\n", source)

	return nil
}
