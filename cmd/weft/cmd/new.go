package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-weft/weft/cmd/weft/internal/config"
	"github.com/go-weft/weft/cmd/weft/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "new",
		Short: "Create a new Weft project",
		Long: `Create a new Weft project in a new directory.

This command creates:
  - A new directory at the specified path
  - go.mod with the specified module path
  - weft.yaml with project configuration
  - main.go with a starter application

The project name is derived from the directory basename.
The module path defaults to the project name if not specified.

Examples:
  weft new myapp
  weft new myapp github.com/username/myapp
  weft new ./projects/myapp`,
		Usage: "weft new <directory> [module-path]",
		Run:   runNew,
	})
}

// newTemplateData contains the data for template substitution.
type newTemplateData struct {
	ModulePath string
	AppName    string
}

// runNew creates a new Weft project. The first argument is the directory
// path to create; the project name is derived from its basename. An optional
// second argument overrides the Go module path, which otherwise defaults to
// the project name.
func runNew(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("directory is required\n\nUsage: weft new <directory> [module-path]")
	}

	raw := args[0]
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by weft; use an absolute path or $HOME instead")
	}

	dir := filepath.Clean(raw)
	if err := validateDirectory(dir); err != nil {
		return err
	}

	projectName := filepath.Base(dir)
	if err := validateProjectName(projectName); err != nil {
		return fmt.Errorf("invalid project name %q (derived from directory basename): %w", projectName, err)
	}

	modulePath := projectName
	if len(args) > 1 {
		modulePath = args[1]
		if err := config.ValidateModulePath(modulePath); err != nil {
			return err
		}
	}

	if err := scaffoldProject(dir, modulePath, projectName); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Project created successfully!\n\n")
	fmt.Printf("Next steps:\n")
	fmt.Printf("  cd %s\n", dir)
	fmt.Printf("  go mod tidy\n")
	fmt.Printf("  go run .\n")

	return nil
}

// scaffoldProject creates the project directory and writes the template
// files. It has no side effects beyond the filesystem, making it safe to
// call from tests without network access.
func scaffoldProject(dir, modulePath, appName string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	fmt.Printf("Creating new Weft project: %s\n", appName)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data := newTemplateData{
		ModulePath: modulePath,
		AppName:    appName,
	}

	files := []struct {
		templatePath string
		destName     string
	}{
		{"new/go.mod.tmpl", "go.mod"},
		{"new/weft.yaml.tmpl", "weft.yaml"},
		{"new/main.go.tmpl", "main.go"},
	}

	for _, f := range files {
		out, err := templates.Render(f.templatePath, data)
		if err != nil {
			safeRemoveAll(dir)
			return fmt.Errorf("failed to render template %s: %w", f.templatePath, err)
		}
		destPath := filepath.Join(dir, f.destName)
		if err := os.WriteFile(destPath, []byte(out), 0o644); err != nil {
			safeRemoveAll(dir)
			return fmt.Errorf("failed to write %s: %w", f.destName, err)
		}
		fmt.Printf("  Created %s\n", f.destName)
	}

	return nil
}

// validateDirectory rejects directory paths that would be dangerous to
// create or clean up: filesystem roots, the current/parent directory, and
// root-level absolute paths (e.g. /etc).
func validateDirectory(dir string) error {
	switch dir {
	case "", "/", ".", "..":
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if isVolumeRoot(dir) {
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if filepath.IsAbs(dir) && isVolumeRoot(filepath.Dir(dir)) {
		return fmt.Errorf("refusing to create project at root-level path %q", dir)
	}
	return nil
}

// isVolumeRoot reports whether dir is a filesystem root. On Unix this is
// "/", on Windows this covers drive roots like "C:\" and the bare root "\".
func isVolumeRoot(dir string) bool {
	return dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

// safeRemoveAll removes a directory only if the path passes
// validateDirectory. It silently no-ops for dangerous paths rather than
// returning an error, since it runs on cleanup paths where the original
// error should not be masked.
func safeRemoveAll(dir string) {
	if validateDirectory(dir) != nil {
		return
	}
	os.RemoveAll(dir)
}

var validProjectName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// validateProjectName checks that a project name (derived from the directory
// basename) starts with a letter and contains only letters, digits,
// underscores, and hyphens.
func validateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("project name cannot start with a dot")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("project name cannot start with a hyphen")
	}
	if !validProjectName.MatchString(name) {
		return fmt.Errorf("project name must start with a letter and contain only letters, numbers, underscores, and hyphens")
	}
	return nil
}
