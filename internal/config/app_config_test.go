package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/ftree/internal/config"
)

// writeConfigurationFile writes a configuration file, failing the test on error.
func writeConfigurationFile(testingHandle *testing.T, directoryPath string, content string) {
	testingHandle.Helper()
	writeError := os.WriteFile(filepath.Join(directoryPath, config.ConfigFileName), []byte(content), 0o644)
	if writeError != nil {
		testingHandle.Fatalf("writing configuration file: %v", writeError)
	}
}

// TestLoadApplicationConfigurationLocalOverridesGlobal verifies merge precedence.
func TestLoadApplicationConfigurationLocalOverridesGlobal(testingHandle *testing.T) {
	homeDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)
	writeConfigurationFile(testingHandle, homeDirectory, "git: true\nexclude:\n  - vendor/\n")

	workingDirectory := testingHandle.TempDir()
	writeConfigurationFile(testingHandle, workingDirectory, "git: false\nexclude:\n  - '*.log'\n")

	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if loaded.Git == nil || *loaded.Git {
		testingHandle.Fatalf("expected local git=false to override global, got %+v", loaded.Git)
	}
	if len(loaded.Exclude) != 2 || loaded.Exclude[0] != "vendor/" || loaded.Exclude[1] != "*.log" {
		testingHandle.Fatalf("expected merged exclude patterns, got %v", loaded.Exclude)
	}
}

// TestLoadApplicationConfigurationMissingFiles verifies missing files are not errors.
func TestLoadApplicationConfigurationMissingFiles(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())
	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: testingHandle.TempDir()})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if loaded.Git != nil || loaded.Summary != nil || loaded.Clipboard != nil || len(loaded.Exclude) != 0 {
		testingHandle.Fatalf("expected empty configuration, got %+v", loaded)
	}
}

// TestLoadApplicationConfigurationExplicitPath verifies the explicit file path is honored.
func TestLoadApplicationConfigurationExplicitPath(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())
	workingDirectory := testingHandle.TempDir()
	explicitPath := filepath.Join(workingDirectory, "custom.yaml")
	writeError := os.WriteFile(explicitPath, []byte("summary: true\n"), 0o644)
	if writeError != nil {
		testingHandle.Fatalf("writing configuration file: %v", writeError)
	}

	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: explicitPath,
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if loaded.Summary == nil || !*loaded.Summary {
		testingHandle.Fatalf("expected summary=true from explicit file, got %+v", loaded.Summary)
	}
}

// TestMerge verifies unset override fields keep receiver values.
func TestMerge(testingHandle *testing.T) {
	enabled := true
	disabled := false
	base := config.ApplicationConfiguration{Git: &enabled, Exclude: []string{"vendor/"}}
	override := config.ApplicationConfiguration{Summary: &disabled}

	merged := base.Merge(override)
	if merged.Git == nil || !*merged.Git {
		testingHandle.Fatalf("expected git retained from base, got %+v", merged.Git)
	}
	if merged.Summary == nil || *merged.Summary {
		testingHandle.Fatalf("expected summary from override, got %+v", merged.Summary)
	}
	if len(merged.Exclude) != 1 || merged.Exclude[0] != "vendor/" {
		testingHandle.Fatalf("expected exclude retained from base, got %v", merged.Exclude)
	}
}
