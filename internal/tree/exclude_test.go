package tree_test

import (
	"testing"

	"github.com/temirov/ftree/internal/tree"
)

// TestGitMetadataRule verifies the enumerated git metadata set at any depth.
func TestGitMetadataRule(testingHandle *testing.T) {
	gitRule := tree.GitMetadataRule()
	excludedCases := []struct {
		relativePath string
		isDirectory  bool
	}{
		{tree.GitDirectoryName, true},
		{tree.GitIgnoreFileName, false},
		{tree.GitAttributesFileName, false},
		{tree.GitModulesFileName, false},
		{tree.GitKeepFileName, false},
		{"sub/" + tree.GitIgnoreFileName, false},
		{"a/b/" + tree.GitDirectoryName, true},
	}
	for _, excludedCase := range excludedCases {
		if !gitRule(excludedCase.relativePath, excludedCase.isDirectory) {
			testingHandle.Fatalf("expected %s to be excluded", excludedCase.relativePath)
		}
	}
	keptPaths := []string{"main.go", ".github", "gitignore", "src/git.txt"}
	for _, keptPath := range keptPaths {
		if gitRule(keptPath, false) {
			testingHandle.Fatalf("expected %s to be kept", keptPath)
		}
	}
}

// TestPatternRuleDirectoryPattern verifies trailing-slash patterns match only directories.
func TestPatternRuleDirectoryPattern(testingHandle *testing.T) {
	patternRule := tree.PatternRule([]string{"vendor/"})
	if !patternRule("vendor", true) {
		testingHandle.Fatalf("expected vendor directory to match")
	}
	if patternRule("vendor", false) {
		testingHandle.Fatalf("expected vendor file to be kept")
	}
	if patternRule("other", true) {
		testingHandle.Fatalf("expected other directory to be kept")
	}
}

// TestPatternRuleWildcard verifies single-segment patterns match entry base names.
func TestPatternRuleWildcard(testingHandle *testing.T) {
	patternRule := tree.PatternRule([]string{"*.log"})
	if !patternRule("build.log", false) {
		testingHandle.Fatalf("expected root-level log file to match")
	}
	if !patternRule("sub/dir/trace.log", false) {
		testingHandle.Fatalf("expected nested log file to match")
	}
	if patternRule("log.txt", false) {
		testingHandle.Fatalf("expected non-matching file to be kept")
	}
}

// TestPatternRuleNestedPath verifies multi-segment patterns match exact relative paths.
func TestPatternRuleNestedPath(testingHandle *testing.T) {
	patternRule := tree.PatternRule([]string{"sub/.clasp.json", "sub/node_modules/"})
	if !patternRule("sub/.clasp.json", false) {
		testingHandle.Fatalf("expected nested file pattern to match")
	}
	if patternRule("other/.clasp.json", false) {
		testingHandle.Fatalf("expected pattern to be anchored to its directory")
	}
	if !patternRule("sub/node_modules", true) {
		testingHandle.Fatalf("expected nested directory pattern to match")
	}
}

// TestCombineRules verifies OR-composition and the exclude-nothing default.
func TestCombineRules(testingHandle *testing.T) {
	combinedRule := tree.CombineRules(
		tree.GitMetadataRule(),
		tree.PatternRule([]string{"*.tmp"}),
	)
	if !combinedRule(tree.GitDirectoryName, true) {
		testingHandle.Fatalf("expected git directory to be excluded by combined rule")
	}
	if !combinedRule("scratch.tmp", false) {
		testingHandle.Fatalf("expected pattern match to be excluded by combined rule")
	}
	if combinedRule("main.go", false) {
		testingHandle.Fatalf("expected unmatched entry to be kept")
	}

	emptyRule := tree.CombineRules()
	if emptyRule("anything", true) {
		testingHandle.Fatalf("expected empty combination to exclude nothing")
	}
}
