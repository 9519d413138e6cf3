package tree

import (
	"path"
	"strings"
)

const pathSegmentSeparator = "/"

// Git metadata entry names suppressed by GitMetadataRule.
const (
	GitDirectoryName      = ".git"
	GitIgnoreFileName     = ".gitignore"
	GitAttributesFileName = ".gitattributes"
	GitModulesFileName    = ".gitmodules"
	GitKeepFileName       = ".gitkeep"
)

var gitMetadataNames = map[string]struct{}{
	GitDirectoryName:      {},
	GitIgnoreFileName:     {},
	GitAttributesFileName: {},
	GitModulesFileName:    {},
	GitKeepFileName:       {},
}

// Rule reports whether the entry at relativePath should be excluded from the
// built tree. relativePath is slash-separated and relative to the build root.
// An excluded directory is never descended into, so the rule is never asked
// about its descendants.
type Rule func(relativePath string, isDirectory bool) bool

// GitMetadataRule excludes git metadata entries at any depth: the .git
// directory plus .gitignore, .gitattributes, .gitmodules, and .gitkeep files.
func GitMetadataRule() Rule {
	return func(relativePath string, isDirectory bool) bool {
		_, isGitMetadata := gitMetadataNames[path.Base(relativePath)]
		return isGitMetadata
	}
}

// PatternRule excludes entries matching any of the provided slash-separated
// patterns. A pattern ending with a trailing slash matches the named directory
// and prevents recursion into it. A single-segment pattern matches any entry
// whose base name satisfies path.Match semantics. A multi-segment pattern
// matches an exact relative path, segment by segment.
func PatternRule(patterns []string) Rule {
	return func(relativePath string, isDirectory bool) bool {
		normalizedPath := strings.ReplaceAll(relativePath, "\\", pathSegmentSeparator)
		pathSegments := strings.Split(normalizedPath, pathSegmentSeparator)
		lastSegment := pathSegments[len(pathSegments)-1]

		for _, patternValue := range patterns {
			normalizedPattern := strings.ReplaceAll(patternValue, "\\", pathSegmentSeparator)

			isDirectoryPattern := strings.HasSuffix(normalizedPattern, pathSegmentSeparator)
			trimmedPattern := strings.TrimSuffix(normalizedPattern, pathSegmentSeparator)
			if trimmedPattern == "" {
				continue
			}
			patternSegments := strings.Split(trimmedPattern, pathSegmentSeparator)

			if isDirectoryPattern {
				if isDirectory && len(pathSegments) == len(patternSegments) && segmentsMatch(pathSegments, patternSegments) {
					return true
				}
				continue
			}

			if len(patternSegments) == 1 {
				isMatched, matchError := path.Match(patternSegments[0], lastSegment)
				if matchError == nil && isMatched {
					return true
				}
				continue
			}

			if len(pathSegments) == len(patternSegments) && segmentsMatch(pathSegments, patternSegments) {
				return true
			}
		}
		return false
	}
}

// CombineRules composes rules into one that excludes an entry when any of the
// provided rules does. Passing no rules yields a rule that excludes nothing.
func CombineRules(rules ...Rule) Rule {
	return func(relativePath string, isDirectory bool) bool {
		for _, currentRule := range rules {
			if currentRule != nil && currentRule(relativePath, isDirectory) {
				return true
			}
		}
		return false
	}
}

// segmentsMatch reports whether each pattern segment matches the corresponding
// path segment using path.Match semantics.
func segmentsMatch(pathSegments, patternSegments []string) bool {
	for segmentIndex, patternSegment := range patternSegments {
		isMatched, matchError := path.Match(patternSegment, pathSegments[segmentIndex])
		if matchError != nil || !isMatched {
			return false
		}
	}
	return true
}
