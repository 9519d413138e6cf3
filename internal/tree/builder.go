package tree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

const (
	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"

	// errorInvalidRootFormat is used when the root path cannot be inspected.
	errorInvalidRootFormat = "invalid root path %s: %w"

	// errorRootNotDirectoryFormat is used when the root path is not a directory.
	errorRootNotDirectoryFormat = "root path %s is not a directory"

	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"

	// warningSkipSubdirectoryMessage is logged when an unreadable subdirectory is skipped.
	warningSkipSubdirectoryMessage = "skipping unreadable subdirectory"

	// warningStatEntryMessage is logged when entry metadata cannot be retrieved.
	warningStatEntryMessage = "unable to stat entry"
)

// Builder builds directory tree nodes using configured options.
type Builder struct {
	Exclude Rule
	Logger  *zap.Logger
}

// Build walks the directory at rootPath and returns the materialized tree.
// The returned root node corresponds to rootPath itself; its name is not part
// of the rendered output. Children at every level are sorted byte-wise
// ascending by name, directories and files interleaved. Symlinks are never
// followed and appear as leaf nodes. An unreadable subdirectory is skipped
// with a logged warning and kept as an empty directory node; an unreadable or
// missing root fails the whole build.
func (builder *Builder) Build(rootPath string) (*Node, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}

	rootInfo, rootStatError := os.Stat(absoluteRootPath)
	if rootStatError != nil {
		return nil, fmt.Errorf(errorInvalidRootFormat, rootPath, rootStatError)
	}
	if !rootInfo.IsDir() {
		return nil, fmt.Errorf(errorRootNotDirectoryFormat, rootPath)
	}

	loggerInstance := builder.Logger
	if loggerInstance == nil {
		loggerInstance = zap.NewNop()
	}

	rootNode := &Node{
		Name: filepath.Base(absoluteRootPath),
		Kind: KindDirectory,
	}
	children, buildError := builder.buildChildren(loggerInstance, absoluteRootPath, "")
	if buildError != nil {
		return nil, buildError
	}
	rootNode.Children = children
	return rootNode, nil
}

// buildChildren reads one directory level and recurses into subdirectories.
func (builder *Builder) buildChildren(loggerInstance *zap.Logger, currentDirectoryPath string, relativeDirectoryPath string) ([]*Node, error) {
	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, currentDirectoryPath, readDirectoryError)
	}
	sort.Slice(directoryEntries, func(leftIndex, rightIndex int) bool {
		return directoryEntries[leftIndex].Name() < directoryEntries[rightIndex].Name()
	})

	var nodes []*Node
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		relativeEntryPath := entryName
		if relativeDirectoryPath != "" {
			relativeEntryPath = relativeDirectoryPath + pathSegmentSeparator + entryName
		}

		isSymlink := directoryEntry.Type()&fs.ModeSymlink != 0
		isDirectory := directoryEntry.IsDir() && !isSymlink

		if builder.Exclude != nil && builder.Exclude(relativeEntryPath, isDirectory) {
			continue
		}

		node := &Node{Name: entryName}
		if isDirectory {
			node.Kind = KindDirectory
			childPath := filepath.Join(currentDirectoryPath, entryName)
			childNodes, buildError := builder.buildChildren(loggerInstance, childPath, relativeEntryPath)
			if buildError != nil {
				loggerInstance.Warn(warningSkipSubdirectoryMessage,
					zap.String("path", childPath),
					zap.Error(buildError),
				)
			} else {
				node.Children = childNodes
			}
		} else {
			node.Kind = KindFile
			entryInfo, infoError := directoryEntry.Info()
			if infoError != nil {
				loggerInstance.Warn(warningStatEntryMessage,
					zap.String("path", filepath.Join(currentDirectoryPath, entryName)),
					zap.Error(infoError),
				)
			} else {
				node.SizeBytes = entryInfo.Size()
			}
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
