package tree

import (
	"fmt"
	"io"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	directorySuffix = "/"

	// RootSentinel is the line representing the starting directory itself,
	// printed before the rendered entries.
	RootSentinel = "./"
)

// Render returns one line per entry of the built tree, in pre-order. The root
// node's own name is never emitted; rendering starts at its children. Each
// ancestor level contributes four spaces when that ancestor was its parent's
// last child and a continuation column otherwise; the entry's own connector is
// the last-child corner for the final sibling and a branch tee for the rest.
// Directory names carry a trailing slash. Rendering the same tree twice
// yields identical lines.
func Render(rootNode *Node) []string {
	if rootNode == nil {
		return nil
	}
	var lines []string
	appendNodeLines(&lines, rootNode, "")
	return lines
}

func appendNodeLines(lines *[]string, node *Node, prefix string) {
	lastChildIndex := len(node.Children) - 1
	for childIndex, child := range node.Children {
		connector := treeBranchConnector
		childPrefix := prefix + treeBranchPadding
		if childIndex == lastChildIndex {
			connector = treeLastConnector
			childPrefix = prefix + treeLastPadding
		}

		displayName := child.Name
		if child.IsDir() {
			displayName += directorySuffix
		}
		*lines = append(*lines, prefix+connector+displayName)

		if child.IsDir() {
			appendNodeLines(lines, child, childPrefix)
		}
	}
}

// WriteTree writes the rendered tree to the provided writer, one line per
// entry. The only failure mode is a writer error.
func WriteTree(writer io.Writer, rootNode *Node) error {
	for _, line := range Render(rootNode) {
		if _, writeError := fmt.Fprintln(writer, line); writeError != nil {
			return writeError
		}
	}
	return nil
}
