package tree

import (
	"fmt"

	"github.com/temirov/ftree/internal/utils"
)

// Summary aggregates counts over a built tree. The root node itself is not
// counted, matching the rendered output.
type Summary struct {
	Files       int
	Directories int
	TotalBytes  int64
}

// Summarize walks the built tree and returns aggregate entry counts and the
// total size of all files.
func Summarize(rootNode *Node) Summary {
	var summary Summary
	if rootNode == nil {
		return summary
	}
	accumulateSummary(&summary, rootNode)
	return summary
}

func accumulateSummary(summary *Summary, node *Node) {
	for _, child := range node.Children {
		if child.IsDir() {
			summary.Directories++
			accumulateSummary(summary, child)
		} else {
			summary.Files++
			summary.TotalBytes += child.SizeBytes
		}
	}
}

// FormatSummaryLine formats a Summary into the trailing summary line.
func FormatSummaryLine(summary Summary) string {
	fileLabel := "files"
	if summary.Files == 1 {
		fileLabel = "file"
	}
	directoryLabel := "directories"
	if summary.Directories == 1 {
		directoryLabel = "directory"
	}
	return fmt.Sprintf("Summary: %d %s, %d %s, %s",
		summary.Files, fileLabel,
		summary.Directories, directoryLabel,
		utils.FormatFileSize(summary.TotalBytes),
	)
}
