// Package tree builds directory trees and renders them with branch glyphs.
package tree

const (
	// KindDirectory marks a node that was descended into during the walk.
	KindDirectory = "directory"
	// KindFile marks a leaf node. Symlinks and other non-regular entries are
	// leaves as well, regardless of what they point at.
	KindFile = "file"
)

// Node represents one file-system entry of a built tree. Children are sorted
// byte-wise ascending by name and are owned exclusively by their parent; the
// tree is never mutated after Build returns it.
type Node struct {
	Name      string
	Kind      string
	SizeBytes int64
	Children  []*Node
}

// IsDir reports whether the node represents a directory.
func (node *Node) IsDir() bool {
	return node.Kind == KindDirectory
}
