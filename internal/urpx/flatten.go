package urpx

import (
	"fmt"
	"strings"
)

// maxDepth bounds the recursive walk. The source format is tree-shaped
// by construction, so hitting the bound means the decoded structure is
// pathological.
const maxDepth = 512

// MalformedTreeError reports a tree nested beyond the supported depth.
type MalformedTreeError struct {
	Depth int
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("program tree exceeds maximum depth %d", e.Depth)
}

// Flatten walks the tree depth-first, node before children, children
// in document order, and returns one line per node: the node's
// resolved label indented two spaces per level.
func Flatten(root *Node) ([]string, error) {
	var lines []string
	if err := walk(root, 0, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func walk(n *Node, depth int, lines *[]string) error {
	if depth > maxDepth {
		return &MalformedTreeError{Depth: maxDepth}
	}
	*lines = append(*lines, strings.Repeat("  ", depth)+Resolve(n))
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if err := walk(child, depth+1, lines); err != nil {
			return err
		}
	}
	return nil
}
