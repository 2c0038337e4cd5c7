// Package trie builds the pattern trie that seeds double-array compaction.
//
// The trie is a construction-time-only structure: patterns are inserted
// codepoint by codepoint, then a breadth-first pass computes failure links
// (longest proper suffix that is also a trie path) and propagates pattern
// outputs along failure chains. The doublearray package consumes the result
// and the trie is discarded.
package trie

// NodeID identifies a trie node. The root is always node 0.
type NodeID uint32

// InvalidNode is a sentinel for "no node" (e.g. an unset failure link
// during construction).
const InvalidNode NodeID = ^NodeID(0)

// Node is a single trie node.
//
// Children are keyed by codepoint. Fail is the failure link computed by the
// breadth-first pass; it is root for depth-1 nodes and for nodes whose
// suffixes leave the trie. OutputPos chains into Trie.Outputs.
type Node struct {
	// Children maps an edge codepoint to the child node.
	Children map[rune]NodeID

	// Fail is the failure-link target, valid after the BFS pass.
	Fail NodeID

	// Depth is the number of codepoints on the path from the root.
	Depth uint32

	// Value is the pattern id ending exactly at this node.
	// Meaningful only when HasValue is true.
	Value uint32

	// HasValue marks the node as the terminal of exactly one pattern.
	HasValue bool

	// OutputPos is a 1-based index into Trie.Outputs pointing at the head
	// of this node's merged output chain. Zero means no outputs.
	OutputPos uint32
}

// Output is one entry of a node's merged output chain.
//
// Chains are ordered by decreasing pattern length: the head is the longest
// pattern ending at the node (the node's own terminal, when it has one),
// followed by patterns inherited through the failure chain. Next is a
// 1-based index into Trie.Outputs; zero terminates the chain.
type Output struct {
	Value   uint32
	ByteLen uint32
	Next    uint32
}

// Trie is the fully propagated pattern trie.
//
// Nodes[0] is the root. BFSOrder lists every non-root node in breadth-first
// order, which the double-array compactor relies on: a node's failure target
// is always placed before the node itself.
type Trie struct {
	Nodes    []Node
	Outputs  []Output
	BFSOrder []NodeID

	// PatternLens[id] is the byte length of pattern id, used by match
	// iterators to derive start offsets from end offsets.
	PatternLens []uint32
}

// PatternCount returns the number of patterns inserted into the trie.
func (t *Trie) PatternCount() int {
	return len(t.PatternLens)
}

// NodeCount returns the number of nodes, including the root.
func (t *Trie) NodeCount() int {
	return len(t.Nodes)
}

// Child returns the direct child of n on codepoint r, if any.
func (t *Trie) Child(n NodeID, r rune) (NodeID, bool) {
	c, ok := t.Nodes[n].Children[r]
	return c, ok
}
