package trie

import (
	"github.com/coregx/daachorse/internal/conv"
)

// Build inserts all patterns into a fresh trie, assigns each pattern an id
// equal to its position in the input, and runs the failure/output
// propagation pass.
//
// Build fails if the pattern set is empty, if any pattern is the empty
// string, or if a pattern occurs twice. Input order is preserved so that
// leftmost-first search can break ties by insertion order.
func Build(patterns []string) (*Trie, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	t := &Trie{
		Nodes:       []Node{{Fail: 0}}, // root; fails to itself
		PatternLens: make([]uint32, 0, len(patterns)),
	}

	for i, pat := range patterns {
		if err := t.insert(pat, conv.IntToUint32(i)); err != nil {
			return nil, &PatternError{Index: i, Pattern: pat, Err: err}
		}
		t.PatternLens = append(t.PatternLens, conv.IntToUint32(len(pat)))
	}

	t.propagate()
	return t, nil
}

// insert adds one pattern, creating nodes on demand, and marks the terminal
// node with the pattern's id.
func (t *Trie) insert(pattern string, value uint32) error {
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}

	cur := NodeID(0)
	for _, r := range pattern {
		next, ok := t.Nodes[cur].Children[r]
		if !ok {
			next = NodeID(conv.IntToUint32(len(t.Nodes)))
			if t.Nodes[cur].Children == nil {
				t.Nodes[cur].Children = make(map[rune]NodeID, 1)
			}
			t.Nodes[cur].Children[r] = next
			t.Nodes = append(t.Nodes, Node{
				Fail:  InvalidNode,
				Depth: t.Nodes[cur].Depth + 1,
			})
		}
		cur = next
	}

	if t.Nodes[cur].HasValue {
		return ErrDuplicatePattern
	}
	t.Nodes[cur].Value = value
	t.Nodes[cur].HasValue = true
	return nil
}

// propagate computes failure links and merged output chains in one
// breadth-first pass from the root.
//
// For a node v reached from parent p via codepoint c, fail(v) is found by
// walking p's failure chain until a node with a c-edge exists, defaulting to
// the root. Output chains are shared: a terminal node prepends its own
// pattern to the chain of its failure target; a non-terminal node simply
// reuses that chain. Chain heads therefore always carry the longest pattern
// ending at the node.
func (t *Trie) propagate() {
	t.BFSOrder = make([]NodeID, 0, len(t.Nodes)-1)

	// Depth-1 nodes fail to the root.
	queue := make([]NodeID, 0, len(t.Nodes)-1)
	for _, child := range t.Nodes[0].Children {
		t.Nodes[child].Fail = 0
		queue = append(queue, child)
	}
	// Map iteration order is random; BFS order must be deterministic for
	// reproducible double arrays. Sort each frontier by node id, which is
	// itself deterministic (insertion order).
	sortNodeIDs(queue)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		t.BFSOrder = append(t.BFSOrder, v)
		t.linkOutputs(v)

		frontier := len(queue)
		for r, child := range t.Nodes[v].Children {
			t.Nodes[child].Fail = t.failTarget(t.Nodes[v].Fail, r)
			queue = append(queue, child)
		}
		sortNodeIDs(queue[frontier:])
	}
}

// failTarget walks the failure chain starting at from, looking for a node
// with an r-edge. The root accepts every walk, so the result is total.
func (t *Trie) failTarget(from NodeID, r rune) NodeID {
	for {
		if next, ok := t.Nodes[from].Children[r]; ok {
			return next
		}
		if from == 0 {
			return 0
		}
		from = t.Nodes[from].Fail
	}
}

// linkOutputs sets v's output chain. The failure target is strictly
// shallower than v and was processed in an earlier BFS round, so its chain
// is already final.
func (t *Trie) linkOutputs(v NodeID) {
	inherited := t.Nodes[t.Nodes[v].Fail].OutputPos
	if !t.Nodes[v].HasValue {
		t.Nodes[v].OutputPos = inherited
		return
	}
	t.Outputs = append(t.Outputs, Output{
		Value:   t.Nodes[v].Value,
		ByteLen: t.PatternLens[t.Nodes[v].Value],
		Next:    inherited,
	})
	t.Nodes[v].OutputPos = conv.IntToUint32(len(t.Outputs))
}

// sortNodeIDs sorts a slice of node ids in place (insertion sort; frontiers
// are small and already mostly ordered).
func sortNodeIDs(ids []NodeID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
