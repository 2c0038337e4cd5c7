package doublearray

import (
	"sort"

	"github.com/coregx/daachorse/internal/conv"
	"github.com/coregx/daachorse/trie"
)

// noSlot terminates the vacant-slot free list.
const noSlot = ^uint32(0)

// Build compacts a propagated trie into a double-array automaton.
//
// Each trie node's child row is placed at the first base offset whose slots
// are all vacant (first-fit XCHECK). Rows with disjoint label sets may share
// overlapping regions of the array, which is where the compaction comes
// from. Placement walks a doubly linked list of vacant slots, so the search
// never rescans occupied regions.
//
// Nodes are processed in BFS order, matching the order failure links were
// computed in; placement is therefore deterministic for a given pattern set.
//
// Build fails with ErrTooManyStates if any slot index would exceed
// MaxStateID.
func Build(t *trie.Trie) (*Automaton, error) {
	b := &builder{
		t: t,
		a: &Automaton{
			base:  []uint32{0},
			check: []StateID{RootState}, // slot 0 is the root, occupied
		},
		slotOf: make([]StateID, t.NodeCount()),
		next:   []uint32{noSlot},
		prev:   []uint32{noSlot},
		head:   noSlot,
		tail:   noSlot,
	}
	b.assignCodes()

	if err := b.place(trie.NodeID(0)); err != nil {
		return nil, err
	}
	for _, v := range t.BFSOrder {
		if err := b.place(v); err != nil {
			return nil, err
		}
	}

	b.finish()
	return b.a, nil
}

type builder struct {
	t *trie.Trie
	a *Automaton

	// slotOf maps a trie node id to its double-array slot. A node's slot
	// is assigned when its parent's row is placed; the root is slot 0.
	slotOf []StateID

	// Doubly linked free list over vacant slots, threaded through next
	// and prev (indexed by slot).
	next []uint32
	prev []uint32
	head uint32
	tail uint32
}

// edge is one child transition of the row being placed.
type edge struct {
	code uint32
	node trie.NodeID
}

// assignCodes builds the dense codepoint mapping. Codes are assigned in
// ascending rune order starting at 1; 0 is reserved for "not in alphabet".
func (b *builder) assignCodes() {
	seen := make(map[rune]struct{})
	for i := range b.t.Nodes {
		for r := range b.t.Nodes[i].Children {
			seen[r] = struct{}{}
		}
	}
	runes := make([]rune, 0, len(seen))
	for r := range seen {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	code := uint32(1)
	for _, r := range runes {
		if uint32(r) < 128 {
			b.a.asciiCode[r] = code
		} else {
			if b.a.codeMap == nil {
				b.a.codeMap = make(map[rune]uint32)
			}
			b.a.codeMap[r] = code
		}
		code++
	}
}

// place assigns a base to node v's child row and claims the row's slots.
// v's own slot is already known: the root is pre-assigned, and every other
// node was placed when its parent's row was.
func (b *builder) place(v trie.NodeID) error {
	children := b.t.Nodes[v].Children
	if len(children) == 0 {
		// Leaf rows have no base. Any transition computed from a leaf
		// fails the check test because no slot names it as parent.
		return nil
	}

	edges := make([]edge, 0, len(children))
	for r, c := range children {
		edges = append(edges, edge{code: b.a.code(r), node: c})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].code < edges[j].code })

	base, err := b.findBase(edges)
	if err != nil {
		return err
	}

	s := b.slotOf[v]
	b.a.base[s] = base
	for _, e := range edges {
		slot := base + e.code
		b.occupy(slot)
		b.a.check[slot] = s
		b.slotOf[e.node] = StateID(slot)
	}
	return nil
}

// findBase walks the vacant list for the first base offset where every edge
// of the row lands on a vacant slot.
func (b *builder) findBase(edges []edge) (uint32, error) {
	first := edges[0].code
	f := b.head
	for {
		if f == noSlot {
			var err error
			f, err = b.growChunk()
			if err != nil {
				return 0, err
			}
		}
		if f >= first {
			base := f - first
			ok, err := b.fits(base, edges)
			if err != nil {
				return 0, err
			}
			if ok {
				return base, nil
			}
		}
		f = b.next[f]
	}
}

// fits reports whether every edge slot for the candidate base is vacant,
// growing the arrays when a slot lies past the current end.
func (b *builder) fits(base uint32, edges []edge) (bool, error) {
	for _, e := range edges {
		slot := uint64(base) + uint64(e.code)
		if slot > uint64(MaxStateID) {
			return false, &LimitError{Slot: slot}
		}
		b.growTo(uint32(slot) + 1)
		if b.a.check[slot] != vacant {
			return false, nil
		}
	}
	return true, nil
}

// growTo extends the arrays to length n, appending vacant slots to the free
// list. Callers have already bounded n by MaxStateID+1.
func (b *builder) growTo(n uint32) {
	for uint32(len(b.a.check)) < n {
		slot := conv.IntToUint32(len(b.a.check))
		b.a.base = append(b.a.base, 0)
		b.a.check = append(b.a.check, vacant)
		b.next = append(b.next, noSlot)
		b.prev = append(b.prev, b.tail)
		if b.tail == noSlot {
			b.head = slot
		} else {
			b.next[b.tail] = slot
		}
		b.tail = slot
	}
}

// growChunk extends the arrays when the free list is exhausted and returns
// the first newly vacant slot.
func (b *builder) growChunk() (uint32, error) {
	oldLen := len(b.a.check)
	newLen := oldLen + oldLen/2
	if newLen < oldLen+64 {
		newLen = oldLen + 64
	}
	if uint64(newLen) > uint64(MaxStateID)+1 {
		newLen = int(uint64(MaxStateID)) + 1
	}
	if newLen <= oldLen {
		return 0, &LimitError{Slot: uint64(oldLen)}
	}
	b.growTo(conv.IntToUint32(newLen))
	return conv.IntToUint32(oldLen), nil
}

// occupy removes a slot from the vacant list. The caller sets check.
func (b *builder) occupy(slot uint32) {
	if b.prev[slot] == noSlot {
		b.head = b.next[slot]
	} else {
		b.next[b.prev[slot]] = b.next[slot]
	}
	if b.next[slot] == noSlot {
		b.tail = b.prev[slot]
	} else {
		b.prev[b.next[slot]] = b.prev[slot]
	}
	b.next[slot] = noSlot
	b.prev[slot] = noSlot
}

// finish copies failure links and output chains over to slot indexing and
// freezes the automaton.
func (b *builder) finish() {
	n := len(b.a.check)
	b.a.fail = make([]StateID, n)
	b.a.outputPos = make([]uint32, n)
	b.a.direct = make([]bool, n)

	b.a.outputs = make([]Output, len(b.t.Outputs))
	for i, o := range b.t.Outputs {
		b.a.outputs[i] = Output{Value: o.Value, ByteLen: o.ByteLen, next: o.Next}
	}

	for v := range b.t.Nodes {
		s := b.slotOf[v]
		b.a.fail[s] = b.slotOf[b.t.Nodes[v].Fail]
		b.a.outputPos[s] = b.t.Nodes[v].OutputPos
		b.a.direct[s] = b.t.Nodes[v].HasValue
	}

	b.a.stateCount = b.t.NodeCount()
	b.a.patternCount = b.t.PatternCount()
}
