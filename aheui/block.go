package aheui

import (
	"fmt"
	"strings"
)

// blockBuilder accumulates one straight-line basic block: the C statements
// needed to hoist entry values, perform block-local arithmetic as C
// temporaries, and materialize net results back to runtime storage.
//
// items[i] models, for each storage touched during this block, the order in
// which a live runtime storage of that kind would present its remaining
// values: index 0 is the end a queue consumes from (its front) or, for a
// stack, the deepest value touched this block; the last index is the end
// both kinds produce into, and the end a stack consumes from (its top).
type blockBuilder struct {
	label        int
	entryStorage int
	entryPresize int
	stmts        []string
	temps        int
	items        map[int][]string
	touched      []int
	visited      map[State]bool
}

func newBlockBuilder(label, entryStorage, entryPresize int) *blockBuilder {
	return &blockBuilder{
		label:        label,
		entryStorage: entryStorage,
		entryPresize: entryPresize,
		items:        map[int][]string{},
		visited:      map[State]bool{},
	}
}

func (b *blockBuilder) newTemp() string {
	t := fmt.Sprintf("v%d", b.temps)
	b.temps++
	return t
}

func (b *blockBuilder) stmt(format string, args ...interface{}) {
	b.stmts = append(b.stmts, fmt.Sprintf(format, args...))
}

// init lazily hoists a storage's provable entry values the first time the
// block touches it. Only the block's entry storage ever has anything to
// hoist; every other storage starts this block provably empty.
func (b *blockBuilder) init(storage int) {
	if _, ok := b.items[storage]; ok {
		return
	}
	if storage != b.entryStorage || b.entryPresize == 0 {
		b.items[storage] = []string{}
		b.touched = append(b.touched, storage)
		return
	}
	n := b.entryPresize
	vals := make([]string, n)
	if KindOf(storage) == Queue {
		for k := 0; k < n; k++ {
			t := b.newTemp()
			b.stmt("integer %s = pop_queue(&storage[%d].queue);", t, storage)
			vals[k] = t
		}
	} else {
		// k=0 is the current top; place it last so pop (back, for a stack) yields
		// it first, matching "hoist top-first into the back of the deque".
		for k := 0; k < n; k++ {
			t := b.newTemp()
			b.stmt("integer %s = storage[%d].stack.memory[size[%d]-1-%d];", t, storage, storage, k)
			vals[n-1-k] = t
		}
	}
	b.items[storage] = vals
	b.touched = append(b.touched, storage)
}

// ensure reports whether storage already has at least need values proven
// present in this block's local view, initializing its deque if needed.
func (b *blockBuilder) ensure(storage, need int) bool {
	b.init(storage)
	return len(b.items[storage]) >= need
}

// pop removes and returns the value at storage's active end: front for a
// queue, back for a stack or stream.
func (b *blockBuilder) pop(storage int) string {
	b.init(storage)
	items := b.items[storage]
	var v string
	if KindOf(storage) == Queue {
		v, items = items[0], items[1:]
	} else {
		v, items = items[len(items)-1], items[:len(items)-1]
	}
	b.items[storage] = items
	return v
}

// pushBack appends a freshly produced value; production always targets the
// back of the deque regardless of storage kind.
func (b *blockBuilder) pushBack(storage int, expr string) {
	b.init(storage)
	b.items[storage] = append(b.items[storage], expr)
}

// pushActive restores a value (Duplicate/Exchange) to the end a consumer
// would see next: front for a queue, back for a stack or stream.
func (b *blockBuilder) pushActive(storage int, expr string) {
	b.init(storage)
	if KindOf(storage) == Queue {
		b.items[storage] = append([]string{expr}, b.items[storage]...)
	} else {
		b.items[storage] = append(b.items[storage], expr)
	}
}

// produce evaluates expr into a fresh temporary and pushes it to the back
// of storage's deque.
func (b *blockBuilder) produce(storage int, expr string) {
	t := b.newTemp()
	b.stmt("integer %s = %s;", t, expr)
	b.pushBack(storage, t)
}

// materialize writes every touched storage's remaining deque contents back
// to runtime storage, front to back, and restores size[] to match.
func (b *blockBuilder) materialize() {
	for _, idx := range b.touched {
		items := b.items[idx]
		if idx == b.entryStorage && b.entryPresize > 0 && KindOf(idx) != Queue {
			b.stmt("size[%d] -= %d;", idx, b.entryPresize)
		}
		for _, it := range items {
			if KindOf(idx) == Queue {
				b.stmt("push_queue(&storage[%d].queue, %s, size[%d] + 1);", idx, it, idx)
			} else {
				b.stmt("push_stack(&storage[%d].stack, size[%d]++, %s);", idx, idx, it)
			}
		}
	}
}

// render wraps the block's accumulated statements and a terminator line
// under the block's label. A block with no statements emits only the
// label and terminator, per spec.md §4.4; otherwise the statements are
// wrapped in a scope so temporaries do not collide across blocks.
func (b *blockBuilder) render(terminator string) string {
	var out strings.Builder
	fmt.Fprintf(&out, "B%d:\n", b.label)
	if len(b.stmts) == 0 {
		fmt.Fprintf(&out, "  %s\n", terminator)
		return out.String()
	}
	out.WriteString("  {\n")
	for _, s := range b.stmts {
		fmt.Fprintf(&out, "    %s\n", s)
	}
	fmt.Fprintf(&out, "    %s\n", terminator)
	out.WriteString("  }\n")
	return out.String()
}

// renderHalt renders the block's Halt terminator. No materialize call is
// needed for any value this block produced (the process exits immediately
// after, so no other block will ever observe this block's storage state
// again), but an entry-storage stack/stream hoist never decrements size[]
// (init's hoist is a pure read), so an empty-deque fallback to
// halt_value_stack still needs size[] rewound first, the same way
// materialize would, or it reads back an already-consumed value.
func (b *blockBuilder) renderHalt(storage int) string {
	b.init(storage)
	items := b.items[storage]
	var val string
	switch {
	case len(items) > 0 && KindOf(storage) == Queue:
		val = items[0]
	case len(items) > 0:
		val = items[len(items)-1]
	case KindOf(storage) == Queue:
		val = "halt_value_queue()"
	default:
		if storage == b.entryStorage && b.entryPresize > 0 {
			b.stmt("size[%d] -= %d;", storage, b.entryPresize)
		}
		val = fmt.Sprintf("halt_value_stack(%d)", storage)
	}
	b.stmt("flush(&output);")
	return b.render(fmt.Sprintf("return %s;", val))
}
