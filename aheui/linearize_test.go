package aheui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A single cell with no consonant, in a 1x1 field, steps back onto itself
// forever. The tracer must detect the repeated state and close the loop
// with a self-jump instead of recursing without bound.
func TestTraceTerminatesOnPureLoop(t *testing.T) {
	f := &Field{W: 1, H: 1, Cells: []Syllable{{}}}
	l := NewLinearizer(f)
	blocks := l.Linearize()

	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "B0:")
	assert.Contains(t, blocks[0], "goto B0;")
}

// Re-entering the same spatial state with the same guaranteed depth must
// reuse the existing block rather than retracing it.
func TestTraceMemoizesIdenticalKeys(t *testing.T) {
	f := &Field{W: 1, H: 1, Cells: []Syllable{{}}}
	l := NewLinearizer(f)
	first := l.Trace(State{R: 0, C: 0, Dir: Down, Speed: 1, Storage: 0}, 0)
	second := l.Trace(State{R: 0, C: 0, Dir: Down, Speed: 1, Storage: 0}, 0)
	assert.Equal(t, first, second)
}

// Dividing with nothing proven present forces an underflow check: the
// reverse arm halts directly, the proven-size arm performs the division
// inline and halts with the quotient.
func TestTraceDivideUnderflowSplitsIntoThreeBlocks(t *testing.T) {
	f := &Field{
		W: 2, H: 1,
		Cells: []Syllable{
			{Consonant: ConsonantDivide, Vowel: VowelRight},
			{Consonant: ConsonantHalt, Vowel: VowelRight},
		},
	}
	l := NewLinearizer(f)
	blocks := l.Linearize()

	require.Len(t, blocks, 3)
	assert.Contains(t, blocks[0], "if (size[0] >= 2)")
	assert.Contains(t, blocks[0], "goto B2;")
	assert.Contains(t, blocks[0], "goto B1;")
	assert.Contains(t, blocks[1], "halt_value_stack(0)")
	assert.Contains(t, blocks[2], "storage[0].stack.memory[size[0]-1-0]")
	assert.Contains(t, blocks[2], "storage[0].stack.memory[size[0]-1-1]")
	assert.Contains(t, blocks[2], "/")
}

// With two values proven present on entry, a binary op's operands are the
// hoisted C temporaries, popped top of stack (v0) first.
func TestEnsureProvenOpsStayInline(t *testing.T) {
	b := newBlockBuilder(0, 0, 2)
	assert.True(t, b.ensure(0, 2))
	a := b.pop(0)
	bb := b.pop(0)
	assert.Equal(t, "v0", a)
	assert.Equal(t, "v1", bb)
}

// Queue hoisting pops destructively and in front-to-back order, so the
// queue's true front is the deque's consuming end.
func TestQueueHoistOrdersFrontFirst(t *testing.T) {
	b := newBlockBuilder(0, QueueIndex, 2)
	assert.True(t, b.ensure(QueueIndex, 2))
	first := b.pop(QueueIndex)
	assert.Equal(t, "v0", first)
}

func TestDuplicatePushesBothCopiesToActiveEnd(t *testing.T) {
	b := newBlockBuilder(0, 0, 1)
	b.ensure(0, 1)
	a := b.pop(0)
	b.pushActive(0, a)
	b.pushActive(0, a)
	require.Len(t, b.items[0], 2)
	assert.Equal(t, a, b.items[0][0])
	assert.Equal(t, a, b.items[0][1])
}

func TestExchangeSwapsActiveEndOrderForQueue(t *testing.T) {
	b := newBlockBuilder(0, QueueIndex, 2)
	b.ensure(QueueIndex, 2)
	a := b.pop(QueueIndex)
	bb := b.pop(QueueIndex)
	b.pushActive(QueueIndex, a)
	b.pushActive(QueueIndex, bb)
	require.Len(t, b.items[QueueIndex], 2)
	assert.Equal(t, bb, b.items[QueueIndex][0])
	assert.Equal(t, a, b.items[QueueIndex][1])
}
