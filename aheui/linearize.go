package aheui

import "fmt"

// Linearizer turns a Field's reachable control flow into a flat sequence of
// labeled, goto-linked basic blocks, memoized on (State, presize) so a
// state re-entered with the same guaranteed depth reuses its block instead
// of retracing it.
type Linearizer struct {
	field  *Field
	memo   map[traceKey]int
	blocks []string
}

// NewLinearizer prepares a Linearizer over field. Call Linearize to produce
// the block text.
func NewLinearizer(field *Field) *Linearizer {
	return &Linearizer{field: field, memo: map[traceKey]int{}}
}

// Linearize traces the program from its entry state (origin, facing down,
// speed 1, storage 0, nothing guaranteed present) and returns the ordered
// block texts, block 0 first.
func (l *Linearizer) Linearize() []string {
	l.Trace(State{R: 0, C: 0, Dir: Down, Speed: 1, Storage: 0}, 0)
	return l.blocks
}

// Trace returns the label of the block entered at state with presize values
// already guaranteed present on state.Storage, tracing and recording a new
// block only on first visit to this (state, presize) pair.
func (l *Linearizer) Trace(state State, presize int) int {
	key := traceKey{state, presize}
	if label, ok := l.memo[key]; ok {
		return label
	}
	label := len(l.blocks)
	l.blocks = append(l.blocks, "")
	l.memo[key] = label

	b := newBlockBuilder(label, state.Storage, presize)
	cur := state
	for {
		cell := l.field.At(cur.R, cur.C)
		cur.Dir, cur.Speed = ApplyVowel(cell.Vowel, cur.Dir, cur.Speed)

		if b.visited[cur] {
			b.materialize()
			target := l.Trace(cur, 0)
			l.blocks[label] = b.render(fmt.Sprintf("goto B%d;", target))
			return label
		}
		b.visited[cur] = true

		switch cell.Consonant {
		case ConsonantNone:
			// no state change

		case ConsonantHalt:
			l.blocks[label] = b.renderHalt(cur.Storage)
			return label

		case ConsonantSelect:
			assertStorageIndex(cell.Operand)
			cur.Storage = cell.Operand

		case ConsonantPush:
			b.produce(cur.Storage, fmt.Sprintf("%d", cell.Operand))

		case ConsonantScanDecimal:
			b.produce(cur.Storage, "scan_decimal(&input)")

		case ConsonantScanUnicode:
			b.produce(cur.Storage, "scan_utf8(&input)")

		case ConsonantMove:
			assertStorageIndex(cell.Operand)
			if !b.ensure(cur.Storage, 1) {
				return l.terminateUnderflow(label, b, cur, 1)
			}
			a := b.pop(cur.Storage)
			b.pushBack(cell.Operand, a)

		case ConsonantPop:
			if !b.ensure(cur.Storage, 1) {
				return l.terminateUnderflow(label, b, cur, 1)
			}
			b.pop(cur.Storage)

		case ConsonantPrintDecimal:
			if !b.ensure(cur.Storage, 1) {
				return l.terminateUnderflow(label, b, cur, 1)
			}
			a := b.pop(cur.Storage)
			b.stmt("print_decimal(&output, %s);", a)

		case ConsonantPrintUnicode:
			if !b.ensure(cur.Storage, 1) {
				return l.terminateUnderflow(label, b, cur, 1)
			}
			a := b.pop(cur.Storage)
			b.stmt("print_utf8(&output, %s);", a)

		case ConsonantDuplicate:
			if !b.ensure(cur.Storage, 1) {
				return l.terminateUnderflow(label, b, cur, 1)
			}
			a := b.pop(cur.Storage)
			b.pushActive(cur.Storage, a)
			b.pushActive(cur.Storage, a)

		case ConsonantExchange:
			if !b.ensure(cur.Storage, 2) {
				return l.terminateUnderflow(label, b, cur, 2)
			}
			a := b.pop(cur.Storage)
			bb := b.pop(cur.Storage)
			b.pushActive(cur.Storage, a)
			b.pushActive(cur.Storage, bb)

		case ConsonantAdd, ConsonantSubtract, ConsonantMultiply, ConsonantDivide, ConsonantRemainder, ConsonantCompare:
			if !b.ensure(cur.Storage, 2) {
				return l.terminateUnderflow(label, b, cur, 2)
			}
			a := b.pop(cur.Storage)
			bb := b.pop(cur.Storage)
			expr := fmt.Sprintf("(%s %s %s)", bb, arithSymbol(cell.Consonant), a)
			b.produce(cur.Storage, expr)

		case ConsonantBranch:
			if !b.ensure(cur.Storage, 1) {
				return l.terminateUnderflow(label, b, cur, 1)
			}
			return l.terminateBranch(label, b, cur)
		}

		cur.R, cur.C = l.field.NextPos(cur.R, cur.C, cur.Dir, cur.Speed)
	}
}

// terminateUnderflow finishes a block whose local trace could not prove
// storage held need values, emitting a runtime size check. Per spec.md §5,
// the reverse (underflow) arm is traced before the continuation arm so
// block numbering stays canonical and deterministic.
//
// The check is emitted after materialize writes this block's net effect
// back to runtime storage, so size[storage] already counts everything the
// block has touched; checking size[storage] >= need directly is correct.
// Folding the local deque length into the check on top of that (as an
// un-materialized block would need to) would double-count it.
func (l *Linearizer) terminateUnderflow(label int, b *blockBuilder, cur State, need int) int {
	rr, rc, rd := l.field.ReverseNext(cur.R, cur.C, cur.Dir, cur.Speed)
	falseLabel := l.Trace(State{R: rr, C: rc, Dir: rd, Speed: cur.Speed, Storage: cur.Storage}, 0)
	trueLabel := l.Trace(cur, need)
	b.materialize()
	expr := fmt.Sprintf("size[%d] >= %d", cur.Storage, need)
	term := fmt.Sprintf("if (%s) { goto B%d; } else { goto B%d; }", expr, trueLabel, falseLabel)
	l.blocks[label] = b.render(term)
	return label
}

// terminateBranch finishes a block on a proven-present Branch: the popped
// value is tested at runtime, the zero arm reversing direction and the
// nonzero arm continuing in the current direction. The zero arm is traced
// first, matching the canonical reverse-arm-first ordering.
func (l *Linearizer) terminateBranch(label int, b *blockBuilder, cur State) int {
	a := b.pop(cur.Storage)
	rr, rc, rd := l.field.ReverseNext(cur.R, cur.C, cur.Dir, cur.Speed)
	zeroLabel := l.Trace(State{R: rr, C: rc, Dir: rd, Speed: cur.Speed, Storage: cur.Storage}, 0)
	nr, nc := l.field.NextPos(cur.R, cur.C, cur.Dir, cur.Speed)
	nonzeroLabel := l.Trace(State{R: nr, C: nc, Dir: cur.Dir, Speed: cur.Speed, Storage: cur.Storage}, 0)
	b.materialize()
	term := fmt.Sprintf("if (%s != 0) { goto B%d; } else { goto B%d; }", a, nonzeroLabel, zeroLabel)
	l.blocks[label] = b.render(term)
	return label
}

// assertStorageIndex guards Select/Move's target index. Decode's trail-jamo
// range already guarantees 0..27 for anything that went through the
// decoder; this defends a Syllable built by hand (e.g. in a test) with an
// out-of-range operand, per spec.md §9 open question (b).
func assertStorageIndex(i int) {
	if i < 0 || i >= StorageCount {
		panic(fmt.Sprintf("aheui: storage index %d out of range [0,%d)", i, StorageCount))
	}
}

func arithSymbol(c Consonant) string {
	switch c {
	case ConsonantAdd:
		return "+"
	case ConsonantSubtract:
		return "-"
	case ConsonantMultiply:
		return "*"
	case ConsonantDivide:
		return "/"
	case ConsonantRemainder:
		return "%"
	case ConsonantCompare:
		return ">="
	}
	return "?"
}
