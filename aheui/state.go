package aheui

// StorageKind classifies a storage index into its access discipline.
type StorageKind int

const (
	Stack StorageKind = iota
	Queue
	Stream
)

// QueueIndex is the one storage that behaves as a FIFO.
const QueueIndex = 21

// StreamIndex is the one storage distinguished by the decoder but, per
// spec, treated identically to Stack by the tracer and materialization.
const StreamIndex = 27

// StorageCount is the number of addressable storages.
const StorageCount = 28

// KindOf classifies storage index i.
func KindOf(i int) StorageKind {
	switch i {
	case QueueIndex:
		return Queue
	case StreamIndex:
		return Stream
	default:
		return Stack
	}
}

// State is the linearizer's abstract program counter: position, direction,
// speed, and the exact storage index currently selected. Two states are
// equal iff all five components match.
type State struct {
	R, C     int
	Dir      Direction
	Speed    int
	Storage  int
}

// traceKey is the full memoization key: a State plus the depth the caller
// guarantees is present on the entry storage. The same spatial State can be
// entered with different guaranteed depths, so presize must be part of the
// key or distinct blocks collapse into one and produce wrong underflow
// branches.
type traceKey struct {
	state   State
	presize int
}
