package aheui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testField() *Field {
	return &Field{W: 3, H: 3, Cells: make([]Syllable, 9)}
}

func TestNextPosWrapsAsymmetrically(t *testing.T) {
	f := testField()

	r, c := f.NextPos(0, 0, Up, 1)
	assert.Equal(t, 2, r)
	assert.Equal(t, 0, c)

	r, c = f.NextPos(2, 0, Down, 1)
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	r, c = f.NextPos(0, 0, Left, 1)
	assert.Equal(t, 0, r)
	assert.Equal(t, 2, c)

	r, c = f.NextPos(0, 2, Right, 1)
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)
}

func TestNextPosInterior(t *testing.T) {
	f := testField()
	r, c := f.NextPos(1, 1, Right, 1)
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
}

func TestNextPosSpeedTwo(t *testing.T) {
	f := testField()
	r, c := f.NextPos(0, 0, Right, 2)
	assert.Equal(t, 0, r)
	assert.Equal(t, 2, c)
}

func TestReverseNextFlipsThenSteps(t *testing.T) {
	f := testField()
	r, c, dir := f.ReverseNext(1, 1, Right, 1)
	assert.Equal(t, Left, dir)
	assert.Equal(t, 1, r)
	assert.Equal(t, 0, c)
}

func TestReverseNextWrapsLikeForwardStep(t *testing.T) {
	f := testField()
	r, c, dir := f.ReverseNext(0, 0, Down, 1)
	assert.Equal(t, Up, dir)
	assert.Equal(t, 2, r)
	assert.Equal(t, 0, c)
}
