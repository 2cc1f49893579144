package buffer

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestPushAndEat(t *testing.T) {
	r := New(8)
	n, err := r.Push([]byte("abc"))
	assert.NilError(t, err)
	assert.Equal(t, n, 3)
	assert.Equal(t, string(r.Bytes()), "abc")

	r.Eat(1)
	assert.Equal(t, string(r.Bytes()), "bc")
	assert.Equal(t, r.Len(), 2)
}

func TestPushFullReturnsError(t *testing.T) {
	r := New(2)
	_, err := r.Push([]byte("ab"))
	assert.NilError(t, err)
	_, err = r.Push([]byte("c"))
	assert.ErrorIs(t, err, ErrBufferFull)
}

func TestEatAllResetsCursor(t *testing.T) {
	r := New(8)
	_, _ = r.Push([]byte("abcd"))
	r.Eat(4)
	assert.Equal(t, r.Len(), 0)
	n, err := r.Push([]byte("xyz"))
	assert.NilError(t, err)
	assert.Equal(t, n, 3)
	assert.Equal(t, string(r.Bytes()), "xyz")
}

func TestSlideIfHalfwayCompactsAfterDrift(t *testing.T) {
	r := New(10)
	_, _ = r.Push([]byte("0123456789"))
	r.Eat(6)
	r.SlideIfHalfway()
	assert.Equal(t, string(r.Bytes()), "6789")
	_, err := r.Push([]byte("AB"))
	assert.NilError(t, err)
	assert.Equal(t, string(r.Bytes()), "6789AB")
}

func TestResizeRefusesToShrinkBelowBuffered(t *testing.T) {
	r := New(4)
	_, _ = r.Push([]byte("abcd"))
	err := r.Resize(2)
	assert.ErrorContains(t, err, "smaller than buffered data")
}

func TestResizeGrows(t *testing.T) {
	r := New(4)
	_, _ = r.Push([]byte("abcd"))
	err := r.Resize(8)
	assert.NilError(t, err)
	assert.Equal(t, r.Cap(), 8)
	assert.Equal(t, string(r.Bytes()), "abcd")
}

func TestAdviseReadableNoFileDescriptor(t *testing.T) {
	r := New(8)
	status, err := r.AdviseReadable(-1, false)
	assert.Equal(t, status, Error)
	assert.ErrorIs(t, err, ErrNoFileDescriptor)
}
