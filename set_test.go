package eda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatSet(t *testing.T) {
	a := NewFloatSet()
	assert.True(t, a.Equals(nil), "a = %v", a)

	a.Add(17)
	a.Add(-2)
	a.Add(17)
	assert.True(t, a.Equals([]float64{-2, 17}), "a = %v", a)

	b := NewFloatSet()
	b.Add(17)
	b.Add(0)
	b.Add(99)
	assert.True(t, b.Equals([]float64{0, 17, 99}), "b = %v", b)

	a.Join(b)
	assert.True(t, a.Equals([]float64{-2, 0, 17, 99}), "a = %v", a)
	assert.False(t, a.Equals([]float64{-2, 0, 17, 98}))

	assert.True(t, a.Contains(0))
	assert.True(t, a.Contains(99))
	assert.False(t, a.Contains(3))

	assert.Equal(t, []float64{-2, 0, 17, 99}, a.Elements())
	assert.Equal(t, "[-2 0 17 99]", a.String())
}

func TestStringPool(t *testing.T) {
	sp := NewStringPool()
	assert.Equal(t, 0, sp.Add("cat"))
	assert.Equal(t, 1, sp.Add("dog"))
	assert.Equal(t, 0, sp.Add("cat"))

	assert.Equal(t, 1, sp.Find("dog"))
	assert.Equal(t, -1, sp.Find("fish"))
	assert.Equal(t, "dog", sp.Get(1))
	assert.Equal(t, "--NA--", sp.Get(7))
	assert.Equal(t, "--NA--", sp.Get(-1))
}
