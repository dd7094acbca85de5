package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounded(t *testing.T) {
	b := NewBounded[string](2)

	assert.Equal(t, 2, b.Cap())
	assert.Nil(t, b.Items())
	assert.True(t, b.Append("a"))
	assert.True(t, b.Append("b"))
	assert.False(t, b.Append("c"), "append past capacity is refused")
	assert.Equal(t, []string{"a", "b"}, b.Items())

	items := b.Items()
	items[0] = "changed"
	assert.Equal(t, "a", b.Items()[0], "Items returns a copy")
}

func TestBounded_ResetAtAnyFillLevel(t *testing.T) {
	for fill := 0; fill <= 3; fill++ {
		b := NewBounded[int](3)
		for i := 0; i < fill; i++ {
			b.Append(i)
		}

		b.Reset()
		b.Reset()

		assert.Zero(t, b.Len())
		assert.Nil(t, b.Items())
		assert.True(t, b.Append(9), "usable after reset")
	}
}
