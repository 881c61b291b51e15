package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsumeDrainsInOrder(t *testing.T) {
	var q Queue
	q.Push(DisplayEvent{Type: TypeStrikeLaunched, Message: "a"})
	q.Push(DisplayEvent{Type: TypeStrikeDetonated, Message: "b"})
	assert.Equal(t, 2, q.Len())

	got := q.Consume()
	assert.Equal(t, "a", got[0].Message)
	assert.Equal(t, "b", got[1].Message)
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Consume())
}
