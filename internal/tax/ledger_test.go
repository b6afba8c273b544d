package tax

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLotQueue(t *testing.T) {
	var q lotQueue
	assert.True(t, q.empty())

	q.push(lot{quantity: 5, price: 10, date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	q.push(lot{quantity: 3, price: 20, date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)})

	assert.False(t, q.empty())
	assert.Equal(t, 10.0, q.peek().price)

	// Partial consumption mutates the head in place, never reorders.
	q.peek().quantity -= 2
	assert.Equal(t, 3.0, q.peek().quantity)
	assert.Equal(t, 10.0, q.peek().price)

	q.pop()
	assert.Equal(t, 20.0, q.peek().price)

	q.pop()
	assert.True(t, q.empty())

	// Reusable after draining: storage is reset, not leaked.
	q.push(lot{quantity: 1, price: 30})
	assert.Equal(t, 30.0, q.peek().price)
	assert.Len(t, q.lots, 1)
}
