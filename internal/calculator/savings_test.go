package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSavings(t *testing.T) {
	b := Savings(600000)

	assert.Equal(t, 2495, b.SelfManagedCost)
	assert.Equal(t, 6695, b.FullServiceCost)
	assert.Equal(t, 17500, b.TraditionalAgentCost)
	assert.Equal(t, 15005, b.SelfManagedSavings)
	assert.Equal(t, 10805, b.FullServiceSavings)
}

func TestSavings_SliderBounds(t *testing.T) {
	for _, price := range []int{MinPropertyPrice, MaxPropertyPrice} {
		b := Savings(price)

		assert.Positive(t, b.FullServiceCost)
		assert.Positive(t, b.TraditionalAgentCost)
		assert.Positive(t, b.SelfManagedSavings)
		assert.Positive(t, b.FullServiceSavings)
		assert.Greater(t, b.TraditionalAgentCost, b.FullServiceCost)
		assert.Greater(t, b.FullServiceCost, b.SelfManagedCost)
	}
}

func TestSavings_LowerBoundFigures(t *testing.T) {
	b := Savings(200000)

	assert.Equal(t, 3895, b.FullServiceCost)
	assert.Equal(t, 7500, b.TraditionalAgentCost)
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(MinPropertyPrice))
	assert.True(t, InRange(MaxPropertyPrice))
	assert.True(t, InRange(600000))
	assert.False(t, InRange(MinPropertyPrice-1))
	assert.False(t, InRange(MaxPropertyPrice+1))
	assert.False(t, InRange(0))
}
