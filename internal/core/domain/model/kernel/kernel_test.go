package kernel_test

import (
	"math"
	"testing"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should create an ID from a positive integer", func(t *testing.T) {
		id, err := kernel.NewID(7)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, 7, id.Value())
		assert.Equal(t, "7", id.String())
	})

	t.Run("should reject zero and negative values", func(t *testing.T) {
		for _, v := range []int{0, -1, -100} {
			_, err := kernel.NewID(v)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not greater than 0")
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var id kernel.ID

		assert.Equal(t, kernel.ErrIDIsNotConstructed, id.Validate())
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.NewID(3)
		b, _ := kernel.NewID(3)
		c, _ := kernel.NewID(4)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.Equal(t, a, b)
	})
}

func TestNewWeight(t *testing.T) {
	t.Run("should create a positive weight", func(t *testing.T) {
		w, err := kernel.NewWeight(1.5)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.InDelta(t, 1.5, w.Kilograms(), 1e-9)
		assert.Equal(t, "1.5", w.String())
		assert.Equal(t, "1.5", w.OneDecimal())
	})

	t.Run("should format whole numbers", func(t *testing.T) {
		w, _ := kernel.NewWeight(2)

		assert.Equal(t, "2", w.String())
		assert.Equal(t, "2.0", w.OneDecimal())
	})

	t.Run("should reject non positive or non finite values", func(t *testing.T) {
		for _, v := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
			_, err := kernel.NewWeight(v)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var w kernel.Weight

		assert.Equal(t, kernel.ErrWeightIsNotConstructed, w.Validate())
	})

	t.Run("exceeds is strict", func(t *testing.T) {
		light, _ := kernel.NewWeight(1)
		limit, _ := kernel.NewWeight(2)
		same, _ := kernel.NewWeight(2)

		assert.False(t, light.Exceeds(limit))
		assert.False(t, same.Exceeds(limit))
		assert.True(t, limit.Exceeds(light))
	})
}

func TestUUID(t *testing.T) {
	t.Run("should create unique valid UUIDs", func(t *testing.T) {
		a := kernel.NewUUID()
		b := kernel.NewUUID()

		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", a.String())
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}
