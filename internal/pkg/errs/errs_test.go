package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"dronefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("formats the identifier", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("packageID", 42)

		assert.Equal(t, "packageID", err.ParamName)
		assert.Equal(t, 42, err.ID)
		assert.Equal(t, "object not found: 42", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("includes param and cause when a cause is given", func(t *testing.T) {
		cause := errors.New("archive is empty")
		err := errs.NewObjectNotFoundErrorWithCause("packageID", 7, cause)

		assert.Equal(t,
			"object not found: param is: packageID, ID is: 7 (cause: archive is empty)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("weight")

		assert.Equal(t, "value is invalid: weight", err.Error())
		require.NoError(t, err.Cause)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is not greater than 0", -1.5))

		assert.Equal(t, "value is invalid: weight (cause: -1.5 is not greater than 0)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats value and bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weight", 3.5, 0.1, 2.0)

		assert.Equal(t, "value is invalid: 3.5 is weight, min value is 0.1, max value is 2", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("id", -5, 1, 100, errors.New("negative"))

		assert.Equal(t, "value is invalid: -5 is id, min value is 1, max value is 100 (cause: negative)", err.Error())
	})

	t.Run("newlines in values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("destination", "north\nside", 0, 10)

		assert.Contains(t, err.Error(), "north side")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("model")

		assert.Equal(t, "value is required: model", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("model", errors.New("blank token"))

		assert.Equal(t, "value is required: model (cause: blank token)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestErrorsSurviveJoin(t *testing.T) {
	joined := errors.Join(errs.NewValueIsRequiredError("model"), errs.NewValueIsInvalidError("maxPayload"))

	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
}
