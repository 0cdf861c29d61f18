package validate

import (
	"errors"
	"testing"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	assert.NoError(t, Collect(Required("name", "Ada"), Email("email", "a@x.com"), MaxLen("password", "pw", 72)))

	err := Collect(Required("name", " "), Email("email", "nope"), MaxLen("password", "toolong", 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "name: required; email: must be an email address; password: must be at most 3 bytes", err.Error())

	var errs Errs
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 3)
}

func TestEmail(t *testing.T) {
	assert.Nil(t, Email("email", ""))
	assert.NotNil(t, Email("email", "@x.com"))
	assert.NotNil(t, Email("email", "a@"))
	assert.Nil(t, Email("email", "a@x"))
}
