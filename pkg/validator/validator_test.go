package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name     string    `validate:"required"`
	Quantity int       `validate:"gt=0"`
	ItemID   uuid.UUID `validate:"uuid_required"`
}

func TestCheckValidPayload(t *testing.T) {
	err := Check(&samplePayload{Name: "Cable", Quantity: 2, ItemID: uuid.New()})
	assert.NoError(t, err)
}

func TestCheckReportsFirstViolation(t *testing.T) {
	err := Check(&samplePayload{Quantity: 2, ItemID: uuid.New()})
	require.Error(t, err)

	fe, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, "samplePayload.Name", fe.Field)
	assert.Equal(t, "required", fe.Rule)
	assert.Contains(t, err.Error(), "failed on rule 'required'")
}

func TestCheckIncludesRuleParam(t *testing.T) {
	err := Check(&samplePayload{Name: "Cable", Quantity: 0, ItemID: uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'gt=0'")
}

func TestCheckRejectsZeroUUID(t *testing.T) {
	err := Check(&samplePayload{Name: "Cable", Quantity: 2})
	require.Error(t, err)

	fe, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, "uuid_required", fe.Rule)
}
