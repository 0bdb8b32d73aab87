package domain_test

import (
	"testing"

	"github.com/snikolow/commission-calculator/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds_Defaults(t *testing.T) {
	kinds := domain.NewKinds()

	assert.True(t, kinds.IsValidOperation("cash_in"))
	assert.True(t, kinds.IsValidOperation("cash_out"))
	assert.True(t, kinds.IsValidPerson("natural"))
	assert.True(t, kinds.IsValidPerson("legal"))

	assert.False(t, kinds.IsValidOperation("transfer"))
	assert.False(t, kinds.IsValidOperation("CASH_IN"))
	assert.False(t, kinds.IsValidPerson("institution"))

	assert.Equal(t, []string{"cash_in", "cash_out"}, kinds.Operations())
	assert.Equal(t, []string{"legal", "natural"}, kinds.Persons())
}

func TestKinds_Operation(t *testing.T) {
	kinds := domain.NewKinds()

	op, err := kinds.Operation("cash_out")
	require.NoError(t, err)
	assert.Equal(t, domain.CashOut, op)

	_, err = kinds.Operation("transfer")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidOperationKind)
	assert.Contains(t, err.Error(), "(transfer)")
}

func TestKinds_Person(t *testing.T) {
	kinds := domain.NewKinds()

	person, err := kinds.Person("legal")
	require.NoError(t, err)
	assert.Equal(t, domain.Legal, person)

	_, err = kinds.Person("institution")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPersonKind)
	assert.Contains(t, err.Error(), "(institution)")
}

func TestKinds_AddIsChainable(t *testing.T) {
	kinds := domain.NewKinds().
		AddOperation("transfer").
		AddPerson("institution")

	assert.True(t, kinds.IsValidOperation("transfer"))
	assert.True(t, kinds.IsValidPerson("institution"))
	assert.Len(t, kinds.Operations(), 3)
}
