package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentQuery(42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), query.ShipmentID())
	require.NoError(t, query.Validate())
}

func TestNewGetShipmentQuery_ZeroID(t *testing.T) {
	_, err := queries.NewGetShipmentQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetShipmentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}
