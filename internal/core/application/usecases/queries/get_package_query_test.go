package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPackageQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPackageQuery(101)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), query.PackageID())
	require.NoError(t, query.Validate())
}

func TestNewGetPackageQuery_ZeroID(t *testing.T) {
	_, err := queries.NewGetPackageQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetPackageQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPackageQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPackageQueryIsNotConstructed)
}
