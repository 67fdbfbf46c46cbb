package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllProductsQuery_Valid(t *testing.T) {
	query := queries.NewGetAllProductsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllProductsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllProductsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllProductsQueryIsNotConstructed)
}
