package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetProductQuery(id)

	require.NoError(t, err)
	assert.Equal(t, id, query.ProductID())
	require.NoError(t, query.Validate())
}

func TestNewGetProductQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetProductQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetProductQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetProductQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetProductQueryIsNotConstructed)
}

func TestNewGetProductBySKUQuery_Valid(t *testing.T) {
	query, err := queries.NewGetProductBySKUQuery("WDG-001")

	require.NoError(t, err)
	assert.Equal(t, "WDG-001", query.SKU())
}

func TestNewGetProductBySKUQuery_EmptySKU(t *testing.T) {
	_, err := queries.NewGetProductBySKUQuery("")

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrSKUIsRequired)
}
