package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateProductCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	name := "Widget Deluxe"
	price := decimal.NewFromFloat(12.50)
	stock := 42

	cmd, err := commands.NewUpdateProductCommand(id, &name, &price, &stock)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProductID())
	assert.Equal(t, "Widget Deluxe", *cmd.Name())
	assert.True(t, price.Equal(*cmd.PricePerUnit()))
	assert.Equal(t, 42, *cmd.StockQuantity())
}

func TestNewUpdateProductCommand_SingleField(t *testing.T) {
	name := "Widget Deluxe"

	cmd, err := commands.NewUpdateProductCommand(kernel.NewUUID(), &name, nil, nil)

	require.NoError(t, err)
	assert.Nil(t, cmd.PricePerUnit())
	assert.Nil(t, cmd.StockQuantity())
}

func TestNewUpdateProductCommand_NoFields(t *testing.T) {
	_, err := commands.NewUpdateProductCommand(kernel.NewUUID(), nil, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoFieldsToUpdate)
}

func TestNewUpdateProductCommand_EmptyName(t *testing.T) {
	name := ""

	_, err := commands.NewUpdateProductCommand(kernel.NewUUID(), &name, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductNameIsRequired)
}

func TestNewUpdateProductCommand_NonPositivePrice(t *testing.T) {
	price := decimal.Zero

	_, err := commands.NewUpdateProductCommand(kernel.NewUUID(), nil, &price, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
}

func TestNewUpdateProductCommand_NegativeStock(t *testing.T) {
	stock := -1

	_, err := commands.NewUpdateProductCommand(kernel.NewUUID(), nil, nil, &stock)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStockIsInvalid)
}

func TestUpdateProductCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.UpdateProductCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateProductCommandIsNotConstructed)
}
