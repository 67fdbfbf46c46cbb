package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddProductCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	price := decimal.NewFromFloat(9.99)

	cmd, err := commands.NewAddProductCommand(id, "Widget", "WDG-001", price, 100)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProductID())
	assert.Equal(t, "Widget", cmd.Name())
	assert.Equal(t, "WDG-001", cmd.SKU())
	assert.True(t, price.Equal(cmd.PricePerUnit()))
	assert.Equal(t, 100, cmd.StockQuantity())
	assert.NoError(t, cmd.Validate())
}

func TestNewAddProductCommand_ZeroStock(t *testing.T) {
	cmd, err := commands.NewAddProductCommand(
		kernel.NewUUID(), "Widget", "WDG-001", decimal.NewFromInt(5), 0)

	require.NoError(t, err)
	assert.Equal(t, 0, cmd.StockQuantity())
}

func TestNewAddProductCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewAddProductCommand(
		kernel.UUID{}, "Widget", "WDG-001", decimal.NewFromInt(5), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAddProductCommand_EmptyName(t *testing.T) {
	_, err := commands.NewAddProductCommand(
		kernel.NewUUID(), "", "WDG-001", decimal.NewFromInt(5), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductNameIsRequired)
}

func TestNewAddProductCommand_EmptySKU(t *testing.T) {
	_, err := commands.NewAddProductCommand(
		kernel.NewUUID(), "Widget", "", decimal.NewFromInt(5), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductSKUIsRequired)
}

func TestNewAddProductCommand_ZeroPrice(t *testing.T) {
	_, err := commands.NewAddProductCommand(
		kernel.NewUUID(), "Widget", "WDG-001", decimal.Zero, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
}

func TestNewAddProductCommand_NegativePrice(t *testing.T) {
	_, err := commands.NewAddProductCommand(
		kernel.NewUUID(), "Widget", "WDG-001", decimal.NewFromFloat(-0.01), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
}

func TestNewAddProductCommand_NegativeStock(t *testing.T) {
	_, err := commands.NewAddProductCommand(
		kernel.NewUUID(), "Widget", "WDG-001", decimal.NewFromInt(5), -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStockIsInvalid)
}

func TestNewAddProductCommand_CollectsAllErrors(t *testing.T) {
	_, err := commands.NewAddProductCommand(kernel.UUID{}, "", "", decimal.Zero, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrProductSKUIsRequired)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
	assert.ErrorIs(t, err, commands.ErrStockIsInvalid)
}

func TestAddProductCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AddProductCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddProductCommandIsNotConstructed)
}
