package cmd

import (
	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	return commands.NewAddProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	return commands.NewAdjustStockCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateRemoveProductCommandHandler() commands.RemoveProductCommandHandler {
	return commands.NewRemoveProductCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateOpenOrderCommandHandler() commands.OpenOrderCommandHandler {
	return commands.NewOpenOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() commands.FulfillOrderCommandHandler {
	return commands.NewFulfillOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDiscardEmptyOrderCommandHandler() commands.DiscardEmptyOrderCommandHandler {
	return commands.NewDiscardEmptyOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDiscardAbandonedOrdersCommandHandler() commands.DiscardAbandonedOrdersCommandHandler {
	return commands.NewDiscardAbandonedOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductBySKUQueryHandler() queries.GetProductBySKUQueryHandler {
	return queries.NewGetProductBySKUQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTotalQueryHandler() queries.GetOrderTotalQueryHandler {
	return queries.NewGetOrderTotalQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

// CreateHTTPHandlers assembles the full handler set for the REST server.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		AddProduct:           c.CreateAddProductCommandHandler(),
		UpdateProduct:        c.CreateUpdateProductCommandHandler(),
		AdjustStock:          c.CreateAdjustStockCommandHandler(),
		RemoveProduct:        c.CreateRemoveProductCommandHandler(),
		OpenOrder:            c.CreateOpenOrderCommandHandler(),
		AddOrderItem:         c.CreateAddOrderItemCommandHandler(),
		RemoveOrderItem:      c.CreateRemoveOrderItemCommandHandler(),
		FulfillOrder:         c.CreateFulfillOrderCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		DeleteOrder:          c.CreateDeleteOrderCommandHandler(),
		DiscardEmptyOrder:    c.CreateDiscardEmptyOrderCommandHandler(),
		UpdateShipmentStatus: c.CreateUpdateShipmentStatusCommandHandler(),
		DeleteShipment:       c.CreateDeleteShipmentCommandHandler(),

		GetAllProducts:  c.CreateGetAllProductsQueryHandler(),
		GetProduct:      c.CreateGetProductQueryHandler(),
		GetProductBySKU: c.CreateGetProductBySKUQueryHandler(),
		GetAllOrders:    c.CreateGetAllOrdersQueryHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		GetOrderTotal:   c.CreateGetOrderTotalQueryHandler(),
		GetAllShipments: c.CreateGetAllShipmentsQueryHandler(),
		GetShipment:     c.CreateGetShipmentQueryHandler(),
	}
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
