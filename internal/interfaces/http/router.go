package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OperatorUC  *usecase.OperatorUseCase
	SupplierUC  *usecase.SupplierUseCase
	WarehouseUC *usecase.WarehouseUseCase
	StockUC     *usecase.StockUseCase
	LedgerUC    *inventory.LedgerUseCase
	ExportUC    *report.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Operators
	operators := api.Group("/operators")
	operatorHandler := NewOperatorHandler(deps.OperatorUC)
	operators.Post("/", operatorHandler.Create)
	operators.Get("/", operatorHandler.List)

	// Suppliers y relaciones de suministro
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/relations", supplierHandler.CreateRelation)
	suppliers.Get("/relations", supplierHandler.ListRelations)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/summary", warehouseHandler.Summary)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)

	// Stock records
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/status", stockHandler.Status)
	stock.Post("/", stockHandler.Create)

	// Inventory movements
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.StockUC)
	invGroup.Post("/inbound", inventoryHandler.ProcessInbound)
	invGroup.Get("/inbound", inventoryHandler.ListInbound)
	invGroup.Post("/outbound", inventoryHandler.ProcessOutbound)
	invGroup.Get("/outbound", inventoryHandler.ListOutbound)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ExportUC)
	reports.Post("/export", reportHandler.Export)
}
