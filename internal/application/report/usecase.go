package report

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ExportUseCase arma el reporte completo del almacén (una hoja por tabla no
// vacía más la hoja de información) y lo escribe como .xlsx. El export es un
// paso posterior e independiente de las mutaciones: un fallo aquí nunca
// afecta el estado ya confirmado en la base.
type ExportUseCase struct {
	operatorRepo  repository.OperatorRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	reportRepo    repository.ReportRepository
	generator     Generator
	outputPath    string
	sourceID      string
	now           func() time.Time
}

// NewExportUseCase construye el caso de uso. sourceID identifica la base de
// datos en la hoja de información del reporte.
func NewExportUseCase(
	operatorRepo repository.OperatorRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	reportRepo repository.ReportRepository,
	generator Generator,
	outputPath string,
	sourceID string,
) *ExportUseCase {
	return &ExportUseCase{
		operatorRepo:  operatorRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
		reportRepo:    reportRepo,
		generator:     generator,
		outputPath:    outputPath,
		sourceID:      sourceID,
		now:           time.Now,
	}
}

// Export genera el reporte y lo escribe en la ruta configurada.
// operationLabel describe la operación que lo disparó; vacío se reporta como
// consulta de estado.
func (uc *ExportUseCase) Export(ctx context.Context, operationLabel string) (*dto.ExportReportResponse, error) {
	tables, err := uc.collectTables(ctx)
	if err != nil {
		return nil, err
	}

	// Una hoja por tabla no vacía
	nonEmpty := make([]Table, 0, len(tables))
	for _, t := range tables {
		if len(t.Rows) > 0 {
			nonEmpty = append(nonEmpty, t)
		}
	}

	if operationLabel == "" {
		operationLabel = "Consulta de estado"
	}
	meta := Metadata{
		ExportID:       uuid.New().String(),
		GeneratedAt:    uc.now(),
		OperationLabel: operationLabel,
		SourceID:       uc.sourceID,
	}

	data, err := uc.generator.Generate(ctx, meta, nonEmpty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExport, err)
	}
	if err := os.WriteFile(uc.outputPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("%w: escribir %s: %v", domain.ErrExport, uc.outputPath, err)
	}

	sheets := make([]string, 0, len(nonEmpty))
	for _, t := range nonEmpty {
		sheets = append(sheets, t.Name)
	}
	return &dto.ExportReportResponse{
		ExportID:    meta.ExportID,
		Path:        uc.outputPath,
		Sheets:      sheets,
		SizeBytes:   int64(len(data)),
		GeneratedAt: meta.GeneratedAt,
	}, nil
}

// collectTables consulta todas las tablas del reporte en el orden fijo del libro.
func (uc *ExportUseCase) collectTables(ctx context.Context) ([]Table, error) {
	operators, err := uc.operatorRepo.List()
	if err != nil {
		return nil, err
	}
	operatorRows := make([][]any, 0, len(operators))
	for _, o := range operators {
		operatorRows = append(operatorRows, []any{o.Name, o.Contact})
	}

	suppliers, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	supplierRows := make([][]any, 0, len(suppliers))
	for _, s := range suppliers {
		supplierRows = append(supplierRows, []any{s.Code, s.Name, s.ContactName, s.ContactPhone})
	}

	warehouses, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, err
	}
	warehouseRows := make([][]any, 0, len(warehouses))
	for _, w := range warehouses {
		warehouseRows = append(warehouseRows, []any{w.Name, w.OperatorName, w.Manager, w.CreatedAt.Format(dateLayout)})
	}

	status, err := uc.reportRepo.StockStatus(ctx)
	if err != nil {
		return nil, err
	}
	statusRows := make([][]any, 0, len(status))
	for _, r := range status {
		statusRows = append(statusRows, []any{
			r.Code, r.WarehouseName, r.Quantity, r.UnitPrice.InexactFloat64(),
			r.Manager, r.TotalValue.InexactFloat64(),
		})
	}

	inbound, err := uc.reportRepo.InboundHistory(ctx)
	if err != nil {
		return nil, err
	}
	inboundRows := make([][]any, 0, len(inbound))
	for _, r := range inbound {
		inboundRows = append(inboundRows, []any{
			r.Code, r.GoodsCode, r.GoodsName, r.Quantity, r.UnitPrice.InexactFloat64(),
			r.Date.Format(dateLayout), r.SupplierName, r.Amount.InexactFloat64(),
		})
	}

	outbound, err := uc.reportRepo.OutboundHistory(ctx)
	if err != nil {
		return nil, err
	}
	outboundRows := make([][]any, 0, len(outbound))
	for _, r := range outbound {
		outboundRows = append(outboundRows, []any{
			r.Code, r.GoodsCode, r.GoodsName, r.Quantity, r.UnitPrice.InexactFloat64(),
			r.Date.Format(dateLayout), r.Amount.InexactFloat64(),
		})
	}

	summaries, err := uc.reportRepo.WarehouseSummaries(ctx)
	if err != nil {
		return nil, err
	}
	summaryRows := make([][]any, 0, len(summaries))
	for _, r := range summaries {
		summaryRows = append(summaryRows, []any{
			r.WarehouseName, r.Manager, r.OperatorName,
			r.StockKinds, r.TotalQuantity, r.TotalValue.InexactFloat64(),
		})
	}

	relations, err := uc.reportRepo.SupplyRelations(ctx)
	if err != nil {
		return nil, err
	}
	relationRows := make([][]any, 0, len(relations))
	for _, r := range relations {
		relationRows = append(relationRows, []any{
			r.SupplierCode, r.SupplierName, r.WarehouseName, r.ContactName, r.ContactPhone,
		})
	}

	return []Table{
		{Name: "Operarios", Columns: []string{"Nombre", "Contacto"}, Rows: operatorRows},
		{Name: "Proveedores", Columns: []string{"Código", "Nombre", "Contacto", "Teléfono"}, Rows: supplierRows},
		{Name: "Bodegas", Columns: []string{"Bodega", "Operario", "Responsable", "Fecha de creación"}, Rows: warehouseRows},
		{Name: "Inventario", Columns: []string{"Código", "Bodega", "Cantidad", "Precio unitario", "Responsable", "Valor total"}, Rows: statusRows},
		{Name: "Entradas", Columns: []string{"Código", "Código mercancía", "Mercancía", "Cantidad", "Precio unitario", "Fecha", "Proveedor", "Monto"}, Rows: inboundRows},
		{Name: "Salidas", Columns: []string{"Código", "Código mercancía", "Mercancía", "Cantidad", "Precio unitario", "Fecha", "Monto"}, Rows: outboundRows},
		{Name: "Resumen por bodega", Columns: []string{"Bodega", "Responsable", "Operario", "Tipos de stock", "Cantidad total", "Valor total"}, Rows: summaryRows},
		{Name: "Relaciones de suministro", Columns: []string{"Código proveedor", "Proveedor", "Bodega", "Contacto", "Teléfono"}, Rows: relationRows},
	}, nil
}
