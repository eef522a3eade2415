package excel_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/excel"
)

func testMetadata() report.Metadata {
	return report.Metadata{
		ExportID:       "test-export-id",
		GeneratedAt:    time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC),
		OperationLabel: "entrada IN001",
		SourceID:       "warehouse",
	}
}

func TestGenerate_LibroCompleto(t *testing.T) {
	gen := excel.NewExcelizeGenerator()
	tables := []report.Table{
		{
			Name:    "Inventario",
			Columns: []string{"Código", "Bodega", "Cantidad"},
			Rows: [][]any{
				{"INV001", "Bodega Central", int64(100)},
				{"INV002", "Bodega Norte", int64(200)},
			},
		},
		{
			Name:    "Entradas",
			Columns: []string{"Código", "Cantidad"},
			Rows:    [][]any{{"IN001", int64(30)}},
		},
	}

	data, err := gen.Generate(context.Background(), testMetadata(), tables)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// El resultado debe ser un libro xlsx legible
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Información", "Inventario", "Entradas"}, f.GetSheetList())

	// Hoja de información
	title, err := f.GetCellValue("Información", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Reporte de inventario de bodegas", title)
	operation, err := f.GetCellValue("Información", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Operación: entrada IN001", operation)

	// Encabezados y datos
	header, err := f.GetCellValue("Inventario", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Código", header)
	cell, err := f.GetCellValue("Inventario", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Bodega Norte", cell)
	qty, err := f.GetCellValue("Entradas", "B2")
	require.NoError(t, err)
	assert.Equal(t, "30", qty)
}

func TestGenerate_SinTablas(t *testing.T) {
	gen := excel.NewExcelizeGenerator()

	data, err := gen.Generate(context.Background(), testMetadata(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	// Solo queda la hoja de información
	assert.Equal(t, []string{"Información"}, f.GetSheetList())
}

func TestGenerate_ContextoCancelado(t *testing.T) {
	gen := excel.NewExcelizeGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, testMetadata(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
