package excel

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Almacen-api/internal/application/report"
)

var _ report.Generator = (*ExcelizeGenerator)(nil)

// Anchos de columna: contenido más largo más un margen, con tope para que
// textos muy largos no deformen la hoja.
const (
	colWidthPadding = 2.0
	colWidthMax     = 50.0
)

// ExcelizeGenerator render del reporte como libro .xlsx: una hoja de
// información seguida de una hoja por tabla, en el orden recibido.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator construye el generador de libros xlsx.
func NewExcelizeGenerator() *ExcelizeGenerator {
	return &ExcelizeGenerator{}
}

// Generate arma el libro completo en memoria y devuelve sus bytes.
func (g *ExcelizeGenerator) Generate(ctx context.Context, meta report.Metadata, tables []report.Table) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := g.writeInfoSheet(f, meta); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("excel.Generate header style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return nil, fmt.Errorf("excel.Generate cell style: %w", err)
	}

	for _, table := range tables {
		if err := g.writeTableSheet(f, table, headerStyle, cellStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel.Generate write: %w", err)
	}
	return buf.Bytes(), nil
}

// writeInfoSheet renombra la hoja inicial como carátula del reporte.
func (g *ExcelizeGenerator) writeInfoSheet(f *excelize.File, meta report.Metadata) error {
	const sheet = "Información"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("excel.writeInfoSheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return fmt.Errorf("excel.writeInfoSheet title style: %w", err)
	}

	lines := []struct {
		cell  string
		value string
	}{
		{"A1", "Reporte de inventario de bodegas"},
		{"A3", "Generado: " + meta.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"A4", "Operación: " + meta.OperationLabel},
		{"A5", "Base de datos: " + meta.SourceID},
		{"A6", "Exportación: " + meta.ExportID},
	}
	for _, line := range lines {
		if err := f.SetCellValue(sheet, line.cell, line.value); err != nil {
			return fmt.Errorf("excel.writeInfoSheet: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("excel.writeInfoSheet: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 60); err != nil {
		return fmt.Errorf("excel.writeInfoSheet: %w", err)
	}
	return nil
}

// writeTableSheet crea una hoja con fila de encabezados y una fila por registro.
func (g *ExcelizeGenerator) writeTableSheet(f *excelize.File, table report.Table, headerStyle, cellStyle int) error {
	if _, err := f.NewSheet(table.Name); err != nil {
		return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
	}

	widths := make([]float64, len(table.Columns))

	for col, name := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
		}
		if err := f.SetCellValue(table.Name, cell, name); err != nil {
			return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
		}
		widths[col] = contentWidth(name)
	}

	for i, row := range table.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
			}
			if err := f.SetCellValue(table.Name, cell, value); err != nil {
				return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
			}
			if col < len(widths) {
				if w := contentWidth(fmt.Sprint(value)); w > widths[col] {
					widths[col] = w
				}
			}
		}
	}

	lastCol, err := excelize.CoordinatesToCellName(len(table.Columns), 1)
	if err != nil {
		return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
	}
	if err := f.SetCellStyle(table.Name, "A1", lastCol, headerStyle); err != nil {
		return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
	}
	if len(table.Rows) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(len(table.Columns), len(table.Rows)+1)
		if err != nil {
			return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
		}
		if err := f.SetCellStyle(table.Name, "A2", lastCell, cellStyle); err != nil {
			return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
		}
		if err := f.SetColWidth(table.Name, name, name, width); err != nil {
			return fmt.Errorf("excel.writeTableSheet %q: %w", table.Name, err)
		}
	}
	return nil
}

func contentWidth(s string) float64 {
	w := float64(utf8.RuneCountInString(s)) + colWidthPadding
	if w > colWidthMax {
		return colWidthMax
	}
	return w
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}
