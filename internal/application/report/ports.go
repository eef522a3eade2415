package report

import (
	"context"
	"time"
)

// Table tabla ordenada de filas con columnas nombradas, tal como sale de las
// consultas de lectura. El exportador no le aplica ninguna lógica de negocio.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Metadata datos de la hoja de información del reporte.
type Metadata struct {
	ExportID       string
	GeneratedAt    time.Time
	OperationLabel string
	SourceID       string // identificador del almacén de datos
}

// Generator puerto de render del documento: recibe las hojas en orden y
// devuelve los bytes del libro. La implementación vive en infraestructura.
type Generator interface {
	Generate(ctx context.Context, meta Metadata, tables []Table) ([]byte, error)
}
