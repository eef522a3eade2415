package dto

import "time"

// ExportReportRequest body para POST /api/reports/export.
type ExportReportRequest struct {
	// OperationLabel operación que disparó el reporte (ej: "entrada IN001").
	// Vacío se reporta como consulta de estado.
	OperationLabel string `json:"operation_label"`
}

// ExportReportResponse resultado de un export confirmado.
type ExportReportResponse struct {
	ExportID    string    `json:"export_id"`
	Path        string    `json:"path"`
	Sheets      []string  `json:"sheets"`
	SizeBytes   int64     `json:"size_bytes"`
	GeneratedAt time.Time `json:"generated_at"`
}
