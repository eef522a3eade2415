package dto

// CreateOperatorRequest entrada para crear un operario.
type CreateOperatorRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=50"`
	Contact string `json:"contact"`
}

// OperatorResponse salida de un operario.
type OperatorResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// OperatorListResponse lista de operarios.
type OperatorListResponse struct {
	Items []OperatorResponse `json:"items"`
	Total int                `json:"total"`
}
