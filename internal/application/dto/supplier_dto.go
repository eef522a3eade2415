package dto

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Code         string `json:"code" validate:"required,min=1,max=20"`
	Name         string `json:"name" validate:"required,min=1,max=100"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

// SupplierListResponse lista de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}

// CreateSupplyRelationRequest entrada para vincular proveedor y bodega.
type CreateSupplyRelationRequest struct {
	SupplierCode  string `json:"supplier_code" validate:"required"`
	WarehouseName string `json:"warehouse_name" validate:"required"`
}

// SupplyRelationResponse relación proveedor-bodega con contacto del proveedor.
type SupplyRelationResponse struct {
	SupplierCode  string `json:"supplier_code"`
	SupplierName  string `json:"supplier_name"`
	WarehouseName string `json:"warehouse_name"`
	ContactName   string `json:"contact_name"`
	ContactPhone  string `json:"contact_phone"`
}

// SupplyRelationListResponse listado de relaciones de suministro.
type SupplyRelationListResponse struct {
	Items []SupplyRelationResponse `json:"items"`
	Total int                      `json:"total"`
}
