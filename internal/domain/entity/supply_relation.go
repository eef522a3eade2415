package entity

// SupplyRelation vincula un proveedor con una bodega (muchos a muchos).
// La clave es el par (proveedor, bodega); no tiene ciclo de vida propio.
type SupplyRelation struct {
	SupplierCode  string
	WarehouseName string
}
