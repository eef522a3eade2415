package entity

// Supplier representa un proveedor de mercancía.
type Supplier struct {
	Code         string
	Name         string
	ContactName  string
	ContactPhone string
}
