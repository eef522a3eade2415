package entity

// Operator representa un operario responsable de bodegas. El nombre es la clave natural.
type Operator struct {
	Name    string
	Contact string
}
