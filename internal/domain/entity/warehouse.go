package entity

import "time"

// Warehouse representa una bodega. El nombre es la clave natural; el operario
// responsable debe existir al momento de crearla.
type Warehouse struct {
	Name         string
	OperatorName string
	Manager      string
	CreatedAt    time.Time
}
