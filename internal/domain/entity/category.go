package entity

import "time"

// Category representa una categoría de productos. El nombre es único; las
// categorías se crean implícitamente al guardar un producto que nombra una
// categoría inexistente y nunca se eliminan desde estos flujos.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
