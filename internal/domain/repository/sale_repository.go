package repository

import "github.com/jhoicas/Jugueteria-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// List devuelve todas las ventas con su producto cargado, más recientes primero.
	List() ([]*entity.Sale, error)
}
