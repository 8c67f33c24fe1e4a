package repository

import "github.com/jhoicas/Jugueteria-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Create devuelve domain.ErrDuplicate si el nombre ya existe (constraint único);
// GetByName devuelve (nil, nil) si no hay categoría con ese nombre.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
