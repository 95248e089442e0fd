package repository

import "github.com/jhoicas/collectfast-api/internal/domain/entity"

// UserDirectory define el puerto de lectura del directorio de usuarios (DIP).
// El directorio es estático: se puebla una vez al arrancar y no muta.
type UserDirectory interface {
	GetByID(id string) *entity.User
	GetByEmail(email string) *entity.User
	// FirstAccountant devuelve el primer usuario marcado como contador,
	// o nil si no existe ninguno.
	FirstAccountant() *entity.User
	// DefaultUser devuelve el usuario designado por defecto del prototipo.
	DefaultUser() *entity.User
	List() []*entity.User
}
