package models

import "time"

// Favorito links a user to a saved listing. The (usuario, propiedad) pair
// is unique so re-adding the same favorite can never create a duplicate.
// Rows are hard-deleted: a soft-deleted row would still occupy the unique
// pair and block the upsert on re-add.
type Favorito struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UsuarioID   uint      `json:"id_usuario" gorm:"uniqueIndex:idx_favoritos_usuario_propiedad;not null"`
	PropiedadID uint      `json:"id_propiedad" gorm:"uniqueIndex:idx_favoritos_usuario_propiedad;not null"`
	CreatedAt   time.Time `json:"fecha"`

	Usuario   Usuario   `json:"-" gorm:"foreignKey:UsuarioID;references:ID"`
	Propiedad Propiedad `json:"propiedad,omitempty" gorm:"foreignKey:PropiedadID;references:ID"`
}
