package models

import (
	"time"

	"gorm.io/gorm"
)

type Visita struct {
	gorm.Model
	UsuarioID       uint      `json:"id_usuario" gorm:"index;not null"`
	PropiedadID     uint      `json:"id_propiedad" gorm:"index;not null"`
	FechaSolicitada time.Time `json:"fecha_solicitada" gorm:"not null"`
	Mensaje         string    `json:"mensaje"`
	Estado          string    `json:"estado" gorm:"type:varchar(20);default:'pendiente';index"` // pendiente, aceptada, rechazada, realizada

	Propiedad Propiedad `json:"propiedad,omitempty" gorm:"foreignKey:PropiedadID;references:ID"`
}
