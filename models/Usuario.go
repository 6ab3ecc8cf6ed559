package models

import "gorm.io/gorm"

type Usuario struct {
	gorm.Model
	Nombre      string `json:"nombre"`
	Apellidos   string `json:"apellidos"`
	Tlf         string `json:"tlf"`
	Correo      string `json:"correo" gorm:"uniqueIndex;not null"`
	Contrasenia string `json:"-"`
	Tipo        string `json:"tipo" gorm:"type:varchar(50);default:'Particular';index"` // Particular, Agencia
	Rol         string `json:"rol" gorm:"type:varchar(20);default:'usuario';index"`     // usuario, admin

	Propiedades []Propiedad `json:"propiedades,omitempty" gorm:"foreignKey:UsuarioID;references:ID"`
}
