package models

import "gorm.io/gorm"

// Contacto is a message sent through the public contact form.
type Contacto struct {
	gorm.Model
	Nombre  string `json:"nombre" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Asunto  string `json:"asunto"`
	Mensaje string `json:"mensaje" gorm:"type:text;not null"`
	Leido   bool   `json:"leido" gorm:"default:false"` // flipped when an admin reviews it
}
