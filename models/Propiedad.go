package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Propiedad struct {
	gorm.Model
	UsuarioID       uint           `json:"id_usuario" gorm:"index;not null"`
	Titulo          string         `json:"titulo" gorm:"not null"`
	DescInmueble    string         `json:"desc_inmueble" gorm:"column:desc_inmueble;type:text;not null"`
	Precio          float64        `json:"precio" gorm:"not null"`
	NumHabitaciones float64        `json:"num_habitaciones" gorm:"default:0"`
	NumBanos        float64        `json:"num_baños" gorm:"column:num_banos;default:0"`
	M2              float64        `json:"m2" gorm:"default:0"`
	Tipo            string         `json:"tipo" gorm:"type:varchar(20);not null;index"` // Casa, Piso, Chalet, Atico, Duplex, Loft, Apartamento
	Estado          string         `json:"estado" gorm:"type:varchar(20);default:'en venta';index"` // en venta, alquiler, reservado, vendido
	Ubicacion       string         `json:"ubicacion" gorm:"not null"`
	Latitude        float64        `json:"latitude" gorm:"default:0"`
	Longitude       float64        `json:"longitude" gorm:"default:0"`
	Caracteristicas datatypes.JSON `json:"caracteristicas"`
	Imagenes        datatypes.JSON `json:"imagenes"` // relative paths under /uploads

	Usuario Usuario `json:"usuario,omitempty" gorm:"foreignKey:UsuarioID;references:ID"`
}

// CaracteristicasList decodes the stored JSON column into a string slice.
func (p *Propiedad) CaracteristicasList() []string {
	out := []string{}
	if p.Caracteristicas != nil {
		json.Unmarshal(p.Caracteristicas, &out)
	}
	return out
}

// ImagenesList decodes the stored JSON column into a string slice.
func (p *Propiedad) ImagenesList() []string {
	out := []string{}
	if p.Imagenes != nil {
		json.Unmarshal(p.Imagenes, &out)
	}
	return out
}

// Custom JSON marshaling so the JSON columns serialize as arrays and the
// owner is only included when it was actually loaded.
func (p *Propiedad) MarshalJSON() ([]byte, error) {
	type Alias Propiedad
	aux := &struct {
		Caracteristicas []string `json:"caracteristicas"`
		Imagenes        []string `json:"imagenes"`
		Usuario         *Usuario `json:"usuario,omitempty"`
		*Alias
	}{
		Caracteristicas: p.CaracteristicasList(),
		Imagenes:        p.ImagenesList(),
		Alias:           (*Alias)(p),
	}

	if p.Usuario.ID > 0 {
		owner := p.Usuario
		owner.Propiedades = nil // avoid circular reference
		aux.Usuario = &owner
	}

	return json.Marshal(aux)
}
