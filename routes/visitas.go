package routes

import (
	"habitalink-server/models"
	"habitalink-server/storage"
	"habitalink-server/utils"
	"time"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

var estadosVisita = []string{"pendiente", "aceptada", "rechazada", "realizada"}

type SolicitarVisitaInput struct {
	UsuarioID   uint   `json:"id_usuario" validate:"required"`
	PropiedadID uint   `json:"id_propiedad" validate:"required"`
	Fecha       string `json:"fecha" validate:"required"`
	Mensaje     string `json:"mensaje"`
}

type CambiarEstadoVisitaInput struct {
	Estado string `json:"estado" validate:"required"`
}

// parseFecha accepts the date formats the mobile client has been known to
// send.
func parseFecha(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func SolicitarVisita(ctx iris.Context) {
	var input SolicitarVisitaInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	fecha, ok := parseFecha(input.Fecha)
	if !ok {
		utils.CreateError(iris.StatusBadRequest, "Fecha no válida", ctx)
		return
	}

	visita := models.Visita{
		UsuarioID:       input.UsuarioID,
		PropiedadID:     input.PropiedadID,
		FechaSolicitada: fecha,
		Mensaje:         input.Mensaje,
		Estado:          "pendiente",
	}

	if err := storage.DB.Create(&visita).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, err.Error(), ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"success": true, "message": "Solicitud de visita enviada"})
}

// GetMisVisitas returns the visits the user requested, soonest first,
// joined with a listing summary. Visits whose listing was deleted are
// dropped.
func GetMisVisitas(ctx iris.Context) {
	id := ctx.Params().Get("id_usuario")

	var visitas []models.Visita
	err := storage.DB.Preload("Propiedad").
		Where("usuario_id = ?", id).
		Order("fecha_solicitada ASC").
		Find(&visitas).Error
	if err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error al obtener visitas", ctx)
		return
	}

	resultado := make([]iris.Map, 0, len(visitas))
	for i := range visitas {
		v := &visitas[i]
		if v.Propiedad.ID == 0 {
			continue
		}
		resultado = append(resultado, iris.Map{
			"id":               v.ID,
			"id_usuario":       v.UsuarioID,
			"id_propiedad":     v.PropiedadID,
			"fecha_solicitada": v.FechaSolicitada,
			"mensaje":          v.Mensaje,
			"estado":           v.Estado,
			"propiedad": iris.Map{
				"id":        v.Propiedad.ID,
				"titulo":    v.Propiedad.Titulo,
				"precio":    v.Propiedad.Precio,
				"ubicacion": v.Propiedad.Ubicacion,
				"imagenes":  absoluteImageURLs(v.Propiedad.ImagenesList()),
			},
		})
	}

	ctx.JSON(iris.Map{"success": true, "data": resultado})
}

// CambiarEstadoVisita sets the visit status. Transitions are caller-driven
// (an admin may move rechazada back to aceptada); only the status value
// itself is checked against the known set.
func CambiarEstadoVisita(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input CambiarEstadoVisitaInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !slices.Contains(estadosVisita, input.Estado) {
		utils.CreateError(iris.StatusBadRequest, "Estado no válido", ctx)
		return
	}

	result := storage.DB.Model(&models.Visita{}).Where("id = ?", id).Update("estado", input.Estado)
	if result.Error != nil {
		utils.CreateError(iris.StatusInternalServerError, result.Error.Error(), ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "message": "Visita " + input.Estado})
}
