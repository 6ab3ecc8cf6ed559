package routes

import (
	"habitalink-server/models"
	"habitalink-server/storage"
	"habitalink-server/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/stats/admin
func GetEstadisticasAdmin(ctx iris.Context) {
	var totalUsuarios, totalPropiedades int64
	storage.DB.Model(&models.Usuario{}).Count(&totalUsuarios)
	storage.DB.Model(&models.Propiedad{}).Count(&totalPropiedades)

	distribucion, err := countPorTipo(&models.Usuario{}, "Sin definir")
	if err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error stats", ctx)
		return
	}

	// The dashboard chart labels this series "rol" even though it groups
	// by account type.
	series := make([]iris.Map, 0, len(distribucion))
	for _, d := range distribucion {
		series = append(series, iris.Map{"rol": d.Tipo, "cantidad": d.Cantidad})
	}

	ctx.JSON(iris.Map{
		"success":              true,
		"totalUsuarios":        totalUsuarios,
		"totalPropiedades":     totalPropiedades,
		"distribucionUsuarios": series,
	})
}

// GET /api/stats/agencia/{id_usuario}. Per-owner dashboard: the owner's
// listing counts grouped by estado plus visit traffic on those listings.
func GetEstadisticasAgencia(ctx iris.Context) {
	id := ctx.Params().Get("id_usuario")

	type estadoCount struct {
		Estado   string `json:"estado"`
		Cantidad int64  `json:"cantidad"`
	}
	var porEstado []estadoCount
	err := storage.DB.Model(&models.Propiedad{}).
		Select("estado, COUNT(*) AS cantidad").
		Where("usuario_id = ?", id).
		Group("estado").
		Scan(&porEstado).Error
	if err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error stats", ctx)
		return
	}
	if porEstado == nil {
		porEstado = []estadoCount{}
	}

	var totalAnuncios int64
	storage.DB.Model(&models.Propiedad{}).Where("usuario_id = ?", id).Count(&totalAnuncios)

	var propiedadIDs []uint
	storage.DB.Model(&models.Propiedad{}).Where("usuario_id = ?", id).Pluck("id", &propiedadIDs)

	var totalVisitas, visitasPendientes int64
	if len(propiedadIDs) > 0 {
		storage.DB.Model(&models.Visita{}).Where("propiedad_id IN ?", propiedadIDs).Count(&totalVisitas)
		storage.DB.Model(&models.Visita{}).
			Where("propiedad_id IN ? AND estado = ?", propiedadIDs, "pendiente").
			Count(&visitasPendientes)
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data": iris.Map{
			"anunciosPorEstado": porEstado,
			"totalAnuncios":     totalAnuncios,
			"totalVisitas":      totalVisitas,
			"visitasPendientes": visitasPendientes,
		},
	})
}
