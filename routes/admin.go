package routes

import (
	"habitalink-server/models"
	"habitalink-server/storage"
	"habitalink-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// tipoCount is one row of a count-per-distinct-value aggregation.
type tipoCount struct {
	Tipo     string `json:"tipo"`
	Cantidad int64  `json:"cantidad"`
}

func countPorTipo(model interface{}, fallback string) ([]tipoCount, error) {
	var rows []tipoCount
	err := storage.DB.Model(model).
		Select("tipo, COUNT(*) AS cantidad").
		Group("tipo").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].Tipo == "" {
			rows[i].Tipo = fallback
		}
	}
	if rows == nil {
		rows = []tipoCount{}
	}
	return rows, nil
}

// GET /api/admin/users
func AdminListUsers(ctx iris.Context) {
	var usuarios []models.Usuario
	if err := storage.DB.Find(&usuarios).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error al obtener usuarios", ctx)
		return
	}

	resultado := make([]iris.Map, 0, len(usuarios))
	for _, u := range usuarios {
		resultado = append(resultado, iris.Map{
			"id":        u.ID,
			"nombre":    u.Nombre,
			"apellidos": u.Apellidos,
			"correo":    u.Correo,
			"tlf":       u.Tlf,
			"tipo":      u.Tipo,
			"rol":       u.Rol,
		})
	}

	ctx.JSON(iris.Map{"success": true, "users": resultado})
}

// DELETE /api/admin/users/{id}. Listings and favorites pointing at the
// user are left in place; reads filter the orphans.
func AdminDeleteUser(ctx iris.Context) {
	id := ctx.Params().Get("id")

	if err := storage.DB.Delete(&models.Usuario{}, "id = ?", id).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error eliminando usuario", ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "message": "Usuario eliminado"})
}

// GET /api/admin/properties. The admin panel expects "nombre" for the
// title and the owner's email under "propietario".
func AdminListProperties(ctx iris.Context) {
	var propiedades []models.Propiedad
	err := storage.DB.Preload("Usuario", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, correo")
	}).Find(&propiedades).Error
	if err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error obteniendo propiedades", ctx)
		return
	}

	resultado := make([]iris.Map, 0, len(propiedades))
	for i := range propiedades {
		p := &propiedades[i]
		propietario := "Eliminado"
		if p.Usuario.ID > 0 {
			propietario = p.Usuario.Correo
		}
		resultado = append(resultado, iris.Map{
			"id":          p.ID,
			"nombre":      p.Titulo,
			"precio":      p.Precio,
			"tipo":        p.Tipo,
			"estado":      p.Estado,
			"ubicacion":   p.Ubicacion,
			"propietario": propietario,
		})
	}

	ctx.JSON(iris.Map{"success": true, "properties": resultado})
}

// DELETE /api/admin/properties/{id}
func AdminDeleteProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	if err := storage.DB.Delete(&models.Propiedad{}, "id = ?", id).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error eliminando propiedad", ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "message": "Propiedad eliminada"})
}

type AdminStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// PUT /api/admin/properties/{id}/status
func AdminUpdatePropertyStatus(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input AdminStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !slices.Contains(estadosPropiedad, input.Status) {
		utils.CreateError(iris.StatusBadRequest, "Estado no válido", ctx)
		return
	}

	result := storage.DB.Model(&models.Propiedad{}).Where("id = ?", id).Update("estado", input.Status)
	if result.Error != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error actualizando estado", ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "message": "Estado actualizado"})
}

// GET /api/admin/informe. Dashboard payload: totals plus count-per-tipo
// for users and listings.
func AdminInforme(ctx iris.Context) {
	usuariosTipo, err := countPorTipo(&models.Usuario{}, "Otro")
	if err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error generando informe", ctx)
		return
	}

	anunciosPorTipo, err := countPorTipo(&models.Propiedad{}, "Otro")
	if err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error generando informe", ctx)
		return
	}

	var totalUsuarios, totalPropiedades int64
	storage.DB.Model(&models.Usuario{}).Count(&totalUsuarios)
	storage.DB.Model(&models.Propiedad{}).Count(&totalPropiedades)

	ctx.JSON(iris.Map{
		"success": true,
		"data": iris.Map{
			"usuariosTipo":    usuariosTipo,
			"anunciosPorTipo": anunciosPorTipo,
			"usuariosActivos": totalUsuarios,
			"totalAnuncios":   totalPropiedades,
		},
	})
}
