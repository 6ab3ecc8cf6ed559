package routes

import (
	"habitalink-server/models"
	"habitalink-server/storage"
	"habitalink-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm/clause"
)

type FavoritoInput struct {
	UsuarioID   uint `json:"id_usuario" validate:"required"`
	PropiedadID uint `json:"id_propiedad" validate:"required"`
}

// AnadirFavorito is an upsert on the (usuario, propiedad) pair: re-adding
// an existing favorite is a no-op, never a duplicate and never an error.
func AnadirFavorito(ctx iris.Context) {
	var input FavoritoInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	favorito := models.Favorito{
		UsuarioID:   input.UsuarioID,
		PropiedadID: input.PropiedadID,
	}

	result := storage.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "usuario_id"}, {Name: "propiedad_id"}},
		DoNothing: true,
	}).Create(&favorito)

	if result.Error != nil {
		utils.CreateError(iris.StatusInternalServerError, result.Error.Error(), ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"success": true})
}

// EliminarFavorito deletes by pair; removing an absent pair still succeeds.
func EliminarFavorito(ctx iris.Context) {
	var input FavoritoInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	result := storage.DB.
		Where("usuario_id = ? AND propiedad_id = ?", input.UsuarioID, input.PropiedadID).
		Delete(&models.Favorito{})

	if result.Error != nil {
		utils.CreateError(iris.StatusInternalServerError, result.Error.Error(), ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "message": "Eliminado"})
}

// GetFavoritosPorUsuario lists a user's favorites joined with a listing
// summary, silently dropping entries whose listing no longer resolves.
func GetFavoritosPorUsuario(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var favoritos []models.Favorito
	if err := storage.DB.Preload("Propiedad").Where("usuario_id = ?", id).Find(&favoritos).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, err.Error(), ctx)
		return
	}

	resultado := make([]iris.Map, 0, len(favoritos))
	for i := range favoritos {
		p := &favoritos[i].Propiedad
		if p.ID == 0 {
			continue // the listing was deleted after the favorite was saved
		}
		resultado = append(resultado, iris.Map{
			"id":        p.ID,
			"titulo":    p.Titulo,
			"precio":    p.Precio,
			"imagenes":  absoluteImageURLs(p.ImagenesList()),
			"ubicacion": p.Ubicacion,
			"tipo":      p.Tipo,
			"m2":        p.M2,
		})
	}

	ctx.JSON(resultado)
}
