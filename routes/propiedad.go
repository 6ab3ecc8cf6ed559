package routes

import (
	"encoding/json"
	"habitalink-server/models"
	"habitalink-server/storage"
	"habitalink-server/utils"
	"strconv"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	tiposPermitidos  = []string{"Casa", "Piso", "Chalet", "Atico", "Duplex", "Loft", "Apartamento"}
	estadosPropiedad = []string{"en venta", "alquiler", "reservado", "vendido"}
)

// parseCoordinate keeps the sign, unlike the price/area sanitizer.
func parseCoordinate(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func CreatePropiedad(ctx iris.Context) {
	get := ctx.FormValue

	usuarioID, _ := strconv.ParseUint(get("id_usuario"), 10, 32)
	titulo := get("titulo")
	descInmueble := firstValue(get, "desc_inmueble")
	tipo := get("tipo")
	ubicacion := get("ubicacion")

	if usuarioID == 0 || titulo == "" || descInmueble == "" || get("precio") == "" || tipo == "" || ubicacion == "" {
		utils.CreateError(iris.StatusBadRequest, "Faltan campos obligatorios", ctx)
		return
	}

	if !slices.Contains(tiposPermitidos, tipo) {
		utils.CreateError(iris.StatusBadRequest, "Tipo de inmueble no válido", ctx)
		return
	}

	estado := get("estado")
	if estado != "" && !slices.Contains(estadosPropiedad, estado) {
		utils.CreateError(iris.StatusBadRequest, "Estado no válido", ctx)
		return
	}

	imagenes, uploadErr := saveListingImages(ctx)
	if uploadErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	caracsJSON, _ := json.Marshal(parseCaracteristicas(get("caracteristicas")))
	imagenesJSON, _ := json.Marshal(imagenes)

	propiedad := models.Propiedad{
		UsuarioID:       uint(usuarioID),
		Titulo:          titulo,
		DescInmueble:    descInmueble,
		Precio:          numericValue(get, "precio"),
		NumHabitaciones: numericValue(get, "num_habitaciones"),
		NumBanos:        numericValue(get, "num_baños"),
		M2:              numericValue(get, "m2"),
		Tipo:            tipo,
		Ubicacion:       ubicacion,
		Latitude:        parseCoordinate(get("latitude")),
		Longitude:       parseCoordinate(get("longitude")),
		Caracteristicas: datatypes.JSON(caracsJSON),
		Imagenes:        datatypes.JSON(imagenesJSON),
	}

	if estado != "" {
		propiedad.Estado = estado
	}

	if err := storage.DB.Create(&propiedad).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, err.Error(), ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"success": true, "message": "Creada", "propiedadId": propiedad.ID})
}

func GetPropiedades(ctx iris.Context) {
	var propiedades []models.Propiedad
	if err := storage.DB.Order("created_at DESC").Find(&propiedades).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, err.Error(), ctx)
		return
	}

	resultado := make([]iris.Map, 0, len(propiedades))
	for i := range propiedades {
		resultado = append(resultado, propiedadResponse(&propiedades[i]))
	}

	ctx.JSON(iris.Map{"success": true, "propiedades": resultado})
}

func GetMisAnuncios(ctx iris.Context) {
	id := ctx.Params().Get("id_usuario")

	var propiedades []models.Propiedad
	if err := storage.DB.Where("usuario_id = ?", id).Order("created_at DESC").Find(&propiedades).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error al cargar anuncios", ctx)
		return
	}

	resultado := make([]iris.Map, 0, len(propiedades))
	for i := range propiedades {
		resultado = append(resultado, propiedadResponse(&propiedades[i]))
	}

	ctx.JSON(iris.Map{"success": true, "data": resultado})
}

func GetPropiedadDetalle(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var propiedad models.Propiedad
	query := storage.DB.Preload("Usuario", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, nombre, tlf, correo")
	}).Find(&propiedad, "id = ?", id)

	if query.Error != nil {
		utils.CreateError(iris.StatusInternalServerError, query.Error.Error(), ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	resultado := propiedadResponse(&propiedad)
	if propiedad.Usuario.ID > 0 {
		resultado["usuario"] = iris.Map{
			"id":     propiedad.Usuario.ID,
			"nombre": propiedad.Usuario.Nombre,
			"tlf":    propiedad.Usuario.Tlf,
			"correo": propiedad.Usuario.Correo,
		}
	}

	ctx.JSON(iris.Map{"success": true, "propiedad": resultado})
}

func EditarPropiedad(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var propiedad models.Propiedad
	query := storage.DB.Find(&propiedad, "id = ?", id)
	if query.Error != nil {
		utils.CreateError(iris.StatusInternalServerError, query.Error.Error(), ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Propiedad no encontrada", ctx)
		return
	}

	ctx.Request().ParseMultipartForm(32 << 20)
	form := ctx.FormValues()
	has := func(name string) bool {
		_, ok := form[name]
		return ok
	}

	updates := map[string]interface{}{}

	// Alias-resolved numeric fields: whichever name the client sent wins,
	// sanitized so "1.500€" or "120m2" never reach storage as text.
	numericColumns := map[string]string{
		"precio":           "precio",
		"num_habitaciones": "num_habitaciones",
		"num_baños":        "num_banos",
		"m2":               "m2",
	}
	for canonical, column := range numericColumns {
		names := append([]string{canonical}, listingAliases[canonical]...)
		for _, name := range names {
			if has(name) {
				updates[column] = utils.SanitizeNumber(ctx.FormValue(name))
				break
			}
		}
	}

	if has("descripcion") && !has("desc_inmueble") {
		updates["desc_inmueble"] = ctx.FormValue("descripcion")
	} else if has("desc_inmueble") {
		updates["desc_inmueble"] = ctx.FormValue("desc_inmueble")
	}

	for _, campo := range []string{"titulo", "tipo", "ubicacion"} {
		if has(campo) {
			updates[campo] = ctx.FormValue(campo)
		}
	}
	if has("estado") {
		estado := ctx.FormValue("estado")
		if !slices.Contains(estadosPropiedad, estado) {
			utils.CreateError(iris.StatusBadRequest, "Estado no válido", ctx)
			return
		}
		updates["estado"] = estado
	}
	for _, campo := range []string{"latitude", "longitude"} {
		if has(campo) {
			updates[campo] = parseCoordinate(ctx.FormValue(campo))
		}
	}

	if has("caracteristicas") {
		caracsJSON, _ := json.Marshal(parseCaracteristicas(ctx.FormValue("caracteristicas")))
		updates["caracteristicas"] = datatypes.JSON(caracsJSON)
	}

	// New uploads replace the image list wholesale; previous files stay on
	// disk, nothing cleans them up.
	imagenes, uploadErr := saveListingImages(ctx)
	if uploadErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if len(imagenes) > 0 {
		imagenesJSON, _ := json.Marshal(imagenes)
		updates["imagenes"] = datatypes.JSON(imagenesJSON)
	}

	if len(updates) > 0 {
		if err := storage.DB.Model(&propiedad).Updates(updates).Error; err != nil {
			utils.CreateError(iris.StatusInternalServerError, err.Error(), ctx)
			return
		}
	}

	storage.DB.Find(&propiedad, "id = ?", id)
	ctx.JSON(iris.Map{"success": true, "message": "Propiedad actualizada", "propiedad": propiedadResponse(&propiedad)})
}

// DeletePropiedad removes by id. Deleting an id that no longer exists
// still reports success, so the client can retry safely.
func DeletePropiedad(ctx iris.Context) {
	id := ctx.Params().Get("id")

	if err := storage.DB.Delete(&models.Propiedad{}, "id = ?", id).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, err.Error(), ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "message": "Propiedad eliminada"})
}
