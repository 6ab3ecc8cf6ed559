package routes

import (
	"habitalink-server/models"
	"habitalink-server/storage"
	"habitalink-server/utils"

	"github.com/kataras/iris/v12"
)

type ContactoInput struct {
	Nombre  string `json:"nombre" validate:"required,max=256"`
	Email   string `json:"email" validate:"required,email,max=256"`
	Asunto  string `json:"asunto" validate:"max=256"`
	Mensaje string `json:"mensaje" validate:"required"`
}

// EnviarMensaje accepts a contact-form message; no authentication.
func EnviarMensaje(ctx iris.Context) {
	var input ContactoInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	mensaje := models.Contacto{
		Nombre:  input.Nombre,
		Email:   input.Email,
		Asunto:  input.Asunto,
		Mensaje: input.Mensaje,
	}

	if err := storage.DB.Create(&mensaje).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Error al enviar mensaje", ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"success": true, "message": "Mensaje enviado correctamente"})
}

// GetMensajes lists every contact message, newest first.
func GetMensajes(ctx iris.Context) {
	var mensajes []models.Contacto
	if err := storage.DB.Order("created_at DESC").Find(&mensajes).Error; err != nil {
		utils.CreateError(iris.StatusInternalServerError, err.Error(), ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "data": mensajes})
}
