package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// Every response uses the same envelope the mobile client expects:
// { "success": bool, "message": string, ... }.

func CreateError(statusCode int, message string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{"success": false, "message": message})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Error en el servidor", ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "No encontrada", ctx)
}

func CreateEmailAlreadyRegistered(ctx iris.Context) {
	CreateError(iris.StatusConflict, "El correo ya está registrado.", ctx)
}

// HandleValidationErrors maps validator failures from ctx.ReadJSON into a
// 400 envelope listing the offending fields; anything else is a malformed
// payload and also answered with 400.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, fieldErr.Field())
		}
		CreateError(iris.StatusBadRequest, "Campos inválidos: "+strings.Join(fields, ", "), ctx)
		return
	}

	CreateError(iris.StatusBadRequest, "Petición inválida", ctx)
}
