package routes

import (
	"habitalink-server/models"
	"habitalink-server/storage"
	"habitalink-server/utils"
	"strings"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

func Register(ctx iris.Context) {
	var userInput RegisterInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var newUsuario models.Usuario
	usuarioExists, usuarioExistsErr := getAndHandleUsuarioExists(&newUsuario, userInput.Correo)
	if usuarioExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if usuarioExists {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Contrasenia)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	tipo := userInput.Tipo
	if tipo == "" {
		tipo = "Particular"
	}

	newUsuario = models.Usuario{
		Nombre:      userInput.Nombre,
		Apellidos:   userInput.Apellidos,
		Tlf:         userInput.Tlf,
		Correo:      strings.ToLower(userInput.Correo),
		Contrasenia: hashedPassword,
		Tipo:        tipo,
		Rol:         "usuario",
	}

	if err := storage.DB.Create(&newUsuario).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"success": true,
		"message": "Usuario registrado correctamente.",
		"tipo":    newUsuario.Tipo,
	})
}

func Login(ctx iris.Context) {
	var userInput LoginInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// Same message whether the email is unknown or the password mismatches.
	errorMsg := "Correo o contraseña incorrectos."

	var existingUsuario models.Usuario
	usuarioExists, usuarioExistsErr := getAndHandleUsuarioExists(&existingUsuario, userInput.Correo)
	if usuarioExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !usuarioExists {
		utils.CreateError(iris.StatusUnauthorized, errorMsg, ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUsuario.Contrasenia), []byte(userInput.Contrasenia))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, errorMsg, ctx)
		return
	}

	returnUsuario(existingUsuario, ctx)
}

func returnUsuario(usuario models.Usuario, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(usuario.ID)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"message": "Login exitoso",
		"user": iris.Map{
			"id":     usuario.ID,
			"nombre": usuario.Nombre,
			"email":  usuario.Correo,
			"rol":    usuario.Rol,
			"tipo":   usuario.Tipo,
		},
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

func getAndHandleUsuarioExists(usuario *models.Usuario, correo string) (exists bool, err error) {
	usuarioExistsQuery := storage.DB.Where("correo = ?", strings.ToLower(correo)).Limit(1).Find(usuario)

	if usuarioExistsQuery.Error != nil {
		return false, usuarioExistsQuery.Error
	}

	return usuarioExistsQuery.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (hashedPassword string, err error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

type RegisterInput struct {
	Nombre      string `json:"nombre" validate:"required,max=256"`
	Apellidos   string `json:"apellidos" validate:"max=256"`
	Tlf         string `json:"tlf" validate:"max=32"`
	Correo      string `json:"correo" validate:"required,max=256,email"`
	Contrasenia string `json:"contrasenia" validate:"required,min=6,max=256"`
	Tipo        string `json:"tipo" validate:"max=50"`
}

type LoginInput struct {
	Correo      string `json:"correo" validate:"required,email"`
	Contrasenia string `json:"contrasenia" validate:"required"`
}
