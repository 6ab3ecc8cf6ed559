package main

import (
	"habitalink-server/routes"
	"habitalink-server/storage"
	"habitalink-server/utils"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	// Initialize services
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// JWT verifiers
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	// Health check endpoint
	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	// Uploaded listing images are served as static files
	uploadsDir := routes.UploadsDir()
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		log.Panic("could not create uploads dir: " + err.Error())
	}
	app.HandleDir("/uploads", iris.Dir(uploadsDir))

	auth := app.Party("/api/auth")
	{
		auth.Post("/register", routes.Register)
		auth.Post("/login", routes.Login)
	}

	user := app.Party("/api/user")
	{
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
	}

	propiedades := app.Party("/api/propiedades")
	{
		propiedades.Post("/crear", routes.CreatePropiedad)
		propiedades.Get("/", routes.GetPropiedades)
		propiedades.Get("/usuario/{id_usuario}", routes.GetMisAnuncios)
		propiedades.Get("/{id}", routes.GetPropiedadDetalle)
		propiedades.Put("/editar/{id}", routes.EditarPropiedad)
		propiedades.Delete("/{id}", routes.DeletePropiedad)
	}

	favoritos := app.Party("/api/favoritos")
	{
		favoritos.Get("/user/{id}", accessTokenVerifierMiddleware, utils.UserIDMiddleware, routes.GetFavoritosPorUsuario)
		favoritos.Post("/add", routes.AnadirFavorito)
		favoritos.Delete("/remove", routes.EliminarFavorito)
	}

	visitas := app.Party("/api/visitas")
	{
		visitas.Post("/solicitar", routes.SolicitarVisita)
		visitas.Get("/usuario/{id_usuario}", routes.GetMisVisitas)
		visitas.Put("/{id}/estado", routes.CambiarEstadoVisita)
	}

	contacto := app.Party("/api/contacto")
	{
		contacto.Post("/", routes.EnviarMensaje)
		contacto.Get("/", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.GetMensajes)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/users", routes.AdminListUsers)
		admin.Delete("/users/{id}", routes.AdminDeleteUser)
		admin.Get("/properties", routes.AdminListProperties)
		admin.Delete("/properties/{id}", routes.AdminDeleteProperty)
		admin.Put("/properties/{id}/status", routes.AdminUpdatePropertyStatus)
		admin.Get("/informe", routes.AdminInforme)
	}

	stats := app.Party("/api/stats")
	{
		stats.Get("/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.GetEstadisticasAdmin)
		stats.Get("/agencia/{id_usuario}", routes.GetEstadisticasAgencia)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	app.Listen(":" + port)
}
