package routes

import (
	"habitalink-server/utils"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// buildFavoritosGuardApp mounts the favorites list route behind the same
// middleware chain main.go uses, with a stub handler so no database is needed.
func buildFavoritosGuardApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	favoritos := app.Party("/api/favoritos")
	{
		favoritos.Get("/user/{id}", accessTokenVerifierMiddleware, utils.UserIDMiddleware, func(ctx iris.Context) {
			ctx.JSON(iris.Map{"success": true})
		})
	}

	app.Build()
	return app
}

// A user can only list their own favorites: the {id} path parameter has to
// match the id carried in the access token.
func TestFavoritosUserIDGuard(t *testing.T) {
	app := buildFavoritosGuardApp()

	// No token
	req := httptest.NewRequest(http.MethodGet, "/api/favoritos/user/1", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK {
		t.Fatalf("expected non-200 without token, got %d", resp.Code)
	}

	// Token for user 1 asking for user 2's list
	req2 := httptest.NewRequest(http.MethodGet, "/api/favoritos/user/2", nil)
	req2.Header.Set("Authorization", "Bearer "+signTestToken(t, "usuario"))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for mismatched id, got %d", resp2.Code)
	}

	// Token for user 1 asking for their own list
	req3 := httptest.NewRequest(http.MethodGet, "/api/favoritos/user/1", nil)
	req3.Header.Set("Authorization", "Bearer "+signTestToken(t, "usuario"))
	resp3 := httptest.NewRecorder()
	app.ServeHTTP(resp3, req3)
	if resp3.Code != http.StatusOK {
		t.Fatalf("expected 200 for matching id, got %d", resp3.Code)
	}
}
