package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

func buildAuthTestApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()
	app.Post("/api/auth/register", Register)
	app.Build()
	return app
}

func postJSON(app *iris.Application, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestRegisterValidation(t *testing.T) {
	app := buildAuthTestApp()

	cases := []struct {
		name string
		body string
	}{
		{"empty payload", `{}`},
		{"bad email", `{"nombre":"Ana","correo":"not-an-email","contrasenia":"secreta1"}`},
		{"short password", `{"nombre":"Ana","correo":"ana@test.com","contrasenia":"abc"}`},
		{"malformed JSON", `{"nombre":`},
	}

	for _, tc := range cases {
		resp := postJSON(app, "/api/auth/register", tc.body)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, resp.Code)
		}
		if !strings.Contains(resp.Body.String(), `"success":false`) {
			t.Errorf("%s: expected error envelope, got %s", tc.name, resp.Body.String())
		}
	}
}

func TestHashAndSaltPassword(t *testing.T) {
	hash, err := hashAndSaltPassword("secreta1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secreta1" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("secreta1")); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("otra")); err == nil {
		t.Error("wrong password verified")
	}
}
