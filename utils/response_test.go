package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kataras/iris/v12"
)

// serveWith runs a single handler through the router so the recorded
// response carries the real status code and body.
func serveWith(handler iris.Handler) *httptest.ResponseRecorder {
	app := iris.New()
	app.Get("/t", handler)
	app.Build()

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", resp.Body.String(), err)
	}
	return body
}

func TestCreateEmailAlreadyRegistered(t *testing.T) {
	resp := serveWith(CreateEmailAlreadyRegistered)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if body["message"] != "El correo ya está registrado." {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestCreateNotFound(t *testing.T) {
	resp := serveWith(CreateNotFound)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["message"] != "No encontrada" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestHandleValidationErrorsFallback(t *testing.T) {
	resp := serveWith(func(ctx iris.Context) {
		HandleValidationErrors(errors.New("unexpected EOF"), ctx)
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["message"] != "Petición inválida" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}
