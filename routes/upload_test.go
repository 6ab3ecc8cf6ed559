package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kataras/iris/v12"
)

func multipartImages(t *testing.T, count int) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for i := 0; i < count; i++ {
		part, err := writer.CreateFormFile("imagenes", fmt.Sprintf("foto%d.jpg", i))
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		part.Write([]byte("not-a-real-jpeg"))
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestSaveListingImages(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOADS_DIR", dir)

	app := iris.New()
	app.Post("/test", func(ctx iris.Context) {
		paths, err := saveListingImages(ctx)
		if err != nil {
			ctx.StopWithStatus(iris.StatusInternalServerError)
			return
		}
		ctx.JSON(paths)
	})
	app.Build()

	body, contentType := multipartImages(t, 2)
	req := httptest.NewRequest(http.MethodPost, "/test", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var paths []string
	if err := json.Unmarshal(resp.Body.Bytes(), &paths); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	for _, p := range paths {
		if !strings.HasPrefix(p, "/uploads/") {
			t.Errorf("path %q should be relative to /uploads", p)
		}
		if _, err := os.Stat(filepath.Join(dir, strings.TrimPrefix(p, "/uploads/"))); err != nil {
			t.Errorf("file for %q not written: %v", p, err)
		}
	}
}

func TestSaveListingImagesCapsAtFive(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOADS_DIR", dir)

	app := iris.New()
	app.Post("/test", func(ctx iris.Context) {
		paths, _ := saveListingImages(ctx)
		ctx.JSON(paths)
	})
	app.Build()

	body, contentType := multipartImages(t, 7)
	req := httptest.NewRequest(http.MethodPost, "/test", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	var paths []string
	if err := json.Unmarshal(resp.Body.Bytes(), &paths); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(paths) != maxListingImages {
		t.Fatalf("expected %d paths, got %d", maxListingImages, len(paths))
	}
}

func TestSaveListingImagesWithoutAttachments(t *testing.T) {
	app := iris.New()
	app.Post("/test", func(ctx iris.Context) {
		paths, err := saveListingImages(ctx)
		if err != nil {
			ctx.StopWithStatus(iris.StatusInternalServerError)
			return
		}
		ctx.JSON(iris.Map{"count": len(paths)})
	})
	app.Build()

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("titulo=Piso"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"count":0`) {
		t.Fatalf("expected zero saved images, got %s", resp.Body.String())
	}
}
