package routes

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/kataras/iris/v12"
)

const maxListingImages = 5

func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveListingImages stores the multipart "imagenes" files (at most five)
// under the uploads dir with unique names and returns their public
// relative paths. A request without attachments yields an empty slice.
func saveListingImages(ctx iris.Context) ([]string, error) {
	ctx.Request().ParseMultipartForm(32 << 20)

	form := ctx.Request().MultipartForm
	if form == nil {
		return []string{}, nil
	}

	files := form.File["imagenes"]
	if len(files) > maxListingImages {
		files = files[:maxListingImages]
	}

	dir := UploadsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for i, file := range files {
		filename := fmt.Sprintf("%d-%d-%d%s",
			time.Now().UnixMilli(), rand.Intn(1_000_000_000), i, filepath.Ext(file.Filename))
		if _, err := ctx.SaveFormFile(file, filepath.Join(dir, filename)); err != nil {
			return nil, err
		}
		paths = append(paths, "/uploads/"+filename)
	}

	return paths, nil
}
