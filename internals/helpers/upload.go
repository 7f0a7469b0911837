// file: internals/helpers/upload.go
package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bperformance_backend/internals/configs"
)

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return filenameRe.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename prefixes the upload with folder/date/uuid so names never clash.
func GenerateUniqueFilename(folder, original string) string {
	return fmt.Sprintf("%s/%s_%s_%s",
		folder,
		time.Now().Format("20060102"),
		uuid.NewString()[:8],
		sanitizeFilename(original),
	)
}

// SaveUpload stores a multipart file under the upload dir and returns its relative path.
func SaveUpload(c *fiber.Ctx, fileHeader *multipart.FileHeader, folder string) (string, error) {
	rel := GenerateUniqueFilename(folder, fileHeader.Filename)
	dst := filepath.Join(configs.UploadDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := c.SaveFile(fileHeader, dst); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return rel, nil
}

// SaveImageUpload stores an image and writes a 256px thumbnail next to it.
// Non-image payloads are rejected.
func SaveImageUpload(c *fiber.Ctx, fileHeader *multipart.FileHeader, folder string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp":
	default:
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	rel, err := SaveUpload(c, fileHeader, folder)
	if err != nil {
		return "", err
	}

	src := filepath.Join(configs.UploadDir, rel)
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		// keep the original, skip the thumbnail
		return rel, nil
	}
	thumb := imaging.Resize(img, 256, 0, imaging.Lanczos)
	thumbPath := thumbPathFor(src)
	_ = imaging.Save(thumb, thumbPath)
	return rel, nil
}

func thumbPathFor(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
