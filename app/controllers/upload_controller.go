package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/liberiadate/liberiadate/internal/pkg/upload"
)

// maxMediaFileBytes caps a single uploaded photo or video.
const maxMediaFileBytes = 50 * 1024 * 1024

// photoFields are the multipart field names that must carry images; the
// remaining required field, introVideo, carries the video.
var photoFields = []string{"cardPhoto", "fullBodyPhoto1", "fullBodyPhoto2"}

// UploadController stores submitted profile media on local disk under
// randomized names and hands back the public /uploads URLs.
type UploadController struct {
	dir string
}

func NewUploadController(dir string) *UploadController {
	return &UploadController{dir: dir}
}

// HandleUploadMedia accepts the three photos and one intro video of a
// profile submission in a single multipart request.
// POST /api/upload-media
func (uc *UploadController) HandleUploadMedia(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Media upload failed.")
	}
	defer form.RemoveAll()

	fields := append(append([]string{}, photoFields...), "introVideo")

	files := make(map[string]*multipart.FileHeader)
	for _, field := range fields {
		headers := form.File[field]
		if len(headers) == 0 {
			return jsonError(c, fiber.StatusBadRequest, "3 photos and 1 intro video are required.")
		}
		files[field] = headers[0]
	}

	// Validate everything before storing anything, so a rejected part never
	// leaves orphaned files behind.
	for _, field := range fields {
		header := files[field]
		if header.Size > maxMediaFileBytes {
			return jsonError(c, fiber.StatusBadRequest, "Media files must be 50 MB or smaller.")
		}

		head, err := readFileHead(header)
		if err != nil {
			fiberlog.Errorf("upload sniff failed for %s: %v", field, err)
			return jsonError(c, fiber.StatusBadRequest, "Media upload failed.")
		}

		if field == "introVideo" {
			if _, err := upload.ValidateVideoBySniff(header.Filename, head); err != nil {
				return jsonError(c, fiber.StatusBadRequest, err.Error())
			}
		} else {
			if _, err := upload.ValidateImageBySniff(header.Filename, head); err != nil {
				return jsonError(c, fiber.StatusBadRequest, err.Error())
			}
		}
	}

	media := fiber.Map{}
	for _, field := range fields {
		header := files[field]
		name := randomizedFilename(header.Filename)
		if err := c.SaveFile(header, filepath.Join(uc.dir, name)); err != nil {
			fiberlog.Errorf("upload save failed for %s: %v", field, err)
			return jsonError(c, fiber.StatusInternalServerError, "Unable to store the uploaded media.")
		}
		media[field] = "/uploads/" + name
	}

	return c.JSON(fiber.Map{"media": media})
}

// readFileHead returns the first bytes of the upload for content sniffing.
func readFileHead(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return head[:n], nil
}

// randomizedFilename keeps only the (lowercased) extension of the original
// name; the rest is unguessable so uploads cannot be enumerated.
func randomizedFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}
