package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".avif": true,
	".bmp":  true,
	// Note: SVG is intentionally excluded due to XSS risk without sanitization
}

var allowedImageMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/avif": true,
	"image/bmp":  true,
}

var allowedVideoExt = map[string]bool{
	".mp4":  true,
	".m4v":  true,
	".webm": true,
	".mov":  true,
	".ogv":  true,
}

var allowedVideoMime = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/ogg":       true,
	"video/quicktime": true,
}

// ValidateImageBySniff checks the provided filename (extension) and the first
// bytes (head) against a whitelist of image types. Returns the detected mime
// or an error.
func ValidateImageBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExt[ext] {
		return "", errors.New("Photo uploads must be image files (JPG, JPEG, PNG, GIF, WEBP, AVIF, BMP).")
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", errors.New("Invalid file type: HTML content is not allowed.")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", errors.New("SVG/XML uploads are not supported.")
	}

	// Some formats (e.g., AVIF) may return octet-stream depending on Go version; allow by extension
	if detected == "application/octet-stream" && allowedImageExt[ext] {
		return detected, nil
	}

	if allowedImageMime[detected] {
		return detected, nil
	}

	return "", errors.New("Photo uploads must be image files.")
}

// ValidateVideoBySniff checks the intro video by extension and sniffed
// content type.
func ValidateVideoBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedVideoExt[ext] {
		return "", errors.New("Intro video must be a video file (MP4, M4V, WEBM, MOV, OGV).")
	}

	detected := http.DetectContentType(head)

	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", errors.New("Invalid file type: HTML content is not allowed.")
	}

	// MOV and some MP4 variants sniff as octet-stream; allow by extension
	if detected == "application/octet-stream" && allowedVideoExt[ext] {
		return detected, nil
	}

	if allowedVideoMime[detected] || strings.HasPrefix(detected, "video/") {
		return detected, nil
	}

	return "", errors.New("Intro video must be a video file.")
}
