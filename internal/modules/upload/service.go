package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTooLarge      = errors.New("file too large")
	ErrBadExtension  = errors.New("file type not allowed")
	ErrEmptyFile     = errors.New("empty file")
	ErrInvalidBase64 = errors.New("invalid base64 payload")
)

// allowed upload extensions, lowercase with dot
var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".pdf":  true,
}

const MaxFileSize = 5 << 20

// Service stores uploads on local disk under dir/<folder>/<uuid><ext> and
// returns URLs below baseURL.
type Service struct {
	dir     string
	baseURL string
}

func NewService(dir, baseURL string) *Service {
	return &Service{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *Service) SaveMultipart(fh *multipart.FileHeader, folder string) (string, error) {
	if fh.Size == 0 {
		return "", ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", ErrBadExtension
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return s.write(src, folder, ext)
}

// SaveBase64 handles the JSON variant: a data-URL or bare base64 payload
// plus the original filename for the extension.
func (s *Service) SaveBase64(payload, filename, folder string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", ErrBadExtension
	}

	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidBase64
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if len(data) > MaxFileSize {
		return "", ErrTooLarge
	}

	return s.write(strings.NewReader(string(data)), folder, ext)
}

func (s *Service) write(src io.Reader, folder, ext string) (string, error) {
	folder = sanitizeFolder(folder)

	dir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, folder, name), nil
}

// sanitizeFolder keeps uploads inside the storage root.
func sanitizeFolder(folder string) string {
	folder = strings.Trim(filepath.Clean("/"+folder), "/")
	if folder == "" || folder == "." {
		return "misc"
	}
	return folder
}
