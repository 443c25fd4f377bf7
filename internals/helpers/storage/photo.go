package storage

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"videira_backend/internals/configs"
)

// Lado máximo da foto de contato; acima disso a imagem é reduzida.
const maxPhotoSide = 512

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeChars.ReplaceAllString(filename, "_")
}

func uniqueFilename(folder, original string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s.webp", folder, timestamp, uuid.New().String(), sanitizeFilename(original))
}

// SaveContactPhoto grava a foto no disco público já convertida para WebP
// e retorna a URL pública servida pelo próprio app.
func SaveContactPhoto(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("falha ao abrir a imagem: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("imagem inválida: %w", err)
	}

	// Reduz mantendo proporção; Fit não aumenta imagens menores
	img = imaging.Fit(img, maxPhotoSide, maxPhotoSide, imaging.Lanczos)

	name := uniqueFilename(folder, fileHeader.Filename)
	fullPath := filepath.Join(configs.UploadDir, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("falha ao criar diretório de upload: %w", err)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("falha ao criar arquivo: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("falha ao converter para webp: %w", err)
	}

	publicURL := fmt.Sprintf("%s/uploads/%s", configs.PublicBaseURL, pathEscapeSegments(name))
	return publicURL, nil
}

// name sempre usa "/" como separador (montado acima), então basta escapar segmento a segmento
func pathEscapeSegments(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
