package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/menu-api/internal/application/ports"
	"github.com/jhoicas/menu-api/internal/domain"
)

// Verificar en tiempo de compilación que SupabaseUploader implementa ImageUploader.
var _ ports.ImageUploader = (*SupabaseUploader)(nil)

// SupabaseUploader sube imágenes a un bucket público de Supabase Storage vía su API REST.
type SupabaseUploader struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

// NewSupabaseUploader construye el adaptador. baseURL es https://<proyecto>.supabase.co.
func NewSupabaseUploader(baseURL, apiKey, bucket string, timeout time.Duration) *SupabaseUploader {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SupabaseUploader{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type supabaseError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Upload guarda el archivo bajo folder/<uuid>_<nombre> y devuelve su URL pública.
// Un solo intento, sin reintentos. Todos los errores envuelven domain.ErrUpload.
func (u *SupabaseUploader) Upload(ctx context.Context, file ports.ImageFile, folder string) (string, error) {
	if u.apiKey == "" || u.baseURL == "" {
		return "", fmt.Errorf("%w: storage no configurado", domain.ErrUpload)
	}
	key := ObjectKey(folder, file.Filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.objectURL("object", key), bytes.NewReader(file.Data))
	if err != nil {
		return "", fmt.Errorf("%w: crear request: %v", domain.ErrUpload, err)
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(file.Data)
	}
	req.Header.Set("Authorization", "Bearer "+u.apiKey)
	req.Header.Set("apikey", u.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrUpload, ctx.Err())
		}
		return "", fmt.Errorf("%w: llamada HTTP fallida: %v", domain.ErrUpload, err)
	}
	defer resp.Body.Close()

	rawBody, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp supabaseError
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Message != "" {
			return "", fmt.Errorf("%w: supabase %d (%s): %s", domain.ErrUpload, resp.StatusCode, errResp.Error, errResp.Message)
		}
		return "", fmt.Errorf("%w: supabase HTTP %d: %s", domain.ErrUpload, resp.StatusCode, string(rawBody))
	}
	return u.PublicURL(key), nil
}

// PublicURL URL de lectura pública de un objeto del bucket.
func (u *SupabaseUploader) PublicURL(key string) string {
	return u.objectURL("object/public", key)
}

func (u *SupabaseUploader) objectURL(prefix, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return u.baseURL + "/storage/v1/" + prefix + "/" + url.PathEscape(u.bucket) + "/" + strings.Join(segments, "/")
}

// ObjectKey construye la clave folder/<uuid sin guiones>_<nombre saneado>.
func ObjectKey(folder, filename string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return path.Join(folder, id+"_"+SanitizeFilename(filename))
}

// SanitizeFilename quita directorios y acentos y deja solo [A-Za-z0-9._-].
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, name); err == nil {
		name = stripped
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "image"
	}
	return out
}
