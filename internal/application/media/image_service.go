// Package media aplica la política de subida de imágenes: un fallo del almacenamiento
// externo nunca aborta la operación que la contiene.
package media

import (
	"context"
	"errors"

	"github.com/jhoicas/menu-api/internal/application/ports"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// ImageService envuelve un ports.ImageUploader.
type ImageService struct {
	uploader ports.ImageUploader
	log      *logger.Logger
}

// NewImageService construye el servicio. uploader puede ser nil (sin storage configurado).
func NewImageService(uploader ports.ImageUploader, log *logger.Logger) *ImageService {
	return &ImageService{uploader: uploader, log: log}
}

// UploadOrNil sube el archivo y devuelve su URL pública. Archivo vacío, uploader ausente
// o error de subida: nil. Los errores se registran como warning.
func (s *ImageService) UploadOrNil(ctx context.Context, file *ports.ImageFile, folder string) *string {
	if file.Empty() {
		return nil
	}
	if s == nil || s.uploader == nil {
		return nil
	}
	url, err := s.uploader.Upload(ctx, *file, folder)
	if err != nil {
		if !errors.Is(err, domain.ErrUpload) {
			err = errors.Join(domain.ErrUpload, err)
		}
		s.log.Warn().Err(err).Str("folder", folder).Str("filename", file.Filename).
			Msg("subida de imagen fallida, se continúa sin imagen")
		return nil
	}
	return &url
}
