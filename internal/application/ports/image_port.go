package ports

import "context"

// Carpetas del bucket según el origen de la imagen.
const (
	FolderRestaurants = "restaurants"
	FolderMenu        = "menu"       // alta de platillo
	FolderMenuItems   = "menu_items" // reemplazo de imagen de un platillo
)

// ImageFile archivo recibido en un formulario multipart.
type ImageFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Empty indica que no se envió archivo.
func (f *ImageFile) Empty() bool {
	return f == nil || len(f.Data) == 0
}

// ImageUploader puerto hacia el almacenamiento externo de imágenes.
// Upload devuelve la URL pública del objeto. Cualquier fallo se devuelve como error;
// los casos de uso lo degradan a "sin imagen" en lugar de abortar la operación.
type ImageUploader interface {
	Upload(ctx context.Context, file ImageFile, folder string) (string, error)
}
