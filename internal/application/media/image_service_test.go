package media_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/media"
	"github.com/jhoicas/menu-api/internal/application/ports"
	"github.com/jhoicas/menu-api/pkg/logger"
)

type stubUploader struct {
	url     string
	err     error
	calls   int
	folders []string
}

func (s *stubUploader) Upload(_ context.Context, _ ports.ImageFile, folder string) (string, error) {
	s.calls++
	s.folders = append(s.folders, folder)
	return s.url, s.err
}

var png = &ports.ImageFile{Filename: "resto.png", ContentType: "image/png", Data: []byte("fake")}

func TestUploadOrNil_Exito(t *testing.T) {
	up := &stubUploader{url: "http://fake.url/image.png"}
	svc := media.NewImageService(up, logger.Nop())

	got := svc.UploadOrNil(context.Background(), png, ports.FolderMenu)
	require.NotNil(t, got)
	assert.Equal(t, "http://fake.url/image.png", *got)
	assert.Equal(t, []string{"menu"}, up.folders)
}

func TestUploadOrNil_FalloDegrada(t *testing.T) {
	up := &stubUploader{err: errors.New("bucket no existe")}
	svc := media.NewImageService(up, logger.Nop())

	assert.Nil(t, svc.UploadOrNil(context.Background(), png, ports.FolderRestaurants))
	assert.Equal(t, 1, up.calls, "un único intento, sin reintentos")
}

func TestUploadOrNil_SinArchivoNoSube(t *testing.T) {
	up := &stubUploader{url: "x"}
	svc := media.NewImageService(up, logger.Nop())

	assert.Nil(t, svc.UploadOrNil(context.Background(), nil, ports.FolderMenu))
	assert.Nil(t, svc.UploadOrNil(context.Background(), &ports.ImageFile{Filename: "a.png"}, ports.FolderMenu))
	assert.Zero(t, up.calls)
}

func TestUploadOrNil_SinUploader(t *testing.T) {
	svc := media.NewImageService(nil, logger.Nop())
	assert.Nil(t, svc.UploadOrNil(context.Background(), png, ports.FolderMenu))
}
