package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/ports"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/infrastructure/storage"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"logo.png", "logo.png"},
		{"Niño Piña.JPG", "Nino_Pina.JPG"},
		{"../../etc/passwd", "passwd"},
		{`C:\fotos\menú del día.png`, "menu_del_dia.png"},
		{"¿?¡!", "image"},
		{"", "image"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, storage.SanitizeFilename(tc.in), tc.in)
	}
}

func TestObjectKey(t *testing.T) {
	key := storage.ObjectKey(ports.FolderMenu, "flan.png")
	parts := strings.SplitN(key, "/", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "menu", parts[0])
	assert.Regexp(t, `^[0-9a-f]{32}_flan\.png$`, parts[1])
}

func TestUpload_Exito(t *testing.T) {
	var gotPath, gotAuth, gotKey, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("apikey")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"images/menu/x"}`))
	}))
	defer srv.Close()

	u := storage.NewSupabaseUploader(srv.URL+"/", "service-key", "images", time.Second)
	url, err := u.Upload(context.Background(), ports.ImageFile{Filename: "flan.png", ContentType: "image/png", Data: []byte("png-bytes")}, ports.FolderMenu)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotPath, "/storage/v1/object/images/menu/"), gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "service-key", gotKey)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, []byte("png-bytes"), gotBody)

	objectPath := strings.TrimPrefix(gotPath, "/storage/v1/object/images/")
	assert.Equal(t, srv.URL+"/storage/v1/object/public/images/"+objectPath, url)
}

func TestUpload_ErrorDelServicio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"404","error":"Bucket not found","message":"Bucket not found"}`))
	}))
	defer srv.Close()

	u := storage.NewSupabaseUploader(srv.URL, "k", "nope", time.Second)
	_, err := u.Upload(context.Background(), ports.ImageFile{Filename: "a.png", Data: []byte("x")}, ports.FolderRestaurants)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpload)
	assert.Contains(t, err.Error(), "Bucket not found")
}

func TestUpload_SinConfiguracion(t *testing.T) {
	u := storage.NewSupabaseUploader("", "", "images", time.Second)
	_, err := u.Upload(context.Background(), ports.ImageFile{Filename: "a.png", Data: []byte("x")}, ports.FolderMenu)
	assert.ErrorIs(t, err, domain.ErrUpload)
}
