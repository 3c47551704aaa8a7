package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/catalog"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/application/media"
	"github.com/jhoicas/menu-api/internal/application/ports"
	"github.com/jhoicas/menu-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/menu-api/internal/interfaces/http"
	"github.com/jhoicas/menu-api/pkg/logger"
)

type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, _ ports.ImageFile, folder string) (string, error) {
	return "http://fake.url/" + folder + "/image.png", nil
}

func newAPI(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	log := logger.Nop()
	restaurantRepo := memory.NewRestaurantRepository(store)
	categoryRepo := memory.NewCategoryRepository(store)
	itemRepo := memory.NewMenuItemRepository(store)
	tx := memory.NewTxRunner(store)
	images := media.NewImageService(fakeUploader{}, log)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(restaurantRepo, images, memory.NewTokenDenylist(),
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}, log),
		CategoryUC:  catalog.NewCategoryUseCase(tx, categoryRepo, log),
		MenuItemUC:  catalog.NewMenuItemUseCase(tx, categoryRepo, itemRepo, images, log),
		DashboardUC: catalog.NewDashboardUseCase(restaurantRepo, categoryRepo, itemRepo),
		JWTSecret:   testJWTSecret,
		Log:         log,
	})
	return app, store
}

func multipartBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withImage {
		fw, err := w.CreateFormFile("image", "foto.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("\x89PNG fake"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func send(t *testing.T, app *fiber.App, method, path, token, contentType string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sendJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return send(t, app, method, path, token, fiber.MIMEApplicationJSON, bytes.NewBuffer(raw))
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerAndLogin(t *testing.T, app *fiber.App, name string) string {
	t.Helper()
	body, ct := multipartBody(t, map[string]string{
		"name": name, "password": "Secreta123", "schedule": "9-18", "location": "Centro", "description": "Casera",
	}, true)
	resp := send(t, app, http.MethodPost, "/api/auth/register", "", ct, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	reg := decode[dto.RestaurantResponse](t, resp)
	require.NotNil(t, reg.Image)
	assert.Equal(t, "http://fake.url/restaurants/image.png", *reg.Image)

	resp = sendJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Name: name, Password: "Secreta123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.LoginResponse](t, resp).Token
}

func TestAPI_FlujoCompleto(t *testing.T) {
	app, store := newAPI(t)
	tokenA := registerAndLogin(t, app, "Resto A")
	tokenB := registerAndLogin(t, app, "Resto B")

	resp := sendJSON(t, app, http.MethodPost, "/api/categories", tokenA, dto.CategoryRequest{Category: "Postres"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	category := decode[dto.CategoryResponse](t, resp)

	body, ct := multipartBody(t, map[string]string{"name": "Flan", "price": "3.50", "description": "casero"}, true)
	resp = send(t, app, http.MethodPost, "/api/categories/"+category.ID+"/items", tokenA, ct, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decode[dto.MenuItemResponse](t, resp)
	assert.Equal(t, "3.5", item.Price.String())

	// B no puede modificar lo de A
	resp = sendJSON(t, app, http.MethodPut, "/api/categories/"+category.ID, tokenB, dto.CategoryRequest{Category: "Hackeado"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = send(t, app, http.MethodDelete, "/api/items/"+item.ID, tokenB, "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, ct = multipartBody(t, map[string]string{"name": "Intruso", "price": "1"}, false)
	resp = send(t, app, http.MethodPost, "/api/categories/"+category.ID+"/items", tokenB, ct, body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Actualización parcial: solo precio
	body, ct = multipartBody(t, map[string]string{"price": "4"}, false)
	resp = send(t, app, http.MethodPut, "/api/items/"+item.ID, tokenA, ct, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.MenuItemResponse](t, resp)
	assert.Equal(t, "Flan", updated.Name)
	assert.Equal(t, "4", updated.Price.String())
	assert.Equal(t, "casero", updated.Description)

	resp = send(t, app, http.MethodGet, "/api/dashboard", tokenA, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	menu := decode[dto.DashboardResponse](t, resp)
	require.Len(t, menu.Categories, 1)
	require.Len(t, menu.Categories[0].Items, 1)

	resp = send(t, app, http.MethodDelete, "/api/categories/"+category.ID, tokenA, "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_, categories, items := store.Counts()
	assert.Zero(t, categories)
	assert.Zero(t, items)

	resp = send(t, app, http.MethodDelete, "/api/categories/"+category.ID, tokenA, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_RegistroDuplicadoYValidacion(t *testing.T) {
	app, store := newAPI(t)
	registerAndLogin(t, app, "La Fonda")

	body, ct := multipartBody(t, map[string]string{
		"name": "La Fonda", "password": "Secreta123", "schedule": "x", "location": "y", "description": "z",
	}, true)
	resp := send(t, app, http.MethodPost, "/api/auth/register", "", ct, body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, auth.MsgNameTaken, decode[dto.ErrorResponse](t, resp).Message)

	body, ct = multipartBody(t, map[string]string{
		"name": "Otra", "password": "Secreta123", "schedule": "x", "location": "y", "description": "z",
	}, false)
	resp = send(t, app, http.MethodPost, "/api/auth/register", "", ct, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, auth.MsgRequiredFields, decode[dto.ErrorResponse](t, resp).Message)

	restaurants, _, _ := store.Counts()
	assert.Equal(t, 1, restaurants)
}

func TestAPI_LoginIncorrectoMismoMensaje(t *testing.T) {
	app, _ := newAPI(t)
	registerAndLogin(t, app, "La Fonda")

	wrong := sendJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Name: "La Fonda", Password: "Mala12345"})
	unknown := sendJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Name: "Nadie", Password: "Mala12345"})
	assert.Equal(t, http.StatusUnauthorized, wrong.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode)
	assert.Equal(t, decode[dto.ErrorResponse](t, wrong), decode[dto.ErrorResponse](t, unknown))
}

func TestAPI_LogoutRevocaToken(t *testing.T) {
	app, _ := newAPI(t)
	token := registerAndLogin(t, app, "La Fonda")

	resp := send(t, app, http.MethodPost, "/api/auth/logout", token, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/api/dashboard", token, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	app, _ := newAPI(t)
	for _, path := range []string{"/api/dashboard", "/api/categories"} {
		method := http.MethodGet
		if strings.HasSuffix(path, "categories") {
			method = http.MethodPost
		}
		resp := send(t, app, method, path, "", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}
