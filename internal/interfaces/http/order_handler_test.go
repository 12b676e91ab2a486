package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitormaquinas/os-master-api/internal/application/analytics"
	"github.com/vitormaquinas/os-master-api/internal/application/usecase"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/printout"
	apphttp "github.com/vitormaquinas/os-master-api/internal/interfaces/http"
)

type fakeOrderRepo struct {
	orders []entity.ServiceOrder
}

func (f *fakeOrderRepo) List(_ context.Context) ([]entity.ServiceOrder, error) {
	out := make([]entity.ServiceOrder, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrderRepo) Save(_ context.Context, order entity.ServiceOrder) error {
	for i := range f.orders {
		if f.orders[i].ID == order.ID {
			f.orders[i] = order
			return nil
		}
	}
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	out := f.orders[:0]
	for _, o := range f.orders {
		if o.ID != id {
			out = append(out, o)
		}
	}
	f.orders = out
	return nil
}

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) Get(_ context.Context) (entity.CompanySettings, error) {
	return entity.CompanySettings{Name: "Taller Acme"}, nil
}

func (fakeSettingsRepo) Save(_ context.Context, _ entity.CompanySettings) error { return nil }

type fakePrintoutGenerator struct{}

func (fakePrintoutGenerator) Generate(_ context.Context, doc printout.Document) ([]byte, error) {
	return []byte("%PDF-fake " + doc.ClientCopy.OrderNumber), nil
}

func buildOrdersApp(repo *fakeOrderRepo) *fiber.App {
	orderUC := usecase.NewOrderUseCase(repo)
	printUC := usecase.NewPrintOrderUseCase(orderUC, fakeSettingsRepo{}, fakePrintoutGenerator{})

	app := fiber.New()
	orders := app.Group("/api/orders", apphttp.AuthMiddleware(testJWTSecret))
	handler := apphttp.NewOrderHandler(orderUC, printUC)
	orders.Get("/", handler.List)
	orders.Post("/", handler.Create)
	orders.Get("/:id", handler.GetByID)
	orders.Put("/:id", handler.Update)
	orders.Delete("/:id", handler.Delete)
	orders.Get("/:id/print", handler.Print)
	return app
}

func authedRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", validToken(t))
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	return req
}

func saveOrderBody(clientName string) map[string]any {
	return map[string]any{
		"client": map[string]any{
			"name":    clientName,
			"cnpj":    "11.222.333/0001-44",
			"phone":   "11 99999-0000",
			"address": "Rua A, 1",
		},
		"equipmentName": "Compresor",
		"entryDate":     "2026-08-01",
		"status":        entity.StatusPendente,
		"services": []map[string]any{
			{"description": "Troca de filtro", "quantity": "2", "unitPrice": "175.00"},
			{"description": "Limpeza geral", "quantity": "1", "unitPrice": "151.00"},
		},
	}
}

func TestOrderHandler_CreateCalculaTotal(t *testing.T) {
	repo := &fakeOrderRepo{}
	app := buildOrdersApp(repo)

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/orders/", saveOrderBody("Acme")), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order entity.ServiceOrder
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	assert.NotEmpty(t, order.ID)
	assert.Regexp(t, `^OS-\d{5}$`, order.OrderNumber)
	assert.True(t, order.TotalValue.Equal(decimal.NewFromInt(501)),
		"totalValue debe ser 2×175 + 1×151 = 501, fue %s", order.TotalValue)
	require.Len(t, repo.orders, 1)
}

func TestOrderHandler_CreateSinServicios(t *testing.T) {
	app := buildOrdersApp(&fakeOrderRepo{})

	body := saveOrderBody("Acme")
	body["services"] = []map[string]any{}
	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/orders/", body), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "EMPTY_ORDER")
}

func TestOrderHandler_ListFiltraPorQuery(t *testing.T) {
	repo := &fakeOrderRepo{}
	app := buildOrdersApp(repo)

	for _, name := range []string{"Acme", "Beta"} {
		resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/orders/", saveOrderBody(name)), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/orders/?q=acme", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Items []entity.ServiceOrder `json:"items"`
		Total int                   `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Acme", out.Items[0].Client.Name)

	// Sin query devuelve todo
	resp2, err := app.Test(authedRequest(t, http.MethodGet, "/api/orders/?status="+analytics.StatusAll, nil), -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&out))
	assert.Equal(t, 2, out.Total)
}

func TestOrderHandler_UpdateConservaNumeroDeOrden(t *testing.T) {
	repo := &fakeOrderRepo{}
	app := buildOrdersApp(repo)

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/orders/", saveOrderBody("Acme")), -1)
	require.NoError(t, err)
	var created entity.ServiceOrder
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	body := saveOrderBody("Acme Renombrada")
	resp, err = app.Test(authedRequest(t, http.MethodPut, "/api/orders/"+created.ID, body), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated entity.ServiceOrder
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, created.OrderNumber, updated.OrderNumber, "el número de orden es inmutable")
	assert.Equal(t, "Acme Renombrada", updated.Client.Name)
}

func TestOrderHandler_UpdateInexistente(t *testing.T) {
	app := buildOrdersApp(&fakeOrderRepo{})

	resp, err := app.Test(authedRequest(t, http.MethodPut, "/api/orders/no-existe", saveOrderBody("Acme")), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOrderHandler_Delete(t *testing.T) {
	repo := &fakeOrderRepo{}
	app := buildOrdersApp(repo)

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/orders/", saveOrderBody("Acme")), -1)
	require.NoError(t, err)
	var created entity.ServiceOrder
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp, err = app.Test(authedRequest(t, http.MethodDelete, "/api/orders/"+created.ID, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, repo.orders)
}

func TestOrderHandler_PrintDevuelvePDF(t *testing.T) {
	repo := &fakeOrderRepo{}
	app := buildOrdersApp(repo)

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/orders/", saveOrderBody("Acme")), -1)
	require.NoError(t, err)
	var created entity.ServiceOrder
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp, err = app.Test(authedRequest(t, http.MethodGet, fmt.Sprintf("/api/orders/%s/print", created.ID), nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), created.ShortNumber())
}

func TestOrderHandler_SinToken(t *testing.T) {
	app := buildOrdersApp(&fakeOrderRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
