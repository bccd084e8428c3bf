package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/http/mapper"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/memory"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/application"
	"github.com/Apurer/go-persistence-examples/internal/shared/web"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	router := gin.New()
	rg := router.Group("/api/v1")
	NewProductAPI(application.NewProductDAO(store.Products())).RegisterRoutes(rg)
	NewCustomerAPI(application.NewCustomerDAO(store.Customers())).RegisterRoutes(rg)
	NewOrderAPI(application.NewOrderHeaderDAO(store.OrderHeaders()), nil).RegisterRoutes(rg)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestProductAPI_Lifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/products", mapper.ProductRequest{
		Description: "Widget",
		Categories:  []mapper.Category{{Description: "tools"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[mapper.Product](t, rec)
	require.NotZero(t, created.ID)
	require.Equal(t, "NEW", created.ProductStatus)

	path := "/api/v1/products/" + strconv.FormatInt(created.ID, 10)
	rec = doJSON(t, router, http.MethodPut, path, mapper.ProductRequest{Description: "Widget", ProductStatus: "IN_STOCK"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "IN_STOCK", decode[mapper.Product](t, rec).ProductStatus)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products?description=Widget", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, created.ID, decode[mapper.Product](t, rec).ID)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products?page=0&size=5&sort=description,desc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[web.PageResponse[mapper.Product]](t, rec)
	require.EqualValues(t, 1, page.TotalElements)
	require.Len(t, page.Content, 1)

	rec = doJSON(t, router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestProductAPI_RejectsBadInput(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/products", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/products", mapper.ProductRequest{Description: "x", ProductStatus: "LOST"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products?sort=color", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerAPI_FindByName(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/customers", mapper.CustomerRequest{
		CustomerName: "Jane Doe",
		Address:      mapper.Address{City: "Springfield"},
		Email:        "jane@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[mapper.Customer](t, rec)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/customers?name=Jane%20Doe", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[mapper.Customer](t, rec)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, "Springfield", found.Address.City)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/customers?name=Nobody", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/customers", mapper.CustomerRequest{CustomerName: "Bad", Email: "nope"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderAPI_ApproveAndOptimisticLocking(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/customers", mapper.CustomerRequest{CustomerName: "Buyer"})
	require.Equal(t, http.StatusCreated, rec.Code)
	customer := decode[mapper.Customer](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/products", mapper.ProductRequest{Description: "Gadget"})
	require.Equal(t, http.StatusCreated, rec.Code)
	product := decode[mapper.Product](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/orders", mapper.OrderRequest{
		CustomerID:      customer.ID,
		ShippingAddress: &mapper.Address{City: "Shelbyville"},
		OrderLines:      []mapper.OrderLineRequest{{ProductID: product.ID, QuantityOrdered: 3}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	order := decode[mapper.Order](t, rec)
	require.Equal(t, "NEW", order.OrderStatus)
	require.Equal(t, 0, order.Version)
	require.Len(t, order.OrderLines, 1)
	require.Equal(t, "Gadget", order.OrderLines[0].ProductDescription)
	require.Nil(t, order.BillingAddress)

	orderPath := "/api/v1/orders/" + strconv.FormatInt(order.ID, 10)
	rec = doJSON(t, router, http.MethodPost, orderPath+"/approval", mapper.ApprovalRequest{ApprovedBy: "manager"})
	require.Equal(t, http.StatusOK, rec.Code)
	approved := decode[mapper.Order](t, rec)
	require.Equal(t, "IN_PROCESS", approved.OrderStatus)
	require.Equal(t, 1, approved.Version)
	require.NotNil(t, approved.Approval)
	require.Equal(t, "manager", approved.Approval.ApprovedBy)

	stale := mapper.OrderRequest{
		CustomerID:  customer.ID,
		OrderStatus: "COMPLETE",
		Version:     0,
		OrderLines:  []mapper.OrderLineRequest{{ProductID: product.ID, QuantityOrdered: 1}},
	}
	rec = doJSON(t, router, http.MethodPut, orderPath, stale)
	require.Equal(t, http.StatusConflict, rec.Code)

	stale.Version = approved.Version
	rec = doJSON(t, router, http.MethodPut, orderPath, stale)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[mapper.Order](t, rec)
	require.Equal(t, "COMPLETE", updated.OrderStatus)
	require.NotNil(t, updated.Approval)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/orders?customerId="+strconv.FormatInt(customer.ID, 10), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, order.ID, decode[mapper.Order](t, rec).ID)

	productPath := "/api/v1/products/" + strconv.FormatInt(product.ID, 10)
	rec = doJSON(t, router, http.MethodDelete, productPath, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	rec = doJSON(t, router, http.MethodDelete, orderPath, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, router, http.MethodPost, orderPath+"/approval", mapper.ApprovalRequest{ApprovedBy: "manager"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, productPath, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}
