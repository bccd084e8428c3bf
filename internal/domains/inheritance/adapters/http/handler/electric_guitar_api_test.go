package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/adapters/http/mapper"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/adapters/memory"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/application"
	"github.com/Apurer/go-persistence-examples/internal/shared/web"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewElectricGuitarAPI(application.NewElectricGuitars(memory.NewRepository())).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func serve(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestElectricGuitarAPI(t *testing.T) {
	router := newRouter()
	const base = "/api/v1/instruments/electric-guitars"

	rec := serve(router, http.MethodPost, base, mapper.ElectricGuitarRequest{NumberOfStrings: 6, NumberOfPickups: 3})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created mapper.ElectricGuitar
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 3, created.NumberOfPickups)
	assert.False(t, created.CreatedDate.IsZero())

	path := base + "/" + strconv.FormatInt(created.ID, 10)
	rec = serve(router, http.MethodPut, path, mapper.ElectricGuitarRequest{NumberOfStrings: 7, NumberOfPickups: 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found mapper.ElectricGuitar
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	assert.Equal(t, 7, found.NumberOfStrings)

	rec = serve(router, http.MethodGet, base+"?size=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page web.PageResponse[mapper.ElectricGuitar]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.TotalElements)

	rec = serve(router, http.MethodHead, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(totalCountHeader))

	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, base, mapper.ElectricGuitarRequest{NumberOfPickups: 1}).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPut, base+"/99", mapper.ElectricGuitarRequest{NumberOfStrings: 6}).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, base+"?sort=color", nil).Code)
	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, path, nil).Code)
}
