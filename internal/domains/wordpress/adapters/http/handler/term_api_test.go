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

	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/adapters/http/mapper"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/adapters/memory"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/application"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	router := gin.New()
	NewTermAPI(application.NewTermMetaDAO(store.Terms(), store.TermMetas())).RegisterRoutes(router.Group("/api/v1"))
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

func TestTermAPI(t *testing.T) {
	router := newRouter()

	rec := serve(router, http.MethodPost, "/api/v1/terms", mapper.TermRequest{Name: "Hello World"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var term mapper.Term
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &term))
	assert.Equal(t, "hello-world", term.Slug)
	termPath := "/api/v1/terms/" + strconv.FormatInt(term.ID, 10)

	rec = serve(router, http.MethodPut, termPath, mapper.TermRequest{Name: "Hello Again", Slug: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = serve(router, http.MethodGet, termPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &term))
	assert.Equal(t, "Hello Again", term.Name)
	assert.Equal(t, "hello", term.Slug)

	require.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, "/api/v1/terms", mapper.TermRequest{}).Code)
	require.Equal(t, http.StatusNotFound, serve(router, http.MethodPut, "/api/v1/terms/99", mapper.TermRequest{Name: "x"}).Code)
}

func TestTermMetaAPI(t *testing.T) {
	router := newRouter()

	rec := serve(router, http.MethodPost, "/api/v1/terms", mapper.TermRequest{Name: "News"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var term mapper.Term
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &term))
	metaPath := "/api/v1/terms/" + strconv.FormatInt(term.ID, 10) + "/meta"

	rec = serve(router, http.MethodPost, metaPath, mapper.TermMetaRequest{MetaKey: "color", MetaValue: "red"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var meta mapper.TermMeta
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meta))
	assert.Equal(t, "News", meta.Term.Name)
	entryPath := "/api/v1/term-meta/" + strconv.FormatInt(meta.ID, 10)

	rec = serve(router, http.MethodPut, entryPath, mapper.TermMetaRequest{MetaKey: "color", MetaValue: "green"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meta))
	assert.Equal(t, "green", meta.MetaValue)
	assert.Equal(t, term.ID, meta.Term.ID)

	rec = serve(router, http.MethodGet, metaPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []mapper.TermMeta
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	require.Equal(t, http.StatusNotFound, serve(router, http.MethodPost, "/api/v1/terms/77/meta", mapper.TermMetaRequest{MetaKey: "k"}).Code)
	require.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/v1/terms/77/meta", nil).Code)
	require.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, metaPath, mapper.TermMetaRequest{}).Code)

	require.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, entryPath, nil).Code)
	require.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, entryPath, nil).Code)
	require.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, entryPath, nil).Code)
}
