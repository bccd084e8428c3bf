package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/http/mapper"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/web"
)

// ProductAPI exposes the product DAO over HTTP.
type ProductAPI struct {
	dao ports.ProductDAO
}

func NewProductAPI(dao ports.ProductDAO) *ProductAPI {
	return &ProductAPI{dao: dao}
}

// RegisterRoutes mounts the product endpoints on rg.
func (api *ProductAPI) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", api.ListProducts)
	rg.POST("/products", api.CreateProduct)
	rg.GET("/products/:productId", api.GetProduct)
	rg.PUT("/products/:productId", api.UpdateProduct)
	rg.DELETE("/products/:productId", api.DeleteProduct)
}

// Get /products
// Lists products page by page, or finds one by ?description=
func (api *ProductAPI) ListProducts(c *gin.Context) {
	if description, ok := c.GetQuery("description"); ok {
		product, err := api.dao.FindProductByDescription(c.Request.Context(), description)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.FromDomainProduct(product))
		return
	}
	pageable, ok := web.ParsePageable(c)
	if !ok {
		return
	}
	page, err := api.dao.FindAll(c.Request.Context(), pageable)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewPageResponse(page, mapper.FromDomainProduct))
}

// Post /products
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload mapper.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	saved, err := api.dao.Save(c.Request.Context(), mapper.ToDomainProduct(0, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromDomainProduct(saved))
}

// Get /products/:productId
func (api *ProductAPI) GetProduct(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "productId")
	if !ok {
		return
	}
	product, err := api.dao.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainProduct(product))
}

// Put /products/:productId
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload mapper.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	if _, err := api.dao.GetByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	updated, err := api.dao.Update(c.Request.Context(), mapper.ToDomainProduct(id, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainProduct(updated))
}

// Delete /products/:productId
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "productId")
	if !ok {
		return
	}
	if err := api.dao.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
