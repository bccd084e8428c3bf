package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/http/mapper"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-persistence-examples/internal/shared/errors"
	"github.com/Apurer/go-persistence-examples/internal/shared/web"
)

// CustomerAPI exposes the customer DAO over HTTP.
type CustomerAPI struct {
	dao ports.CustomerDAO
}

func NewCustomerAPI(dao ports.CustomerDAO) *CustomerAPI {
	return &CustomerAPI{dao: dao}
}

func (api *CustomerAPI) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers", api.FindCustomerByName)
	rg.POST("/customers", api.CreateCustomer)
	rg.GET("/customers/:customerId", api.GetCustomer)
	rg.PUT("/customers/:customerId", api.UpdateCustomer)
	rg.DELETE("/customers/:customerId", api.DeleteCustomer)
}

// Get /customers?name=
func (api *CustomerAPI) FindCustomerByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		responder.Respond(c, apierrors.ErrBadRequest.WithDetail("query parameter name is required"))
		return
	}
	customer, err := api.dao.FindByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainCustomer(customer))
}

// Post /customers
func (api *CustomerAPI) CreateCustomer(c *gin.Context) {
	var payload mapper.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	saved, err := api.dao.Save(c.Request.Context(), mapper.ToDomainCustomer(0, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromDomainCustomer(saved))
}

// Get /customers/:customerId
func (api *CustomerAPI) GetCustomer(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "customerId")
	if !ok {
		return
	}
	customer, err := api.dao.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainCustomer(customer))
}

// Put /customers/:customerId
func (api *CustomerAPI) UpdateCustomer(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "customerId")
	if !ok {
		return
	}
	var payload mapper.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	existing, err := api.dao.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	customer := mapper.ToDomainCustomer(id, payload)
	customer.CreatedDate = existing.CreatedDate
	updated, err := api.dao.Update(c.Request.Context(), customer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainCustomer(updated))
}

// Delete /customers/:customerId
func (api *CustomerAPI) DeleteCustomer(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "customerId")
	if !ok {
		return
	}
	if err := api.dao.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
