package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/adapters/http/mapper"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/application"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/ports"
	apierrors "github.com/Apurer/go-persistence-examples/internal/shared/errors"
	"github.com/Apurer/go-persistence-examples/internal/shared/web"
)

const totalCountHeader = "X-Total-Count"

var responder = apierrors.NewResponder(
	apierrors.MapSentinel(ports.ErrNotFound, apierrors.ErrNotFound),
	apierrors.MapSentinel(application.ErrInvalidInput, apierrors.ErrValidation),
)

func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

// ElectricGuitarAPI exposes electric guitars over HTTP.
type ElectricGuitarAPI struct {
	guitars ports.ElectricGuitarRepository
}

func NewElectricGuitarAPI(guitars ports.ElectricGuitarRepository) *ElectricGuitarAPI {
	return &ElectricGuitarAPI{guitars: guitars}
}

func (api *ElectricGuitarAPI) RegisterRoutes(rg *gin.RouterGroup) {
	rg.HEAD("/instruments/electric-guitars", api.CountElectricGuitars)
	rg.GET("/instruments/electric-guitars", api.ListElectricGuitars)
	rg.POST("/instruments/electric-guitars", api.CreateElectricGuitar)
	rg.GET("/instruments/electric-guitars/:guitarId", api.GetElectricGuitar)
	rg.PUT("/instruments/electric-guitars/:guitarId", api.UpdateElectricGuitar)
	rg.DELETE("/instruments/electric-guitars/:guitarId", api.DeleteElectricGuitar)
}

// Head /instruments/electric-guitars
func (api *ElectricGuitarAPI) CountElectricGuitars(c *gin.Context) {
	count, err := api.guitars.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header(totalCountHeader, strconv.FormatInt(count, 10))
	c.Status(http.StatusOK)
}

// Get /instruments/electric-guitars
func (api *ElectricGuitarAPI) ListElectricGuitars(c *gin.Context) {
	pageable, ok := web.ParsePageable(c)
	if !ok {
		return
	}
	page, err := api.guitars.FindAll(c.Request.Context(), pageable)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewPageResponse(page, mapper.FromDomainElectricGuitar))
}

// Post /instruments/electric-guitars
func (api *ElectricGuitarAPI) CreateElectricGuitar(c *gin.Context) {
	var payload mapper.ElectricGuitarRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	saved, err := api.guitars.Save(c.Request.Context(), mapper.ToDomainElectricGuitar(0, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromDomainElectricGuitar(saved))
}

// Get /instruments/electric-guitars/:guitarId
func (api *ElectricGuitarAPI) GetElectricGuitar(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "guitarId")
	if !ok {
		return
	}
	guitar, err := api.guitars.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainElectricGuitar(guitar))
}

// Put /instruments/electric-guitars/:guitarId
func (api *ElectricGuitarAPI) UpdateElectricGuitar(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "guitarId")
	if !ok {
		return
	}
	var payload mapper.ElectricGuitarRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	saved, err := api.guitars.Save(c.Request.Context(), mapper.ToDomainElectricGuitar(id, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainElectricGuitar(saved))
}

// Delete /instruments/electric-guitars/:guitarId
func (api *ElectricGuitarAPI) DeleteElectricGuitar(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "guitarId")
	if !ok {
		return
	}
	if err := api.guitars.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
