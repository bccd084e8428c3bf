package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/adapters/http/mapper"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/application"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/ports"
	apierrors "github.com/Apurer/go-persistence-examples/internal/shared/errors"
	"github.com/Apurer/go-persistence-examples/internal/shared/web"
)

var responder = apierrors.NewResponder(
	apierrors.MapSentinel(ports.ErrNotFound, apierrors.ErrNotFound),
	apierrors.MapSentinel(application.ErrInvalidInput, apierrors.ErrValidation),
)

// TermAPI exposes terms and their metadata over HTTP.
type TermAPI struct {
	dao ports.TermMetaDAO
}

func NewTermAPI(dao ports.TermMetaDAO) *TermAPI {
	return &TermAPI{dao: dao}
}

func (api *TermAPI) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/terms", api.CreateTerm)
	rg.GET("/terms/:termId", api.GetTerm)
	rg.PUT("/terms/:termId", api.UpdateTerm)
	rg.GET("/terms/:termId/meta", api.ListTermMeta)
	rg.POST("/terms/:termId/meta", api.CreateTermMeta)
	rg.GET("/term-meta/:metaId", api.GetTermMeta)
	rg.PUT("/term-meta/:metaId", api.UpdateTermMeta)
	rg.DELETE("/term-meta/:metaId", api.DeleteTermMeta)
}

// Post /terms
func (api *TermAPI) CreateTerm(c *gin.Context) {
	var payload mapper.TermRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	saved, err := api.dao.SaveTerm(c.Request.Context(), mapper.ToDomainTerm(0, payload))
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromDomainTerm(saved))
}

// Get /terms/:termId
func (api *TermAPI) GetTerm(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "termId")
	if !ok {
		return
	}
	term, err := api.dao.GetTerm(c.Request.Context(), id)
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainTerm(term))
}

// Put /terms/:termId
func (api *TermAPI) UpdateTerm(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "termId")
	if !ok {
		return
	}
	var payload mapper.TermRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	saved, err := api.dao.SaveTerm(c.Request.Context(), mapper.ToDomainTerm(id, payload))
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainTerm(saved))
}

// Get /terms/:termId/meta
func (api *TermAPI) ListTermMeta(c *gin.Context) {
	termID, ok := web.ParseIDParam(c, "termId")
	if !ok {
		return
	}
	metas, err := api.dao.FindByTerm(c.Request.Context(), termID)
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainTermMetas(metas))
}

// Post /terms/:termId/meta
func (api *TermAPI) CreateTermMeta(c *gin.Context) {
	termID, ok := web.ParseIDParam(c, "termId")
	if !ok {
		return
	}
	var payload mapper.TermMetaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	saved, err := api.dao.Save(c.Request.Context(), mapper.ToDomainTermMeta(0, termID, payload))
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromDomainTermMeta(saved))
}

// Get /term-meta/:metaId
func (api *TermAPI) GetTermMeta(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "metaId")
	if !ok {
		return
	}
	meta, err := api.dao.GetByID(c.Request.Context(), id)
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainTermMeta(meta))
}

// Put /term-meta/:metaId moves the entry to another term when termId is given.
func (api *TermAPI) UpdateTermMeta(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "metaId")
	if !ok {
		return
	}
	var payload mapper.TermMetaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	termID := payload.TermID
	if termID == 0 {
		existing, err := api.dao.GetByID(c.Request.Context(), id)
		if err != nil {
			responder.RespondError(c, err)
			return
		}
		termID = existing.TermID()
	}
	saved, err := api.dao.Save(c.Request.Context(), mapper.ToDomainTermMeta(id, termID, payload))
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainTermMeta(saved))
}

// Delete /term-meta/:metaId
func (api *TermAPI) DeleteTermMeta(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "metaId")
	if !ok {
		return
	}
	if err := api.dao.DeleteByID(c.Request.Context(), id); err != nil {
		responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
