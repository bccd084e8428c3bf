package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/adapters/http/mapper"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
	"github.com/Apurer/go-persistence-examples/internal/shared/web"
)

// AuthorAPI exposes the author DAO over HTTP.
type AuthorAPI struct {
	dao ports.AuthorDAO
}

func NewAuthorAPI(dao ports.AuthorDAO) *AuthorAPI {
	return &AuthorAPI{dao: dao}
}

func (api *AuthorAPI) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/authors", api.ListAuthors)
	rg.POST("/authors", api.CreateAuthor)
	rg.GET("/authors/:authorId", api.GetAuthor)
	rg.PUT("/authors/:authorId", api.UpdateAuthor)
	rg.DELETE("/authors/:authorId", api.DeleteAuthor)
}

// Get /authors
// ?firstName=&lastName= finds one author; ?lastName= lists namesakes by first name;
// ?lastNameLike= lists by prefix or LIKE pattern; otherwise all authors page by page.
func (api *AuthorAPI) ListAuthors(c *gin.Context) {
	ctx := c.Request.Context()
	firstName, hasFirst := c.GetQuery("firstName")
	lastName, hasLast := c.GetQuery("lastName")
	if hasFirst && hasLast {
		author, err := api.dao.FindAuthorByName(ctx, firstName, lastName)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.FromDomainAuthor(author))
		return
	}
	pageable, ok := web.ParsePageable(c)
	if !ok {
		return
	}
	var (
		page paging.Page[*domain.Author]
		err  error
	)
	switch like, hasLike := c.GetQuery("lastNameLike"); {
	case hasLast:
		page, err = api.dao.FindAllByLastNameSortByFirstName(ctx, lastName, pageable)
	case hasLike:
		page, err = api.dao.FindAllByLastNameLike(ctx, like, pageable)
	default:
		page, err = api.dao.FindAll(ctx, pageable)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewPageResponse(page, mapper.FromDomainAuthor))
}

// Post /authors
func (api *AuthorAPI) CreateAuthor(c *gin.Context) {
	var payload mapper.AuthorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	saved, err := api.dao.SaveNewAuthor(c.Request.Context(), mapper.ToDomainAuthor(0, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromDomainAuthor(saved))
}

// Get /authors/:authorId
func (api *AuthorAPI) GetAuthor(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "authorId")
	if !ok {
		return
	}
	author, err := api.dao.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainAuthor(author))
}

// Put /authors/:authorId
func (api *AuthorAPI) UpdateAuthor(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "authorId")
	if !ok {
		return
	}
	var payload mapper.AuthorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := api.dao.UpdateAuthor(c.Request.Context(), mapper.ToDomainAuthor(id, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainAuthor(updated))
}

// Delete /authors/:authorId
func (api *AuthorAPI) DeleteAuthor(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "authorId")
	if !ok {
		return
	}
	if err := api.dao.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
