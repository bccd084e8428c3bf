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

// BookAPI exposes the book DAO over HTTP.
type BookAPI struct {
	dao ports.BookDAO
}

func NewBookAPI(dao ports.BookDAO) *BookAPI {
	return &BookAPI{dao: dao}
}

func (api *BookAPI) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/books", api.ListBooks)
	rg.POST("/books", api.CreateBook)
	rg.GET("/books/:bookId", api.GetBook)
	rg.PUT("/books/:bookId", api.UpdateBook)
	rg.DELETE("/books/:bookId", api.DeleteBook)
}

// Get /books
// ?title= and ?isbn= find one book; ?sortByTitle=true pages ordered by title.
func (api *BookAPI) ListBooks(c *gin.Context) {
	ctx := c.Request.Context()
	if title, ok := c.GetQuery("title"); ok {
		book, err := api.dao.FindBookByTitle(ctx, title)
		api.respondBook(c, book, err)
		return
	}
	if isbn, ok := c.GetQuery("isbn"); ok {
		book, err := api.dao.FindByISBN(ctx, isbn)
		api.respondBook(c, book, err)
		return
	}
	pageable, ok := web.ParsePageable(c)
	if !ok {
		return
	}
	var (
		page paging.Page[*domain.Book]
		err  error
	)
	if c.Query("sortByTitle") == "true" {
		page, err = api.dao.FindAllSortByTitle(ctx, pageable)
	} else {
		page, err = api.dao.FindAll(ctx, pageable)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewPageResponse(page, mapper.FromDomainBook))
}

// Post /books
func (api *BookAPI) CreateBook(c *gin.Context) {
	var payload mapper.BookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	saved, err := api.dao.SaveNewBook(c.Request.Context(), mapper.ToDomainBook(0, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromDomainBook(saved))
}

// Get /books/:bookId
func (api *BookAPI) GetBook(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "bookId")
	if !ok {
		return
	}
	book, err := api.dao.GetByID(c.Request.Context(), id)
	api.respondBook(c, book, err)
}

// Put /books/:bookId
func (api *BookAPI) UpdateBook(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "bookId")
	if !ok {
		return
	}
	var payload mapper.BookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := api.dao.UpdateBook(c.Request.Context(), mapper.ToDomainBook(id, payload))
	api.respondBook(c, updated, err)
}

// Delete /books/:bookId
func (api *BookAPI) DeleteBook(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "bookId")
	if !ok {
		return
	}
	if err := api.dao.DeleteBookByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *BookAPI) respondBook(c *gin.Context, book *domain.Book, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainBook(book))
}
