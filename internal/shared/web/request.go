// Package web holds request parsing and response envelopes shared by the gin handlers.
package web

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/go-persistence-examples/internal/shared/errors"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// ParseIDParam reads a numeric path parameter, answering 400 when it is malformed.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		apierrors.DefaultResponder.BadRequest(c, "invalid "+name+": "+c.Param(name))
		return 0, false
	}
	return id, true
}

// ParsePageable reads page, size and repeated sort=prop,dir query parameters.
func ParsePageable(c *gin.Context) (paging.Pageable, bool) {
	pageable := paging.Pageable{Sort: paging.ParseSort(c.QueryArray("sort"))}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			apierrors.DefaultResponder.BadRequest(c, "invalid page: "+raw)
			return paging.Pageable{}, false
		}
		pageable.PageNumber = page
	}
	if raw := c.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			apierrors.DefaultResponder.BadRequest(c, "invalid size: "+raw)
			return paging.Pageable{}, false
		}
		pageable.PageSize = size
	}
	normalized := pageable.Normalize()
	if pageable.PageNumber > paging.MaxPageNumber(normalized.PageSize) {
		apierrors.DefaultResponder.BadRequest(c, "invalid page: "+c.Query("page"))
		return paging.Pageable{}, false
	}
	return normalized, true
}
