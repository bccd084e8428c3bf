package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/application"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-persistence-examples/internal/shared/errors"
)

var responder = apierrors.NewResponder(
	apierrors.MapSentinel(ports.ErrNotFound, apierrors.ErrNotFound),
	apierrors.MapSentinel(ports.ErrStaleVersion, apierrors.ErrConflict),
	apierrors.MapSentinel(ports.ErrReferenced, apierrors.ErrConflict),
	apierrors.MapSentinel(application.ErrInvalidInput, apierrors.ErrValidation),
)

func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func respondBindError(c *gin.Context, err error) {
	responder.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}
