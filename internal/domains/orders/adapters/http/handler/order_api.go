package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/http/mapper"
	orderstypes "github.com/Apurer/go-persistence-examples/internal/domains/orders/application/types"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-persistence-examples/internal/shared/errors"
	"github.com/Apurer/go-persistence-examples/internal/shared/web"
)

// OrderAPI exposes the order header DAO and the approval workflow over HTTP.
type OrderAPI struct {
	dao       ports.OrderHeaderDAO
	approvals ports.ApprovalOrchestrator
}

// NewOrderAPI wires the DAO and the approval orchestrator; a nil orchestrator approves through the DAO.
func NewOrderAPI(dao ports.OrderHeaderDAO, approvals ports.ApprovalOrchestrator) *OrderAPI {
	return &OrderAPI{dao: dao, approvals: approvals}
}

func (api *OrderAPI) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders", api.ListOrders)
	rg.POST("/orders", api.CreateOrder)
	rg.GET("/orders/:orderId", api.GetOrder)
	rg.PUT("/orders/:orderId", api.UpdateOrder)
	rg.DELETE("/orders/:orderId", api.DeleteOrder)
	rg.POST("/orders/:orderId/approval", api.ApproveOrder)
}

// Get /orders
// Lists orders page by page, or finds the first order of ?customerId=
func (api *OrderAPI) ListOrders(c *gin.Context) {
	if raw, ok := c.GetQuery("customerId"); ok {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			responder.Respond(c, apierrors.ErrBadRequest.WithDetail("invalid customerId: "+raw))
			return
		}
		customer := &domain.Customer{BaseEntity: domain.BaseEntity{ID: customerID}}
		header, err := api.dao.FindOrderHeaderByCustomer(c.Request.Context(), customer)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.FromDomainOrder(header))
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
	c.JSON(http.StatusOK, web.NewPageResponse(page, mapper.FromDomainOrder))
}

// Post /orders
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload mapper.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	payload.Version = 0
	saved, err := api.dao.Save(c.Request.Context(), mapper.ToDomainOrder(0, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromDomainOrder(saved))
}

// Get /orders/:orderId
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "orderId")
	if !ok {
		return
	}
	header, err := api.dao.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(header))
}

// Put /orders/:orderId
// The body must carry the version it was read at; stale versions answer 409.
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload mapper.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	existing, err := api.dao.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	header := mapper.ToDomainOrder(id, payload)
	header.CreatedDate = existing.CreatedDate
	if existing.OrderApproval != nil {
		header.SetOrderApproval(existing.OrderApproval)
	}
	updated, err := api.dao.Update(c.Request.Context(), header)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(updated))
}

// Delete /orders/:orderId
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "orderId")
	if !ok {
		return
	}
	if err := api.dao.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /orders/:orderId/approval
func (api *OrderAPI) ApproveOrder(c *gin.Context) {
	id, ok := web.ParseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload mapper.ApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	input := orderstypes.ApproveOrderInput{
		OrderID:        id,
		ApprovedBy:     payload.ApprovedBy,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	}
	if input.IdempotencyKey == "" {
		input.IdempotencyKey = payload.IdempotencyKey
	}
	if api.approvals != nil {
		if _, err := api.approvals.ApproveOrder(c.Request.Context(), input); err != nil {
			respondError(c, err)
			return
		}
		header, err := api.dao.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.FromDomainOrder(header))
		return
	}
	header, err := api.dao.Approve(c.Request.Context(), id, input.ApprovedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(header))
}
