package controllers

import (
	"strconv"

	"restaurant-pos/pkg/resp"
	"restaurant-pos/services"
	"restaurant-pos/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.OrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := oc.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"id": id})
}

// GET /orders  (?page=&limit= for a paged list, otherwise everything)
func (oc *OrderController) List(c *gin.Context) {
	if p := c.Query("page"); p != "" {
		page, _ := strconv.Atoi(p)
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		out, err := oc.Service.ListPage(page, limit)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, out)
		return
	}

	orders, err := oc.Service.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/date/:date
func (oc *OrderController) ByDate(c *gin.Context) {
	orders, err := oc.Service.FetchByDate(c.Param("date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/summary/:date
func (oc *OrderController) Summary(c *gin.Context) {
	sum, err := oc.Service.Summary(c.Param("date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, sum)
}

// PUT /orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req services.OrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	n, err := oc.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "update success", "updated": n})
}

type UpdateStatusReq struct {
	Status *string `json:"status"`
}

// PUT /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Status == nil {
		resp.BadRequest(c, "status is required")
		return
	}

	n, err := oc.Service.UpdateStatus(id, *req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": n})
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}

	n, err := oc.Service.Delete(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": n})
}
