package controllers

import (
	"restaurant-pos/pkg/resp"
	"restaurant-pos/services"
	"restaurant-pos/utils"

	"github.com/gin-gonic/gin"
)

type MenuOptionController struct {
	Service *services.MenuOptionService
}

func NewMenuOptionController(s *services.MenuOptionService) *MenuOptionController {
	return &MenuOptionController{Service: s}
}

// POST /menu/:id/options
func (ctl *MenuOptionController) Create(c *gin.Context) {
	menuID, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid menu id")
		return
	}

	var body services.OptionInput
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := ctl.Service.Create(menuID, &body)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"id": id})
}

// GET /menu/:id/options
func (ctl *MenuOptionController) ListByMenu(c *gin.Context) {
	menuID, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid menu id")
		return
	}

	opts, err := ctl.Service.ListByMenu(menuID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, opts)
}

// DELETE /menu/options/:option_id
func (ctl *MenuOptionController) Delete(c *gin.Context) {
	id, ok := utils.ParamID(c, "option_id")
	if !ok {
		resp.BadRequest(c, "invalid option id")
		return
	}

	n, err := ctl.Service.Delete(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": n})
}
