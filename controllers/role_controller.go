package controllers

import (
	"encoding/json"
	"net/http"

	"hotel-inventory/models"
	"hotel-inventory/services"
	"hotel-inventory/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type rolePayload struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=255"`
	Abilities   []string `json:"abilities"`
}

type RoleController struct {
	roles *services.RoleService
}

func NewRoleController(roles *services.RoleService) *RoleController {
	return &RoleController{roles: roles}
}

func (rc *RoleController) Index(c *gin.Context) {
	roles, err := rc.roles.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (rc *RoleController) Store(c *gin.Context) {
	var payload rolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	abilities, err := json.Marshal(payload.Abilities)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid abilities list")
		return
	}

	role := models.Role{
		Name:        payload.Name,
		Description: payload.Description,
		Abilities:   datatypes.JSON(abilities),
	}
	if err := rc.roles.Create(&role); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}
