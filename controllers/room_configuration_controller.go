package controllers

import (
	"net/http"

	"hotel-inventory/middleware"
	"hotel-inventory/services"
	"hotel-inventory/utils"

	"github.com/gin-gonic/gin"
)

type updateQuantityPayload struct {
	Quantity uint `json:"quantity" binding:"required,min=1"`
}

type RoomConfigurationController struct {
	configs *services.RoomConfigurationService
}

func NewRoomConfigurationController(configs *services.RoomConfigurationService) *RoomConfigurationController {
	return &RoomConfigurationController{configs: configs}
}

// Index lists the configurations of one hotel (GET /hotels/:id/rooms).
func (rc *RoomConfigurationController) Index(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	configs, err := rc.configs.ListByHotel(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

// Store adds one configuration row to a hotel (POST /hotels/:id/rooms).
func (rc *RoomConfigurationController) Store(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input services.RoomConfigurationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	config, err := rc.configs.Create(hotelID, caller, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, config)
}

// Update changes one row's quantity (PUT /rooms/:id).
func (rc *RoomConfigurationController) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload updateQuantityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	config, err := rc.configs.UpdateQuantity(id, caller, payload.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, config)
}

// Destroy removes one row (DELETE /rooms/:id).
func (rc *RoomConfigurationController) Destroy(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.configs.Delete(id, caller); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
