package controllers

import (
	"net/http"
	"strconv"

	"hotel-inventory/middleware"
	"hotel-inventory/services"
	"hotel-inventory/utils"

	"github.com/gin-gonic/gin"
)

// createHotelPayload wraps the hotel fields together with the complete
// initial configuration set.
type createHotelPayload struct {
	services.HotelInput
	RoomConfigurations []services.RoomConfigurationInput `json:"room_configurations" binding:"required,dive"`
}

// updateHotelPayload patches scalar fields; a non-nil room_configurations
// array replaces the entire configuration set.
type updateHotelPayload struct {
	services.HotelPatch
	RoomConfigurations *[]services.RoomConfigurationInput `json:"room_configurations"`
}

type HotelController struct {
	hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{hotels: hotels}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// Index lists hotels, optionally filtered with ?name=.
func (hc *HotelController) Index(c *gin.Context) {
	hotels, err := hc.hotels.GetAll(c.Query("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (hc *HotelController) Show(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	hotel, err := hc.hotels.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// Store creates a hotel with its full initial configuration set. The caller
// becomes the owner.
func (hc *HotelController) Store(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var payload createHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	hotel, err := hc.hotels.Create(caller, payload.HotelInput, payload.RoomConfigurations)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hotel)
}

func (hc *HotelController) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload updateHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	hotel, err := hc.hotels.Update(id, caller, payload.HotelPatch, payload.RoomConfigurations)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, hotel)
}

func (hc *HotelController) Destroy(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := hc.hotels.Delete(id, caller); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
