package controllers

import (
	"net/http"

	"hotel-inventory/models"
	"hotel-inventory/services"
	"hotel-inventory/utils"

	"github.com/gin-gonic/gin"
)

type catalogEntryPayload struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
}

// CatalogController serves the read-mostly reference data: room types,
// accommodations and cities. Writes are admin-only (enforced in routing).
type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (cc *CatalogController) ListRoomTypes(c *gin.Context) {
	types, err := cc.catalog.ListRoomTypes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (cc *CatalogController) ShowRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	roomType, err := cc.catalog.GetRoomType(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomType)
}

func (cc *CatalogController) StoreRoomType(c *gin.Context) {
	var payload catalogEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	roomType := models.RoomType{Name: payload.Name, Description: payload.Description}
	if err := cc.catalog.CreateRoomType(&roomType); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, roomType)
}

func (cc *CatalogController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload catalogEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	roomType, err := cc.catalog.UpdateRoomType(id, models.RoomType{Name: payload.Name, Description: payload.Description})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomType)
}

func (cc *CatalogController) DestroyRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := cc.catalog.DeleteRoomType(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (cc *CatalogController) ListAccommodations(c *gin.Context) {
	accommodations, err := cc.catalog.ListAccommodations()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accommodations)
}

func (cc *CatalogController) ShowAccommodation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	accommodation, err := cc.catalog.GetAccommodation(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accommodation)
}

func (cc *CatalogController) StoreAccommodation(c *gin.Context) {
	var payload catalogEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	accommodation := models.Accommodation{Name: payload.Name, Description: payload.Description}
	if err := cc.catalog.CreateAccommodation(&accommodation); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, accommodation)
}

func (cc *CatalogController) UpdateAccommodation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload catalogEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	accommodation, err := cc.catalog.UpdateAccommodation(id, models.Accommodation{Name: payload.Name, Description: payload.Description})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accommodation)
}

func (cc *CatalogController) DestroyAccommodation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := cc.catalog.DeleteAccommodation(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (cc *CatalogController) ListCities(c *gin.Context) {
	cities, err := cc.catalog.ListCities()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}
