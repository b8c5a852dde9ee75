package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/dto"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
)

// menuHandler handles HTTP requests for the restaurant menu.
type menuHandler struct {
	menuService portssvc.MenuSvcFacade
}

func newMenuHandler(ms portssvc.MenuSvcFacade) *menuHandler {
	return &menuHandler{menuService: ms}
}

// registerMenuRoutes registers routes related to the menu. Writes are
// restricted to admins and managers.
func registerMenuRoutes(rg *gin.RouterGroup, menuService portssvc.MenuSvcFacade) {
	h := newMenuHandler(menuService)

	menu := rg.Group("/menu")
	{
		menu.GET("", h.listMenuItems)
		menu.GET("/:id", h.getMenuItem)

		writes := menu.Group("", middleware.RequireRole("ADMIN", "MANAGER"))
		{
			writes.POST("", h.createMenuItem)
			writes.PUT("/:id", h.updateMenuItem)
			writes.DELETE("/:id", h.deleteMenuItem)
		}
	}
}

// createMenuItem godoc
// @Summary Add a menu item
// @Tags menu
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateMenuItemRequest true "Menu item details"
// @Success 201 {object} dto.MenuItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 500 {object} map[string]string "Failed to create menu item"
// @Security BearerAuth
// @Router /menu [post]
func (h *menuHandler) createMenuItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMenuItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create menu item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMenuItemResponse(item))
}

// updateMenuItem godoc
// @Summary Edit a menu item
// @Description Applies a partial update; omitted fields are left unchanged
// @Tags menu
// @Accept  json
// @Produce  json
// @Param   id path string true "Menu item ID"
// @Param   item body dto.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} dto.MenuItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Menu item not found"
// @Failure 500 {object} map[string]string "Failed to update menu item"
// @Security BearerAuth
// @Router /menu/{id} [put]
func (h *menuHandler) updateMenuItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMenuItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update menu item")
		return
	}
	c.JSON(http.StatusOK, dto.ToMenuItemResponse(item))
}

// getMenuItem godoc
// @Summary Get a menu item by ID
// @Tags menu
// @Produce  json
// @Param   id path string true "Menu item ID"
// @Success 200 {object} dto.MenuItemResponse
// @Failure 404 {object} map[string]string "Menu item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve menu item"
// @Security BearerAuth
// @Router /menu/{id} [get]
func (h *menuHandler) getMenuItem(c *gin.Context) {
	item, err := h.menuService.GetMenuItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve menu item")
		return
	}
	c.JSON(http.StatusOK, dto.ToMenuItemResponse(item))
}

// listMenuItems godoc
// @Summary List menu items
// @Tags menu
// @Produce  json
// @Param   category query string false "Filter by category"
// @Param   available query bool false "Only available items"
// @Success 200 {array} dto.MenuItemResponse
// @Failure 500 {object} map[string]string "Failed to list menu items"
// @Security BearerAuth
// @Router /menu [get]
func (h *menuHandler) listMenuItems(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"
	items, err := h.menuService.ListMenuItems(c.Request.Context(), c.Query("category"), onlyAvailable)
	if err != nil {
		respondWithError(c, err, "Failed to list menu items")
		return
	}
	c.JSON(http.StatusOK, dto.ToMenuItemResponses(items))
}

// deleteMenuItem godoc
// @Summary Remove a menu item
// @Description Removes the item from the menu; existing bills keep their snapshots
// @Tags menu
// @Param   id path string true "Menu item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Menu item not found"
// @Failure 500 {object} map[string]string "Failed to delete menu item"
// @Security BearerAuth
// @Router /menu/{id} [delete]
func (h *menuHandler) deleteMenuItem(c *gin.Context) {
	if err := h.menuService.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete menu item")
		return
	}
	c.Status(http.StatusNoContent)
}
