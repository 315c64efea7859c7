package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SallesND3V/Doceiria-Mockup-Site/services"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

// Get is the public view: the Instagram access token is never part of it.
func (h *SettingsController) Get(c *gin.Context) {
	settings, err := h.Settings.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar configurações"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetAdmin is the privileged view, secret included.
func (h *SettingsController) GetAdmin(c *gin.Context) {
	settings, err := h.Settings.GetPrivileged()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar configurações"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsController) Update(c *gin.Context) {
	var update services.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.Settings.Update(update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar configurações"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
