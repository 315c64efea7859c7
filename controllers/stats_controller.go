package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SallesND3V/Doceiria-Mockup-Site/services"
)

type StatsController struct {
	Catalog *services.CatalogService
}

func NewStatsController(catalog *services.CatalogService) *StatsController {
	return &StatsController{Catalog: catalog}
}

func (h *StatsController) Get(c *gin.Context) {
	stats, err := h.Catalog.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar estatísticas"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
