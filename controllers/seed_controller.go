package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SallesND3V/Doceiria-Mockup-Site/services"
)

type SeedController struct {
	Seed *services.SeedService
}

func NewSeedController(seed *services.SeedService) *SeedController {
	return &SeedController{Seed: seed}
}

func (h *SeedController) Run(c *gin.Context) {
	created, err := h.Seed.Seed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar dados iniciais"})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Dados já existentes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dados iniciais criados com sucesso"})
}
