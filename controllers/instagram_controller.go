package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SallesND3V/Doceiria-Mockup-Site/services"
)

type InstagramController struct {
	Instagram *services.InstagramService
}

func NewInstagramController(instagram *services.InstagramService) *InstagramController {
	return &InstagramController{Instagram: instagram}
}

func (h *InstagramController) Sync(c *gin.Context) {
	imported, err := h.Instagram.Sync(c.Request.Context())
	if err != nil {
		var upstream *services.UpstreamError
		switch {
		case errors.Is(err, services.ErrInstagramNotConfigured):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &upstream):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Erro ao acessar Instagram API: %s", upstream.Message),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Erro de conexão: %v", err),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d fotos importadas do Instagram com sucesso!", imported),
	})
}
