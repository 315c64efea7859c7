package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SallesND3V/Doceiria-Mockup-Site/services"
)

type TestimonialController struct {
	Catalog *services.CatalogService
}

func NewTestimonialController(catalog *services.CatalogService) *TestimonialController {
	return &TestimonialController{Catalog: catalog}
}

type TestimonialInput struct {
	AuthorName string `json:"author_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Rating     int    `json:"rating"`
}

func (h *TestimonialController) List(c *gin.Context) {
	testimonials, err := h.Catalog.ListTestimonials()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar depoimentos"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialController) Create(c *gin.Context) {
	var input TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Rating == 0 {
		input.Rating = 5
	}

	testimonial, err := h.Catalog.CreateTestimonial(input.AuthorName, input.Content, input.Rating)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar depoimento"})
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (h *TestimonialController) Delete(c *gin.Context) {
	err := h.Catalog.DeleteTestimonial(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Depoimento não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover depoimento"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Depoimento removido"})
}
