package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SallesND3V/Doceiria-Mockup-Site/services"
)

type CakeController struct {
	Catalog *services.CatalogService
}

func NewCakeController(catalog *services.CatalogService) *CakeController {
	return &CakeController{Catalog: catalog}
}

// List supports optional ?category_id= and ?featured= equality filters.
func (h *CakeController) List(c *gin.Context) {
	var filter services.CakeFilter
	if categoryID := c.Query("category_id"); categoryID != "" {
		filter.CategoryID = &categoryID
	}
	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured, err := strconv.ParseBool(featuredStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro featured inválido"})
			return
		}
		filter.Featured = &featured
	}

	cakes, err := h.Catalog.ListCakes(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar bolos"})
		return
	}
	c.JSON(http.StatusOK, cakes)
}

func (h *CakeController) Get(c *gin.Context) {
	cake, err := h.Catalog.GetCake(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bolo não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar bolo"})
		return
	}
	c.JSON(http.StatusOK, cake)
}

func (h *CakeController) Create(c *gin.Context) {
	var input services.CakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cake, err := h.Catalog.CreateCake(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar bolo"})
		return
	}
	c.JSON(http.StatusOK, cake)
}

func (h *CakeController) Update(c *gin.Context) {
	var update services.CakeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cake, err := h.Catalog.UpdateCake(c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhum dado para atualizar"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bolo não encontrado"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar bolo"})
		}
		return
	}
	c.JSON(http.StatusOK, cake)
}

func (h *CakeController) Delete(c *gin.Context) {
	err := h.Catalog.DeleteCake(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bolo não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover bolo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bolo removido"})
}
