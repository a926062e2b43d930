package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"compras-backend/src/requests"
	"compras-backend/src/services"
)

type ProductHandler struct {
	Service *services.ProductService
	Log     *logrus.Logger
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req requests.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nombre y unidad de producto son requeridos"})
		return
	}

	product, err := h.Service.Create(services.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
	})
	if err != nil {
		respondError(c, h.Log, "CreateProduct", "Error al crear producto", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": product.ID, "message": "Producto creado exitosamente"})
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.Service.List()
	if err != nil {
		respondError(c, h.Log, "GetProducts", "Error al obtener productos", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de producto inválido"})
		return
	}

	product, err := h.Service.Get(id)
	if err != nil {
		respondError(c, h.Log, "GetProductByID", "Error al obtener producto", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de producto inválido"})
		return
	}

	var req requests.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nombre y unidad de producto son requeridos"})
		return
	}

	err = h.Service.Update(id, services.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
	})
	if err != nil {
		respondError(c, h.Log, "UpdateProduct", "Error al actualizar producto", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Producto actualizado exitosamente"})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de producto inválido"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		respondError(c, h.Log, "DeleteProduct", "Error al eliminar producto", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado exitosamente"})
}
