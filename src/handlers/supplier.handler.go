package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"compras-backend/src/requests"
	"compras-backend/src/services"
)

type SupplierHandler struct {
	Service *services.SupplierService
	Log     *logrus.Logger
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req requests.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nombre de proveedor es requerido"})
		return
	}

	supplier, err := h.Service.Create(services.SupplierInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		respondError(c, h.Log, "CreateSupplier", "Error al crear proveedor", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": supplier.ID, "message": "Proveedor creado exitosamente"})
}

func (h *SupplierHandler) GetSuppliers(c *gin.Context) {
	suppliers, err := h.Service.List()
	if err != nil {
		respondError(c, h.Log, "GetSuppliers", "Error al obtener proveedores", err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) GetSupplierByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de proveedor inválido"})
		return
	}

	supplier, err := h.Service.Get(id)
	if err != nil {
		respondError(c, h.Log, "GetSupplierByID", "Error al obtener proveedor", err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de proveedor inválido"})
		return
	}

	var req requests.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nombre de proveedor es requerido"})
		return
	}

	err = h.Service.Update(id, services.SupplierInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		respondError(c, h.Log, "UpdateSupplier", "Error al actualizar proveedor", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proveedor actualizado exitosamente"})
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de proveedor inválido"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		respondError(c, h.Log, "DeleteSupplier", "Error al eliminar proveedor", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proveedor eliminado exitosamente"})
}
