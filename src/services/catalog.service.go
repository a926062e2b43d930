package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"compras-backend/src/models"
)

// Master-data persistence consumed by the order engine. Plain single-row
// CRUD; mutations are admin-only at the routing layer.

// ============ SUPPLIER SERVICE ============
type SupplierService struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

type SupplierInput struct {
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
}

func (s *SupplierService) Create(input SupplierInput) (*models.Supplier, error) {
	if input.Name == "" {
		return nil, &ValidationError{Message: "Nombre de proveedor es requerido"}
	}

	supplier := models.Supplier{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
	}
	if err := s.DB.Create(&supplier).Error; err != nil {
		return nil, &PersistenceError{Op: "crear proveedor", Err: err}
	}
	return &supplier, nil
}

func (s *SupplierService) List() ([]models.Supplier, error) {
	suppliers := make([]models.Supplier, 0)
	if err := s.DB.Order("name").Find(&suppliers).Error; err != nil {
		return nil, &PersistenceError{Op: "obtener proveedores", Err: err}
	}
	return suppliers, nil
}

func (s *SupplierService) Get(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.DB.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Proveedor no encontrado"}
		}
		return nil, &PersistenceError{Op: "obtener proveedor", Err: err}
	}
	return &supplier, nil
}

func (s *SupplierService) Update(id uint, input SupplierInput) error {
	result := s.DB.Model(&models.Supplier{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":           input.Name,
			"contact_person": input.ContactPerson,
			"email":          input.Email,
			"phone":          input.Phone,
			"address":        input.Address,
		})
	if result.Error != nil {
		return &PersistenceError{Op: "actualizar proveedor", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Message: "Proveedor no encontrado"}
	}
	return nil
}

func (s *SupplierService) Delete(id uint) error {
	result := s.DB.Delete(&models.Supplier{}, id)
	if result.Error != nil {
		return &PersistenceError{Op: "eliminar proveedor", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Message: "Proveedor no encontrado"}
	}
	return nil
}

// ============ PRODUCT SERVICE ============
type ProductService struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

type ProductInput struct {
	Name        string
	Description *string
	Unit        string
}

func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if input.Name == "" || input.Unit == "" {
		return nil, &ValidationError{Message: "Nombre y unidad de producto son requeridos"}
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Unit:        input.Unit,
	}
	if err := s.DB.Create(&product).Error; err != nil {
		return nil, &PersistenceError{Op: "crear producto", Err: err}
	}
	return &product, nil
}

func (s *ProductService) List() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.DB.Order("name").Find(&products).Error; err != nil {
		return nil, &PersistenceError{Op: "obtener productos", Err: err}
	}
	return products, nil
}

func (s *ProductService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Producto no encontrado"}
		}
		return nil, &PersistenceError{Op: "obtener producto", Err: err}
	}
	return &product, nil
}

func (s *ProductService) Update(id uint, input ProductInput) error {
	result := s.DB.Model(&models.Product{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"unit":        input.Unit,
		})
	if result.Error != nil {
		return &PersistenceError{Op: "actualizar producto", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Message: "Producto no encontrado"}
	}
	return nil
}

func (s *ProductService) Delete(id uint) error {
	result := s.DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		return &PersistenceError{Op: "eliminar producto", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Message: "Producto no encontrado"}
	}
	return nil
}
