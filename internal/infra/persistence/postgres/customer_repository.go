package postgres

import (
	"travelhub/internal/domain/entity"
	"travelhub/internal/domain/repository"
	"travelhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

var customerColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

// NewCustomerRepository returns the generic repository bound to the customers table.
func NewCustomerRepository(db *gorm.DB) repository.Repository[entity.Customer] {
	return newGormRepository[entity.Customer, model.CustomerModel](
		db,
		"customer",
		customerColumns,
		fromCustomerDomain,
		toCustomerDomain,
		syncCustomer,
	)
}
