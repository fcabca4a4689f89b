package main

import (
	"time"

	"github.com/sara-ops/sara-api/internal/config"
	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/logger"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/repository"
)

// Seeds a development database with a product catalog and a couple of
// approved customers so the order form has something to work with.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Fatalf("failed to seed default admin: %v", err)
	}

	products := []models.Product{
		{Name: "Bondiola", Unit: "kg", Active: true},
		{Name: "Jamón cocido", Unit: "kg", Active: true},
		{Name: "Salame Milán", Unit: "kg", Active: true},
		{Name: "Panceta ahumada", Unit: "kg", Active: true},
		{Name: "Queso tybo", Unit: "kg", Active: true},
	}
	for i := range products {
		var existing models.Product
		err := models.DB.Where("name = ?", products[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err := models.DB.Create(&products[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed product %q: %v", products[i].Name, err)
		}
	}

	customers := []models.Customer{
		{
			Name:           "Carnicería El Buen Corte",
			TaxIDType:      constants.TaxIDTypeCUIT,
			TaxIDNumber:    "30712345678",
			Category:       constants.CustomerCategoryButcher,
			Active:         true,
			ApprovalStatus: constants.ApprovalStatusApproved,
			CreatedBy:      "seed",
		},
		{
			Name:           "Restaurante La Estación",
			TaxIDType:      constants.TaxIDTypeCUIT,
			TaxIDNumber:    "30787654321",
			Category:       constants.CustomerCategoryRestaurant,
			Active:         true,
			ApprovalStatus: constants.ApprovalStatusApproved,
			CreatedBy:      "seed",
		},
	}
	for i := range customers {
		var existing models.Customer
		err := models.DB.Where("name = ?", customers[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		customers[i].NameKey = repository.NameKey(customers[i].Name)
		if err := models.DB.Create(&customers[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed customer %q: %v", customers[i].Name, err)
		}
	}

	stdLog.Printf("seed finished at %s", time.Now().Format(time.RFC3339))
}
