package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Data tables follow the order of dataset.Tables, runs come first.
func AllModels() []DDLGenerator {
	return []DDLGenerator{
		&Run{},
		&Period{},
		&Plant{},
		&Line{},
		&DistCenter{},
		&Customer{},
		&Product{},
		&Route{},
		&Demand{},
		&Capability{},
		&Rate{},
	}
}

// Model returns the model of a table or nil if the table is unknown.
func Model(tableName string) DDLGenerator {
	for _, v := range AllModels() {
		if v.TableName() == tableName {
			return v
		}
	}
	return nil
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	models := AllModels()
	res := make([]any, len(models))
	for i := range models {
		res[i] = models[i]
	}
	return db.AutoMigrate(res...)
}
