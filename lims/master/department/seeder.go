package department

import (
	"errors"

	"gorm.io/gorm"
)

func SeedDepartments(db *gorm.DB) {
	departments := []Department{
		{Code: "CHEM", Name: "Chemistry", Description: "Chemical analysis"},
		{Code: "MICRO", Name: "Microbiology", Description: "Microbiological testing"},
		{Code: "LOG", Name: "Logistics", Description: "Sample receiving and dispatch"},
	}

	for _, d := range departments {
		var existing Department
		if err := db.Where("code = ?", d.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&d)
			}
		}
	}
}
