package models

import "gorm.io/gorm"

type Client struct {
	gorm.Model
	ClientCode    string `json:"client_code" gorm:"unique"`
	ClientName    string `json:"client_name"`
	Address1      string `json:"address1"`
	Address2      string `json:"address2"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ContactPerson string `json:"contact_person"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}
