package model

type Property struct {
	BaseModel
	PropertyId  string `gorm:"column:property_id;uniqueIndex" json:"propertyId"`
	CompanyId   string `gorm:"column:company_id;index" json:"companyId"`
	Name        string `gorm:"column:name" json:"name"`
	Address     string `gorm:"column:address" json:"address"`
	Type        string `gorm:"column:type" json:"type"` // apartment/house/commercial
	Units       int    `gorm:"column:units" json:"units"`
	MonthlyRent int64  `gorm:"column:monthly_rent" json:"monthlyRent"` // cents
	Status      string `gorm:"column:status" json:"status"`
}

func (Property) TableName() string {
	return "properties"
}

type CreatePropertyReq struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Type        string `json:"type"`
	Units       int    `json:"units"`
	MonthlyRent int64  `json:"monthlyRent"`
	Status      string `json:"status"`
}
