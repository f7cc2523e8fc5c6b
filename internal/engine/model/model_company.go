package model

type Company struct {
	BaseModel
	CompanyId string `gorm:"column:company_id;uniqueIndex" json:"companyId"`
	Name      string `gorm:"column:name" json:"name"`
}

func (Company) TableName() string {
	return "companies"
}

type CreateCompanyReq struct {
	Name string `json:"name"`
}

// CompanyWithRole is a company joined with the caller's role in it.
type CompanyWithRole struct {
	CompanyId string `json:"companyId"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
}
