package model

import "time"

// TenantRecord is a lease occupant tracked per property. Distinct from the
// tenant membership role: a tenant record need not map to a login.
type TenantRecord struct {
	BaseModel
	TenantId     string     `gorm:"column:tenant_id;uniqueIndex" json:"tenantId"`
	CompanyId    string     `gorm:"column:company_id;index" json:"companyId"`
	PropertyId   string     `gorm:"column:property_id;index" json:"propertyId"`
	Name         string     `gorm:"column:name" json:"name"`
	Email        string     `gorm:"column:email" json:"email"`
	Phone        string     `gorm:"column:phone" json:"phone"`
	LeaseEndDate *time.Time `gorm:"column:lease_end_date" json:"leaseEndDate"`
	Status       string     `gorm:"column:status" json:"status"` // pending/active/ended
}

func (TenantRecord) TableName() string {
	return "tenants"
}

type CreateTenantReq struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	PropertyId   string     `json:"propertyId"`
	LeaseEndDate *time.Time `json:"leaseEndDate"`
}

// TenantWithProperty is a tenant record joined with its property name.
type TenantWithProperty struct {
	TenantRecord
	PropertyName string `json:"propertyName"`
}
