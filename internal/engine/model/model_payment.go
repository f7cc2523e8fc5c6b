package model

import "time"

type Payment struct {
	BaseModel
	PaymentId   string     `gorm:"column:payment_id;uniqueIndex" json:"paymentId"` // ulid, sortable
	CompanyId   string     `gorm:"column:company_id;index" json:"companyId"`
	TenantId    string     `gorm:"column:tenant_id;index" json:"tenantId"`
	PropertyId  string     `gorm:"column:property_id" json:"propertyId"`
	AmountCents int64      `gorm:"column:amount_cents" json:"amountCents"`
	Method      string     `gorm:"column:method" json:"method"` // card/transfer/cash
	Status      string     `gorm:"column:status" json:"status"` // pending/paid/failed
	PaidAt      *time.Time `gorm:"column:paid_at" json:"paidAt"`
}

func (Payment) TableName() string {
	return "payments"
}

type CreatePaymentReq struct {
	TenantId    string     `json:"tenantId"`
	AmountCents int64      `json:"amountCents"`
	Method      string     `json:"method"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paidAt"`
}
