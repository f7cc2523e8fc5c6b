package repo

import (
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/database"
)

type IPaymentRepository interface {
	AddPayment(p *model.Payment) error
	ListByCompany(companyId string) ([]model.Payment, error)
}

type PaymentRepo struct {
	db           database.IDatabase
	paymentModel *model.Payment
}

func NewPaymentRepo(db database.IDatabase) IPaymentRepository {
	return &PaymentRepo{
		db:           db,
		paymentModel: &model.Payment{},
	}
}

func (pr *PaymentRepo) AddPayment(p *model.Payment) error {
	return pr.db.Database().Create(p).Error
}

func (pr *PaymentRepo) ListByCompany(companyId string) ([]model.Payment, error) {
	var payments []model.Payment
	err := pr.db.Database().Table(pr.paymentModel.TableName()).
		Where("company_id = ?", companyId).
		Order("payment_id DESC").
		Find(&payments).Error
	return payments, err
}
