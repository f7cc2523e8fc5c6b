package service

import (
	"time"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/internal/engine/repo"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/id"
	"github.com/rentfold/rentfold/pkg/log"
)

type PaymentService struct {
	paymentRepo repo.IPaymentRepository
	tenantRepo  repo.ITenantRepository
}

func NewPaymentService(paymentRepo repo.IPaymentRepository, tenantRepo repo.ITenantRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, tenantRepo: tenantRepo}
}

// CreatePayment records a rent payment for one of the caller's tenants.
// The tenant must belong to the caller's company.
func (ps *PaymentService) CreatePayment(cu *model.CurrentUser, req *model.CreatePaymentReq) (*model.Payment, error) {
	if req.TenantId == "" {
		return nil, http.BadRequest.WithMsg("TenantId is required")
	}
	if req.AmountCents <= 0 {
		return nil, http.BadRequest.WithMsg("Amount must be positive")
	}

	tenant, err := ps.tenantRepo.BelongsToCompany(req.TenantId, cu.CompanyId)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, http.TenantNotFound
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}
	paidAt := req.PaidAt
	if status == "paid" && paidAt == nil {
		now := time.Now()
		paidAt = &now
	}

	payment := &model.Payment{
		PaymentId:   id.GetULID(),
		CompanyId:   cu.CompanyId,
		TenantId:    tenant.TenantId,
		PropertyId:  tenant.PropertyId,
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Status:      status,
		PaidAt:      paidAt,
	}
	if err := ps.paymentRepo.AddPayment(payment); err != nil {
		log.Errorw("failed to create payment", "companyId", cu.CompanyId, "error", err)
		return nil, err
	}

	return payment, nil
}

func (ps *PaymentService) ListPayments(cu *model.CurrentUser) ([]model.Payment, error) {
	return ps.paymentRepo.ListByCompany(cu.CompanyId)
}
