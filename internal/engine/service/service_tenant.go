package service

import (
	"strings"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/internal/engine/repo"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/id"
	"github.com/rentfold/rentfold/pkg/log"
)

type TenantService struct {
	tenantRepo   repo.ITenantRepository
	propertyRepo repo.IPropertyRepository
}

func NewTenantService(tenantRepo repo.ITenantRepository, propertyRepo repo.IPropertyRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo, propertyRepo: propertyRepo}
}

// CreateTenant records a lease occupant against one of the caller's
// properties. The property must belong to the caller's company.
func (ts *TenantService) CreateTenant(cu *model.CurrentUser, req *model.CreateTenantReq) (*model.TenantRecord, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.PropertyId == "" {
		return nil, http.BadRequest.WithMsg("Name and propertyId are required")
	}

	ok, err := ts.propertyRepo.BelongsToCompany(req.PropertyId, cu.CompanyId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, http.PropertyNotFound
	}

	tenant := &model.TenantRecord{
		TenantId:     id.GetUUIDWithoutDashes(),
		CompanyId:    cu.CompanyId,
		PropertyId:   req.PropertyId,
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		LeaseEndDate: req.LeaseEndDate,
		Status:       "active",
	}
	if err := ts.tenantRepo.AddTenant(tenant); err != nil {
		log.Errorw("failed to create tenant", "companyId", cu.CompanyId, "error", err)
		return nil, err
	}

	return tenant, nil
}

func (ts *TenantService) ListTenants(cu *model.CurrentUser) ([]model.TenantWithProperty, error) {
	return ts.tenantRepo.ListByCompany(cu.CompanyId)
}
