package service

import (
	"strings"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/internal/engine/repo"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/id"
	"github.com/rentfold/rentfold/pkg/log"
)

type PropertyService struct {
	propertyRepo repo.IPropertyRepository
}

func NewPropertyService(propertyRepo repo.IPropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

func (ps *PropertyService) CreateProperty(cu *model.CurrentUser, req *model.CreatePropertyReq) (*model.Property, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(req.Address) == "" {
		return nil, http.BadRequest.WithMsg("Name and address are required")
	}

	units := req.Units
	if units <= 0 {
		units = 1
	}
	status := req.Status
	if status == "" {
		status = "active"
	}

	property := &model.Property{
		PropertyId:  id.GetUUIDWithoutDashes(),
		CompanyId:   cu.CompanyId,
		Name:        name,
		Address:     strings.TrimSpace(req.Address),
		Type:        req.Type,
		Units:       units,
		MonthlyRent: req.MonthlyRent,
		Status:      status,
	}
	if err := ps.propertyRepo.AddProperty(property); err != nil {
		log.Errorw("failed to create property", "companyId", cu.CompanyId, "error", err)
		return nil, err
	}

	return property, nil
}

func (ps *PropertyService) ListProperties(cu *model.CurrentUser) ([]model.Property, error) {
	return ps.propertyRepo.ListByCompany(cu.CompanyId)
}
