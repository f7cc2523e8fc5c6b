package service

import (
	"strings"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/internal/engine/repo"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/id"
	"github.com/rentfold/rentfold/pkg/log"
)

type CompanyService struct {
	companyRepo repo.ICompanyRepository
	memberRepo  repo.IMemberRepository
}

func NewCompanyService(companyRepo repo.ICompanyRepository, memberRepo repo.IMemberRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, memberRepo: memberRepo}
}

// CreateCompany creates a company with the caller as its owner. A user
// may own at most one company, regardless of other memberships.
func (cs *CompanyService) CreateCompany(cu *model.CurrentUser, req *model.CreateCompanyReq) (*model.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, http.CompanyNameRequired
	}

	owns, err := cs.memberRepo.HasOwnerMembership(cu.UserId)
	if err != nil {
		return nil, err
	}
	if owns {
		return nil, http.AlreadyOwnCompany
	}

	company := &model.Company{
		CompanyId: id.GetUUIDWithoutDashes(),
		Name:      name,
	}
	if err := cs.companyRepo.CreateWithOwner(company, cu.UserId); err != nil {
		log.Errorw("failed to create company", "userId", cu.UserId, "error", err)
		return nil, err
	}

	log.Infow("company created", "companyId", company.CompanyId, "ownerId", cu.UserId)
	return company, nil
}

// ListCompanies returns the companies the user is an active member of.
func (cs *CompanyService) ListCompanies(userId string) ([]model.CompanyWithRole, error) {
	return cs.companyRepo.ListByUser(userId)
}

// ListMembers returns the member roster of the caller's own company. The
// path id must match the caller's company; cross-company reads are refused.
func (cs *CompanyService) ListMembers(cu *model.CurrentUser, companyId string) ([]model.MemberInfo, error) {
	if companyId != cu.CompanyId {
		return nil, http.CompanyMismatch
	}
	return cs.memberRepo.ListMembers(companyId)
}
