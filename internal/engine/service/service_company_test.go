package service

import (
	"testing"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/stretchr/testify/require"
)

func TestCreateCompany(t *testing.T) {
	userRepo, memberRepo, companyRepo, _ := newFakeRepos()
	require.NoError(t, userRepo.AddUser(&model.User{UserId: "u1", Subject: "s1", Email: "u1@t.test"}))

	cs := NewCompanyService(companyRepo, memberRepo)
	cu := &model.CurrentUser{UserId: "u1", Email: "u1@t.test"}

	company, err := cs.CreateCompany(cu, &model.CreateCompanyReq{Name: "  Acme Rentals  "})
	require.NoError(t, err)
	require.Equal(t, "Acme Rentals", company.Name)
	require.NotEmpty(t, company.CompanyId)

	companies, err := cs.ListCompanies("u1")
	require.NoError(t, err)
	require.Len(t, companies, 1)
	require.Equal(t, model.RoleOwner, companies[0].Role)
}

func TestCreateCompanyNameRequired(t *testing.T) {
	_, memberRepo, companyRepo, _ := newFakeRepos()
	cs := NewCompanyService(companyRepo, memberRepo)

	_, err := cs.CreateCompany(&model.CurrentUser{UserId: "u1"}, &model.CreateCompanyReq{Name: "   "})
	require.ErrorIs(t, err, http.CompanyNameRequired)
}

func TestCreateCompanyOwnerOnlyOnce(t *testing.T) {
	userRepo, memberRepo, companyRepo, _ := newFakeRepos()
	require.NoError(t, userRepo.AddUser(&model.User{UserId: "u1", Subject: "s1", Email: "u1@t.test"}))

	cs := NewCompanyService(companyRepo, memberRepo)
	cu := &model.CurrentUser{UserId: "u1"}

	_, err := cs.CreateCompany(cu, &model.CreateCompanyReq{Name: "First"})
	require.NoError(t, err)

	_, err = cs.CreateCompany(cu, &model.CreateCompanyReq{Name: "Second"})
	require.ErrorIs(t, err, http.AlreadyOwnCompany)
}

func TestDisabledOwnerRowStillBlocksOwning(t *testing.T) {
	userRepo, memberRepo, companyRepo, _ := newFakeRepos()
	require.NoError(t, userRepo.AddUser(&model.User{UserId: "u1", Subject: "s1", Email: "u1@t.test"}))
	memberRepo.members = append(memberRepo.members, &model.CompanyMember{
		CompanyId: "shut-down", UserId: "u1",
		Role: model.RoleOwner, Status: model.MemberStatusDisabled,
	})

	cs := NewCompanyService(companyRepo, memberRepo)
	_, err := cs.CreateCompany(&model.CurrentUser{UserId: "u1"}, &model.CreateCompanyReq{Name: "Next"})
	require.ErrorIs(t, err, http.AlreadyOwnCompany)
}

func TestStaffMembershipDoesNotBlockOwning(t *testing.T) {
	userRepo, memberRepo, companyRepo, _ := newFakeRepos()
	require.NoError(t, userRepo.AddUser(&model.User{UserId: "u1", Subject: "s1", Email: "u1@t.test"}))
	require.NoError(t, memberRepo.Upsert(&model.CompanyMember{
		CompanyId: "other", UserId: "u1", Role: model.RoleStaff, Status: model.MemberStatusActive,
	}))

	cs := NewCompanyService(companyRepo, memberRepo)
	_, err := cs.CreateCompany(&model.CurrentUser{UserId: "u1"}, &model.CreateCompanyReq{Name: "Mine"})
	require.NoError(t, err)
}

func TestListMembersCompanyMismatch(t *testing.T) {
	userRepo, memberRepo, companyRepo, _ := newFakeRepos()
	require.NoError(t, userRepo.AddUser(&model.User{UserId: "u1", Subject: "s1", Email: "u1@t.test"}))

	cs := NewCompanyService(companyRepo, memberRepo)
	cu := &model.CurrentUser{UserId: "u1"}
	company, err := cs.CreateCompany(cu, &model.CreateCompanyReq{Name: "Acme"})
	require.NoError(t, err)
	cu.CompanyId = company.CompanyId

	_, err = cs.ListMembers(cu, "someone-elses-company")
	require.ErrorIs(t, err, http.CompanyMismatch)

	members, err := cs.ListMembers(cu, company.CompanyId)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, model.RoleOwner, members[0].Role)
	require.Equal(t, "u1@t.test", members[0].Email)
}
