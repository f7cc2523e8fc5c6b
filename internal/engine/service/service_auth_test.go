package service

import (
	"testing"
	"time"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/stretchr/testify/require"
)

func testAuth() *http.Auth {
	return &http.Auth{
		SecretKey:     "test-secret",
		Issuer:        "rentfold-test",
		AccessExpire:  15,
		RefreshExpire: 10080,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	userRepo, memberRepo, _, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)

	resp, err := as.Register(&model.Register{
		Email: "Jane@Acme.Test", Name: "Jane", Password: "hunter22",
	}, testAuth())
	require.NoError(t, err)
	require.Equal(t, "jane@acme.test", resp.UserInfo.Email)
	require.NotEmpty(t, resp.Token["accessToken"])
	require.NotEmpty(t, resp.Token["refreshToken"])

	login, err := as.Login(&model.Login{Email: "jane@acme.test", Password: "hunter22"}, testAuth())
	require.NoError(t, err)
	require.Equal(t, resp.UserInfo.UserId, login.UserInfo.UserId)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo, memberRepo, _, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)

	_, err := as.Register(&model.Register{Email: "jane@acme.test", Name: "Jane", Password: "hunter22"}, testAuth())
	require.NoError(t, err)

	_, err = as.Register(&model.Register{Email: "JANE@acme.test", Name: "Jane Two", Password: "hunter22"}, testAuth())
	require.ErrorIs(t, err, http.UserAlreadyExist)
}

func TestRegisterValidation(t *testing.T) {
	userRepo, memberRepo, _, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)

	_, err := as.Register(&model.Register{Email: "", Name: "Jane", Password: "hunter22"}, testAuth())
	require.Error(t, err)

	_, err = as.Register(&model.Register{Email: "jane@acme.test", Name: "Jane", Password: "short"}, testAuth())
	require.Error(t, err)
}

func TestLoginBadCredentials(t *testing.T) {
	userRepo, memberRepo, _, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)

	_, err := as.Register(&model.Register{Email: "jane@acme.test", Name: "Jane", Password: "hunter22"}, testAuth())
	require.NoError(t, err)

	_, err = as.Login(&model.Login{Email: "jane@acme.test", Password: "wrong"}, testAuth())
	require.ErrorIs(t, err, http.IncorrectCredentials)

	_, err = as.Login(&model.Login{Email: "nobody@acme.test", Password: "hunter22"}, testAuth())
	require.ErrorIs(t, err, http.IncorrectCredentials)
}

func TestResolveIdentityCreatesUser(t *testing.T) {
	userRepo, memberRepo, _, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)

	profile, err := as.ResolveIdentity(model.Identity{
		Subject: "auth0|abc", Email: "Jane@Acme.Test", Name: "Jane",
	})
	require.NoError(t, err)
	require.NotEmpty(t, profile.User.UserId)
	require.Equal(t, "jane@acme.test", profile.User.Email)
	require.Empty(t, profile.Memberships)

	// resolving the same identity again reuses the row
	again, err := as.ResolveIdentity(model.Identity{
		Subject: "auth0|abc", Email: "jane@acme.test", Name: "Jane",
	})
	require.NoError(t, err)
	require.Equal(t, profile.User.UserId, again.User.UserId)
	require.Len(t, userRepo.users, 1)
}

func TestResolveIdentityAbsorbsInvites(t *testing.T) {
	userRepo, memberRepo, companyRepo, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)
	cs := NewCompanyService(companyRepo, memberRepo)
	is := NewInviteService(inviteRepo, memberRepo, companyRepo)

	require.NoError(t, userRepo.AddUser(&model.User{
		UserId: "u-owner", Subject: "auth0|owner", Email: "owner@acme.test", Name: "Owner",
	}))
	ownerCu := &model.CurrentUser{UserId: "u-owner", Email: "owner@acme.test"}
	company, err := cs.CreateCompany(ownerCu, &model.CreateCompanyReq{Name: "Acme"})
	require.NoError(t, err)
	ownerCu.CompanyId = company.CompanyId

	invite, err := is.CreateInvite(ownerCu, &model.CreateInviteReq{
		Email: "newhire@acme.test", Role: model.RoleStaff,
	})
	require.NoError(t, err)

	// first login of the invitee picks up the pending invite
	profile, err := as.ResolveIdentity(model.Identity{
		Subject: "auth0|newhire", Email: "NewHire@Acme.Test", Name: "New Hire",
	})
	require.NoError(t, err)
	require.Len(t, profile.Memberships, 1)
	require.Equal(t, company.CompanyId, profile.Memberships[0].CompanyId)
	require.Equal(t, model.RoleStaff, profile.Memberships[0].Role)
	require.Equal(t, model.MemberStatusActive, profile.Memberships[0].Status)

	// the invite is consumed, not left pending
	got, err := inviteRepo.GetAcceptableByToken(invite.Token, time.Now())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestResolveIdentityExpiredInviteIgnored(t *testing.T) {
	userRepo, memberRepo, _, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)

	require.NoError(t, inviteRepo.Create(&model.Invite{
		InviteId: "inv1", CompanyId: "c1", Email: "late@acme.test",
		Role: model.RoleStaff, Token: "tok1", Status: model.InviteStatusPending,
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	profile, err := as.ResolveIdentity(model.Identity{
		Subject: "auth0|late", Email: "late@acme.test", Name: "Late",
	})
	require.NoError(t, err)
	require.Empty(t, profile.Memberships)
}

func TestResolveUserInsertRace(t *testing.T) {
	userRepo, memberRepo, _, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)

	// an account with the same email but another subject already exists,
	// so the insert hits the email unique index and we fall back to it
	require.NoError(t, userRepo.AddUser(&model.User{
		UserId: "u-winner", Subject: "local|u-winner", Email: "raced@acme.test", Name: "Raced",
	}))

	profile, err := as.ResolveIdentity(model.Identity{
		Subject: "auth0|raced", Email: "raced@acme.test", Name: "Raced",
	})
	require.NoError(t, err)
	require.Equal(t, "u-winner", profile.User.UserId)
	require.Len(t, userRepo.users, 1)
}

func TestResolveCurrent(t *testing.T) {
	userRepo, memberRepo, companyRepo, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)
	cs := NewCompanyService(companyRepo, memberRepo)

	// unknown subject keeps the claims but has no profile
	cu, err := as.ResolveCurrent(model.Identity{Subject: "auth0|ghost", Email: "g@t.test", Name: "G"})
	require.NoError(t, err)
	require.False(t, cu.HasProfile())
	require.Equal(t, "auth0|ghost", cu.Subject)

	require.NoError(t, userRepo.AddUser(&model.User{
		UserId: "u1", Subject: "auth0|u1", Email: "u1@t.test", Name: "U1",
	}))
	cu, err = as.ResolveCurrent(model.Identity{Subject: "auth0|u1"})
	require.NoError(t, err)
	require.True(t, cu.HasProfile())
	require.False(t, cu.HasCompany())

	company, err := cs.CreateCompany(&model.CurrentUser{UserId: "u1"}, &model.CreateCompanyReq{Name: "Acme"})
	require.NoError(t, err)

	cu, err = as.ResolveCurrent(model.Identity{Subject: "auth0|u1"})
	require.NoError(t, err)
	require.True(t, cu.HasCompany())
	require.Equal(t, company.CompanyId, cu.CompanyId)
	require.Equal(t, model.RoleOwner, cu.Role)
}

func TestResolveCurrentEarliestMembershipWins(t *testing.T) {
	userRepo, memberRepo, _, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)

	require.NoError(t, userRepo.AddUser(&model.User{
		UserId: "u1", Subject: "auth0|u1", Email: "u1@t.test", Name: "U1",
	}))

	// two active memberships; the older one decides the current company,
	// regardless of insertion order
	now := time.Now()
	memberRepo.members = append(memberRepo.members,
		&model.CompanyMember{
			BaseModel: model.BaseModel{CreatedAt: now},
			CompanyId: "c-newer", UserId: "u1",
			Role: model.RoleOwner, Status: model.MemberStatusActive,
		},
		&model.CompanyMember{
			BaseModel: model.BaseModel{CreatedAt: now.Add(-24 * time.Hour)},
			CompanyId: "c-older", UserId: "u1",
			Role: model.RoleStaff, Status: model.MemberStatusActive,
		},
	)

	cu, err := as.ResolveCurrent(model.Identity{Subject: "auth0|u1"})
	require.NoError(t, err)
	require.Equal(t, "c-older", cu.CompanyId)
	require.Equal(t, model.RoleStaff, cu.Role)
}

func TestUpdateProfile(t *testing.T) {
	userRepo, memberRepo, _, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)

	require.NoError(t, userRepo.AddUser(&model.User{
		UserId: "u1", Subject: "auth0|u1", Email: "u1@t.test", Name: "Old Name",
	}))
	cu := &model.CurrentUser{UserId: "u1", Email: "u1@t.test"}

	_, err := as.UpdateProfile(cu, &model.UpdateProfileReq{})
	require.Error(t, err)

	profile, err := as.UpdateProfile(cu, &model.UpdateProfileReq{Name: "  New Name  "})
	require.NoError(t, err)
	require.Equal(t, "New Name", profile.User.Name)
	require.Equal(t, "u1@t.test", profile.User.Email)
}

func TestGetProfile(t *testing.T) {
	userRepo, memberRepo, _, inviteRepo := newFakeRepos()
	as := NewAuthService(userRepo, memberRepo, inviteRepo)

	_, err := as.GetProfile("missing")
	require.ErrorIs(t, err, http.ProfileNotFound)

	require.NoError(t, userRepo.AddUser(&model.User{
		UserId: "u1", Subject: "auth0|u1", Email: "u1@t.test", Name: "U1",
	}))
	profile, err := as.GetProfile("u1")
	require.NoError(t, err)
	require.Equal(t, "u1@t.test", profile.User.Email)
}
