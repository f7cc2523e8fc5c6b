// Copyright 2025 Rentfold Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"errors"
	"strings"
	"time"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/internal/engine/repo"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/http/jwt"
	"github.com/rentfold/rentfold/pkg/id"
	"github.com/rentfold/rentfold/pkg/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns identity resolution: mapping a verified external
// identity onto a local user and its company memberships, creating the
// user on first sight and absorbing any pending invites for its email.
type AuthService struct {
	userRepo   repo.IUserRepository
	memberRepo repo.IMemberRepository
	inviteRepo repo.IInviteRepository
}

func NewAuthService(
	userRepo repo.IUserRepository,
	memberRepo repo.IMemberRepository,
	inviteRepo repo.IInviteRepository,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		memberRepo: memberRepo,
		inviteRepo: inviteRepo,
	}
}

// Register creates a local-auth user and issues a token pair.
func (as *AuthService) Register(register *model.Register, auth *http.Auth) (*model.LoginResp, error) {
	email := strings.ToLower(strings.TrimSpace(register.Email))
	if email == "" || register.Name == "" {
		return nil, http.BadRequest.WithMsg("Email and name are required")
	}
	if len(register.Password) < 6 {
		return nil, http.BadRequest.WithMsg("Password must be at least 6 characters")
	}

	if _, err := as.userRepo.GetUserByEmail(email); err == nil {
		return nil, http.UserAlreadyExist
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(register.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userId := id.GetUUIDWithoutDashes()
	user := &model.User{
		UserId:       userId,
		Subject:      "local|" + userId,
		Email:        email,
		Name:         register.Name,
		PasswordHash: string(hash),
	}
	if err := as.userRepo.AddUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, http.UserAlreadyExist
		}
		return nil, err
	}

	// first-time path: pick up invites that were waiting for this email
	as.absorbPendingInvites(user)

	return as.loginResp(user, auth)
}

// Login verifies the local-auth credentials and issues a token pair.
func (as *AuthService) Login(login *model.Login, auth *http.Auth) (*model.LoginResp, error) {
	email := strings.ToLower(strings.TrimSpace(login.Email))
	user, err := as.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.IncorrectCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(login.Password)) != nil {
		return nil, http.IncorrectCredentials
	}

	return as.loginResp(user, auth)
}

func (as *AuthService) loginResp(user *model.User, auth *http.Auth) (*model.LoginResp, error) {
	aToken, rToken, err := jwt.GenToken(user.Subject, user.Email, user.Name, auth)
	if err != nil {
		log.Errorw("failed to generate tokens", "userId", user.UserId, "error", err)
		return nil, err
	}

	return &model.LoginResp{
		UserInfo: model.UserInfo{
			UserId:    user.UserId,
			Email:     user.Email,
			Name:      user.Name,
			AvatarUrl: user.AvatarUrl,
		},
		Token: map[string]string{
			"accessToken":  aToken,
			"refreshToken": rToken,
		},
	}, nil
}

// ResolveIdentity looks up or creates the local user for a verified
// identity and returns the profile with all memberships. Safe to call
// repeatedly for the same identity.
func (as *AuthService) ResolveIdentity(identity model.Identity) (*model.ProfileResp, error) {
	user, created, err := as.resolveUser(identity)
	if err != nil {
		return nil, err
	}

	if created {
		as.absorbPendingInvites(user)
	}

	memberships, err := as.memberRepo.ListMembershipsByUser(user.UserId)
	if err != nil {
		return nil, err
	}

	return &model.ProfileResp{
		User: model.UserInfo{
			UserId:    user.UserId,
			Email:     user.Email,
			Name:      user.Name,
			AvatarUrl: user.AvatarUrl,
		},
		Memberships: memberships,
	}, nil
}

// GetProfile returns the resolved user's profile and memberships.
func (as *AuthService) GetProfile(userId string) (*model.ProfileResp, error) {
	user, err := as.userRepo.GetUserByUserId(userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.ProfileNotFound
		}
		return nil, err
	}

	memberships, err := as.memberRepo.ListMembershipsByUser(user.UserId)
	if err != nil {
		return nil, err
	}

	return &model.ProfileResp{
		User: model.UserInfo{
			UserId:    user.UserId,
			Email:     user.Email,
			Name:      user.Name,
			AvatarUrl: user.AvatarUrl,
		},
		Memberships: memberships,
	}, nil
}

// UpdateProfile changes the mutable profile fields (display name, avatar);
// user_id, subject and email are fixed at creation.
func (as *AuthService) UpdateProfile(cu *model.CurrentUser, req *model.UpdateProfileReq) (*model.ProfileResp, error) {
	updates := map[string]any{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.AvatarUrl != "" {
		updates["avatar_url"] = req.AvatarUrl
	}
	if len(updates) == 0 {
		return nil, http.BadRequest.WithMsg("Nothing to update")
	}

	if err := as.userRepo.UpdateUser(cu.UserId, updates); err != nil {
		log.Errorw("failed to update profile", "userId", cu.UserId, "error", err)
		return nil, err
	}

	return as.GetProfile(cu.UserId)
}

// ResolveCurrent maps a verified identity to the request context: the
// local user, if one exists, plus the earliest-created active membership.
func (as *AuthService) ResolveCurrent(identity model.Identity) (*model.CurrentUser, error) {
	cu := &model.CurrentUser{
		Subject: identity.Subject,
		Email:   identity.Email,
		Name:    identity.Name,
	}

	user, err := as.userRepo.GetUserBySubject(identity.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// unseen subject: the caller may still hit POST /auth/me
			return cu, nil
		}
		return nil, err
	}

	cu.UserId = user.UserId
	cu.Email = user.Email
	cu.Name = user.Name
	cu.AvatarUrl = user.AvatarUrl

	membership, err := as.memberRepo.FirstActiveByUser(user.UserId)
	if err != nil {
		return nil, err
	}
	if membership != nil {
		cu.CompanyId = membership.CompanyId
		cu.Role = membership.Role
	}

	return cu, nil
}

// resolveUser finds the user for the subject, creating it on first sight.
// Two requests may race on the insert; the loser re-reads the winner's row.
func (as *AuthService) resolveUser(identity model.Identity) (user *model.User, created bool, err error) {
	user, err = as.userRepo.GetUserBySubject(identity.Subject)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user = &model.User{
		UserId:  id.GetUUIDWithoutDashes(),
		Subject: identity.Subject,
		Email:   strings.ToLower(strings.TrimSpace(identity.Email)),
		Name:    identity.Name,
	}
	if err = as.userRepo.AddUser(user); err == nil {
		return user, true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, false, err
	}

	// lost the insert race, or the email already belongs to a local-auth
	// account; fall back to the existing row
	if user, err = as.userRepo.GetUserBySubject(identity.Subject); err == nil {
		return user, false, nil
	}
	if user, err = as.userRepo.GetUserByEmail(strings.ToLower(identity.Email)); err == nil {
		return user, false, nil
	}
	return nil, false, err
}

// absorbPendingInvites accepts every pending, non-expired invite matching
// the user's email. Best-effort sequential: a failed invite is logged and
// skipped, and re-running never duplicates memberships or re-accepts an
// invite (the upsert conflict target and the pending-status guard hold).
func (as *AuthService) absorbPendingInvites(user *model.User) {
	invites, err := as.inviteRepo.ListAcceptableByEmail(strings.ToLower(user.Email), time.Now())
	if err != nil {
		log.Errorw("failed to list pending invites", "userId", user.UserId, "error", err)
		return
	}

	for i := range invites {
		inv := &invites[i]
		if err := as.inviteRepo.Accept(inv, user.UserId); err != nil {
			log.Errorw("failed to absorb invite",
				"userId", user.UserId, "inviteId", inv.InviteId, "error", err)
			continue
		}
		log.Infow("absorbed pending invite",
			"userId", user.UserId, "companyId", inv.CompanyId, "role", inv.Role)
	}
}
