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
	"github.com/rentfold/rentfold/pkg/id"
	"github.com/rentfold/rentfold/pkg/log"
	"gorm.io/gorm"
)

type InviteService struct {
	inviteRepo  repo.IInviteRepository
	memberRepo  repo.IMemberRepository
	companyRepo repo.ICompanyRepository
}

func NewInviteService(
	inviteRepo repo.IInviteRepository,
	memberRepo repo.IMemberRepository,
	companyRepo repo.ICompanyRepository,
) *InviteService {
	return &InviteService{
		inviteRepo:  inviteRepo,
		memberRepo:  memberRepo,
		companyRepo: companyRepo,
	}
}

// CreateInvite issues a pending invite for the caller's company. At most
// one pending invite may exist per (company, email), and the email must
// not already belong to an active member.
func (is *InviteService) CreateInvite(cu *model.CurrentUser, req *model.CreateInviteReq) (*model.Invite, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, http.InviteEmailRequired
	}
	role := model.Role(req.Role)
	if !role.Assignable() {
		return nil, http.InvalidInviteRole
	}

	pending, err := is.inviteRepo.HasPendingByCompanyEmail(cu.CompanyId, email)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, http.DuplicateInvite
	}

	member, err := is.memberRepo.HasActiveMemberByEmail(cu.CompanyId, email)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, http.AlreadyMember
	}

	invite := &model.Invite{
		InviteId:  id.GetUUIDWithoutDashes(),
		CompanyId: cu.CompanyId,
		Email:     email,
		Role:      role,
		Token:     id.GetSecureToken(),
		Status:    model.InviteStatusPending,
		ExpiresAt: time.Now().Add(model.InviteDefaultTTL),
		CreatedBy: cu.UserId,
	}
	if err := is.inviteRepo.Create(invite); err != nil {
		// two issuers raced past the pending check; the partial unique
		// index keeps one pending invite per (company, email)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, http.DuplicateInvite
		}
		log.Errorw("failed to create invite", "companyId", cu.CompanyId, "error", err)
		return nil, err
	}

	log.Infow("invite created",
		"inviteId", invite.InviteId, "companyId", cu.CompanyId, "role", role)
	return invite, nil
}

// ListInvites returns all invites of the caller's company, newest first.
func (is *InviteService) ListInvites(cu *model.CurrentUser) ([]model.InviteWithCreator, error) {
	return is.inviteRepo.ListByCompany(cu.CompanyId)
}

// AcceptInvite redeems the token for the caller. The invite must be
// pending, unexpired and addressed to the caller's email; acceptance
// activates the membership and is idempotent at the storage layer.
func (is *InviteService) AcceptInvite(cu *model.CurrentUser, token string) (*model.MembershipInfo, error) {
	invite, err := is.inviteRepo.GetAcceptableByToken(token, time.Now())
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, http.InviteNotFound
	}

	if invite.Email != strings.ToLower(cu.Email) {
		return nil, http.InviteEmailMismatch
	}

	if err := is.inviteRepo.Accept(invite, cu.UserId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// someone beat us to the pending->accepted transition
			return nil, http.InviteNotFound
		}
		log.Errorw("failed to accept invite", "inviteId", invite.InviteId, "error", err)
		return nil, err
	}

	log.Infow("invite accepted",
		"inviteId", invite.InviteId, "companyId", invite.CompanyId, "userId", cu.UserId)

	membership := &model.MembershipInfo{
		CompanyId: invite.CompanyId,
		Role:      invite.Role,
		Status:    model.MemberStatusActive,
	}
	if company, err := is.companyRepo.GetByCompanyId(invite.CompanyId); err == nil {
		membership.CompanyName = company.Name
	}
	return membership, nil
}

// RevokeInvite cancels a pending invite of the caller's company. Invites
// of other companies are indistinguishable from missing ones.
func (is *InviteService) RevokeInvite(cu *model.CurrentUser, inviteId string) error {
	ok, err := is.inviteRepo.Revoke(inviteId, cu.CompanyId)
	if err != nil {
		return err
	}
	if !ok {
		return http.InviteNotFound
	}

	log.Infow("invite revoked", "inviteId", inviteId, "companyId", cu.CompanyId)
	return nil
}
