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

package repo

import (
	"errors"
	"time"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IInviteRepository interface {
	Create(inv *model.Invite) error
	HasPendingByCompanyEmail(companyId, email string) (bool, error)
	// GetAcceptableByToken returns the invite only while it is pending and
	// not past expiry; expired rows are filtered by timestamp, not status.
	GetAcceptableByToken(token string, now time.Time) (*model.Invite, error)
	ListAcceptableByEmail(email string, now time.Time) ([]model.Invite, error)
	ListByCompany(companyId string) ([]model.InviteWithCreator, error)
	// Accept upserts the membership and consumes the invite in one
	// transaction.
	Accept(inv *model.Invite, userId string) error
	// Revoke flips pending -> revoked, scoped by invite and company.
	// Returns false when nothing matched.
	Revoke(inviteId, companyId string) (bool, error)
}

type InviteRepo struct {
	db          database.IDatabase
	inviteModel *model.Invite
}

func NewInviteRepo(db database.IDatabase) IInviteRepository {
	return &InviteRepo{
		db:          db,
		inviteModel: &model.Invite{},
	}
}

func (ir *InviteRepo) Create(inv *model.Invite) error {
	return ir.db.Database().Create(inv).Error
}

func (ir *InviteRepo) HasPendingByCompanyEmail(companyId, email string) (bool, error) {
	var count int64
	err := ir.db.Database().Table(ir.inviteModel.TableName()).
		Where("company_id = ? AND email = ? AND status = ?",
			companyId, email, model.InviteStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (ir *InviteRepo) GetAcceptableByToken(token string, now time.Time) (*model.Invite, error) {
	inv := &model.Invite{}
	err := ir.db.Database().Table(ir.inviteModel.TableName()).
		Where("token = ? AND status = ? AND expires_at > ?",
			token, model.InviteStatusPending, now).
		First(inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

func (ir *InviteRepo) ListAcceptableByEmail(email string, now time.Time) ([]model.Invite, error) {
	var invites []model.Invite
	err := ir.db.Database().Table(ir.inviteModel.TableName()).
		Where("email = ? AND status = ? AND expires_at > ?",
			email, model.InviteStatusPending, now).
		Order("created_at ASC").
		Find(&invites).Error
	return invites, err
}

func (ir *InviteRepo) ListByCompany(companyId string) ([]model.InviteWithCreator, error) {
	var invites []model.InviteWithCreator
	err := ir.db.Database().Table("invites i").
		Select("i.*, u.name AS created_by_name").
		Joins("JOIN users u ON i.created_by = u.user_id").
		Where("i.company_id = ?", companyId).
		Order("i.created_at DESC").
		Scan(&invites).Error
	return invites, err
}

func (ir *InviteRepo) Accept(inv *model.Invite, userId string) error {
	tx := ir.db.Database().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	member := &model.CompanyMember{
		CompanyId: inv.CompanyId,
		UserId:    userId,
		Role:      inv.Role,
		Status:    model.MemberStatusActive,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"role":       member.Role,
			"status":     member.Status,
			"updated_at": time.Now(),
		}),
	}).Create(member).Error
	if err != nil {
		tx.Rollback()
		return err
	}

	// the status guard keeps a concurrent accept from consuming twice
	res := tx.Table(ir.inviteModel.TableName()).
		Where("invite_id = ? AND status = ?", inv.InviteId, model.InviteStatusPending).
		Update("status", model.InviteStatusAccepted)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return gorm.ErrRecordNotFound
	}

	return tx.Commit().Error
}

func (ir *InviteRepo) Revoke(inviteId, companyId string) (bool, error) {
	res := ir.db.Database().Table(ir.inviteModel.TableName()).
		Where("invite_id = ? AND company_id = ? AND status = ?",
			inviteId, companyId, model.InviteStatusPending).
		Update("status", model.InviteStatusRevoked)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
