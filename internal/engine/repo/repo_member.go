package repo

import (
	"errors"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/database"
	"gorm.io/gorm"
)

type IMemberRepository interface {
	// FirstActiveByUser returns the earliest-created active membership,
	// or nil when the user belongs to no company.
	FirstActiveByUser(userId string) (*model.CompanyMember, error)
	ListMembershipsByUser(userId string) ([]model.MembershipInfo, error)
	HasOwnerMembership(userId string) (bool, error)
	HasActiveMemberByEmail(companyId, email string) (bool, error)
	ListMembers(companyId string) ([]model.MemberInfo, error)
}

type MemberRepo struct {
	db          database.IDatabase
	memberModel *model.CompanyMember
}

func NewMemberRepo(db database.IDatabase) IMemberRepository {
	return &MemberRepo{
		db:          db,
		memberModel: &model.CompanyMember{},
	}
}

func (mr *MemberRepo) FirstActiveByUser(userId string) (*model.CompanyMember, error) {
	m := &model.CompanyMember{}
	err := mr.db.Database().Table(mr.memberModel.TableName()).
		Where("user_id = ? AND status = ?", userId, model.MemberStatusActive).
		Order("created_at ASC").
		First(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (mr *MemberRepo) ListMembershipsByUser(userId string) ([]model.MembershipInfo, error) {
	var memberships []model.MembershipInfo
	err := mr.db.Database().Table("company_users cu").
		Select("cu.company_id, c.name AS company_name, cu.role, cu.status").
		Joins("JOIN companies c ON cu.company_id = c.company_id").
		Where("cu.user_id = ?", userId).
		Order("cu.created_at ASC").
		Scan(&memberships).Error
	return memberships, err
}

func (mr *MemberRepo) HasOwnerMembership(userId string) (bool, error) {
	var count int64
	err := mr.db.Database().Table(mr.memberModel.TableName()).
		Where("user_id = ? AND role = ?", userId, model.RoleOwner).
		Count(&count).Error
	return count > 0, err
}

func (mr *MemberRepo) HasActiveMemberByEmail(companyId, email string) (bool, error) {
	var count int64
	err := mr.db.Database().Table("company_users cu").
		Joins("JOIN users u ON cu.user_id = u.user_id").
		Where("cu.company_id = ? AND LOWER(u.email) = ? AND cu.status = ?",
			companyId, email, model.MemberStatusActive).
		Count(&count).Error
	return count > 0, err
}

func (mr *MemberRepo) ListMembers(companyId string) ([]model.MemberInfo, error) {
	var members []model.MemberInfo
	err := mr.db.Database().Table("company_users cu").
		Select("u.user_id, u.email, u.name, u.avatar_url, cu.role, cu.status, cu.created_at AS joined_at").
		Joins("JOIN users u ON cu.user_id = u.user_id").
		Where("cu.company_id = ?", companyId).
		Order("cu.created_at ASC").
		Scan(&members).Error
	return members, err
}
