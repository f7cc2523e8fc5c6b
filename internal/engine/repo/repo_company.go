package repo

import (
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/database"
)

type ICompanyRepository interface {
	// CreateWithOwner inserts the company and its owner membership in one
	// transaction; a failure leaves no partial state.
	CreateWithOwner(company *model.Company, ownerUserId string) error
	GetByCompanyId(companyId string) (*model.Company, error)
	ListByUser(userId string) ([]model.CompanyWithRole, error)
}

type CompanyRepo struct {
	db           database.IDatabase
	companyModel *model.Company
}

func NewCompanyRepo(db database.IDatabase) ICompanyRepository {
	return &CompanyRepo{
		db:           db,
		companyModel: &model.Company{},
	}
}

func (cr *CompanyRepo) CreateWithOwner(company *model.Company, ownerUserId string) error {
	tx := cr.db.Database().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(company).Error; err != nil {
		tx.Rollback()
		return err
	}

	member := &model.CompanyMember{
		CompanyId: company.CompanyId,
		UserId:    ownerUserId,
		Role:      model.RoleOwner,
		Status:    model.MemberStatusActive,
	}
	if err := tx.Create(member).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (cr *CompanyRepo) GetByCompanyId(companyId string) (*model.Company, error) {
	c := &model.Company{}
	err := cr.db.Database().Table(cr.companyModel.TableName()).
		Where("company_id = ?", companyId).First(c).Error
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListByUser returns the companies the user holds an active membership in,
// joined with the role held.
func (cr *CompanyRepo) ListByUser(userId string) ([]model.CompanyWithRole, error) {
	var companies []model.CompanyWithRole
	err := cr.db.Database().Table("companies c").
		Select("c.company_id, c.name, cu.role").
		Joins("JOIN company_users cu ON c.company_id = cu.company_id").
		Where("cu.user_id = ? AND cu.status = ?", userId, model.MemberStatusActive).
		Order("cu.created_at ASC").
		Scan(&companies).Error
	return companies, err
}
