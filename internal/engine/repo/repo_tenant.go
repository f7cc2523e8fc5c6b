package repo

import (
	"errors"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/database"
	"gorm.io/gorm"
)

type ITenantRepository interface {
	AddTenant(t *model.TenantRecord) error
	ListByCompany(companyId string) ([]model.TenantWithProperty, error)
	BelongsToCompany(tenantId, companyId string) (*model.TenantRecord, error)
}

type TenantRepo struct {
	db          database.IDatabase
	tenantModel *model.TenantRecord
}

func NewTenantRepo(db database.IDatabase) ITenantRepository {
	return &TenantRepo{
		db:          db,
		tenantModel: &model.TenantRecord{},
	}
}

func (tr *TenantRepo) AddTenant(t *model.TenantRecord) error {
	return tr.db.Database().Create(t).Error
}

func (tr *TenantRepo) ListByCompany(companyId string) ([]model.TenantWithProperty, error) {
	var tenants []model.TenantWithProperty
	err := tr.db.Database().Table("tenants t").
		Select("t.*, p.name AS property_name").
		Joins("JOIN properties p ON t.property_id = p.property_id").
		Where("t.company_id = ?", companyId).
		Order("t.created_at ASC").
		Scan(&tenants).Error
	return tenants, err
}

func (tr *TenantRepo) BelongsToCompany(tenantId, companyId string) (*model.TenantRecord, error) {
	t := &model.TenantRecord{}
	err := tr.db.Database().Table(tr.tenantModel.TableName()).
		Where("tenant_id = ? AND company_id = ?", tenantId, companyId).
		First(t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}
