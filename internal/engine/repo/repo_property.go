package repo

import (
	"errors"

	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/database"
	"gorm.io/gorm"
)

type IPropertyRepository interface {
	AddProperty(p *model.Property) error
	ListByCompany(companyId string) ([]model.Property, error)
	// BelongsToCompany reports whether the property exists under the company.
	BelongsToCompany(propertyId, companyId string) (bool, error)
}

type PropertyRepo struct {
	db            database.IDatabase
	propertyModel *model.Property
}

func NewPropertyRepo(db database.IDatabase) IPropertyRepository {
	return &PropertyRepo{
		db:            db,
		propertyModel: &model.Property{},
	}
}

func (pr *PropertyRepo) AddProperty(p *model.Property) error {
	return pr.db.Database().Create(p).Error
}

func (pr *PropertyRepo) ListByCompany(companyId string) ([]model.Property, error) {
	var properties []model.Property
	err := pr.db.Database().Table(pr.propertyModel.TableName()).
		Where("company_id = ?", companyId).
		Order("created_at ASC").
		Find(&properties).Error
	return properties, err
}

func (pr *PropertyRepo) BelongsToCompany(propertyId, companyId string) (bool, error) {
	p := &model.Property{}
	err := pr.db.Database().Table(pr.propertyModel.TableName()).
		Select("id").
		Where("property_id = ? AND company_id = ?", propertyId, companyId).
		First(p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
