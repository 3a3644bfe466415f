package query

import (
	"context"

	"greengrocer/internal/infra/persistence/model"

	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

func newCustomerModel(db *gorm.DB, opts ...gen.DOOption) customerModel {
	_customerModel := customerModel{}

	_customerModel.customerModelDo.UseDB(db, opts...)
	_customerModel.customerModelDo.UseModel(&model.CustomerModel{})

	tableName := _customerModel.customerModelDo.TableName()
	_customerModel.ALL = field.NewAsterisk(tableName)
	_customerModel.ID = field.NewField(tableName, "id")
	_customerModel.FullName = field.NewString(tableName, "full_name")
	_customerModel.CreatedAt = field.NewTime(tableName, "created_at")

	return _customerModel
}

type customerModel struct {
	customerModelDo

	ALL field.Asterisk

	ID        field.Field
	FullName  field.String
	CreatedAt field.Time
}

type customerModelDo struct{ gen.DO }

func (c customerModelDo) WithContext(ctx context.Context) *customerModelDo {
	return c.withDO(c.DO.WithContext(ctx))
}

func (c customerModelDo) Where(conds ...gen.Condition) *customerModelDo {
	return c.withDO(c.DO.Where(conds...))
}

func (c customerModelDo) Create(values ...*model.CustomerModel) error {
	if len(values) == 0 {
		return nil
	}

	return c.DO.Create(values)
}

func (c customerModelDo) First() (*model.CustomerModel, error) {
	result, err := c.DO.First()
	if err != nil {
		return nil, err
	}

	return result.(*model.CustomerModel), nil
}

func (c customerModelDo) Delete(models ...*model.CustomerModel) (result gen.ResultInfo, err error) {
	return c.DO.Delete(models)
}

func (c *customerModelDo) withDO(do gen.Dao) *customerModelDo {
	c.DO = *do.(*gen.DO)

	return c
}
