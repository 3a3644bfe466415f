package query

import (
	"context"

	"greengrocer/internal/infra/persistence/model"

	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

func newVegetableModel(db *gorm.DB, opts ...gen.DOOption) vegetableModel {
	_vegetableModel := vegetableModel{}

	_vegetableModel.vegetableModelDo.UseDB(db, opts...)
	_vegetableModel.vegetableModelDo.UseModel(&model.VegetableModel{})

	tableName := _vegetableModel.vegetableModelDo.TableName()
	_vegetableModel.ALL = field.NewAsterisk(tableName)
	_vegetableModel.ID = field.NewField(tableName, "id")
	_vegetableModel.Title = field.NewString(tableName, "title")
	_vegetableModel.Weight = field.NewInt(tableName, "weight")
	_vegetableModel.Price = field.NewInt(tableName, "price")
	_vegetableModel.Length = field.NewInt(tableName, "length")

	return _vegetableModel
}

type vegetableModel struct {
	vegetableModelDo

	ALL field.Asterisk

	ID     field.Field
	Title  field.String
	Weight field.Int
	Price  field.Int
	Length field.Int
}

type vegetableModelDo struct{ gen.DO }

func (v vegetableModelDo) WithContext(ctx context.Context) *vegetableModelDo {
	return v.withDO(v.DO.WithContext(ctx))
}

func (v vegetableModelDo) Where(conds ...gen.Condition) *vegetableModelDo {
	return v.withDO(v.DO.Where(conds...))
}

func (v vegetableModelDo) Create(values ...*model.VegetableModel) error {
	if len(values) == 0 {
		return nil
	}

	return v.DO.Create(values)
}

func (v vegetableModelDo) First() (*model.VegetableModel, error) {
	result, err := v.DO.First()
	if err != nil {
		return nil, err
	}

	return result.(*model.VegetableModel), nil
}

func (v vegetableModelDo) Delete(models ...*model.VegetableModel) (result gen.ResultInfo, err error) {
	return v.DO.Delete(models)
}

func (v *vegetableModelDo) withDO(do gen.Dao) *vegetableModelDo {
	v.DO = *do.(*gen.DO)

	return v
}
