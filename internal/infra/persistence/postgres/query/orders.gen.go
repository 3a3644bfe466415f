package query

import (
	"context"

	"greengrocer/internal/infra/persistence/model"

	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

func newOrderModel(db *gorm.DB, opts ...gen.DOOption) orderModel {
	_orderModel := orderModel{}

	_orderModel.orderModelDo.UseDB(db, opts...)
	_orderModel.orderModelDo.UseModel(&model.OrderModel{})

	tableName := _orderModel.orderModelDo.TableName()
	_orderModel.ALL = field.NewAsterisk(tableName)
	_orderModel.ID = field.NewField(tableName, "id")
	_orderModel.VegetableID = field.NewField(tableName, "vegetable_id")
	_orderModel.CustomerID = field.NewField(tableName, "customer_id")
	_orderModel.Quantity = field.NewInt(tableName, "quantity")

	return _orderModel
}

type orderModel struct {
	orderModelDo

	ALL field.Asterisk

	ID          field.Field
	VegetableID field.Field
	CustomerID  field.Field
	Quantity    field.Int
}

type orderModelDo struct{ gen.DO }

func (o orderModelDo) WithContext(ctx context.Context) *orderModelDo {
	return o.withDO(o.DO.WithContext(ctx))
}

func (o orderModelDo) Where(conds ...gen.Condition) *orderModelDo {
	return o.withDO(o.DO.Where(conds...))
}

func (o orderModelDo) Create(values ...*model.OrderModel) error {
	if len(values) == 0 {
		return nil
	}

	return o.DO.Create(values)
}

func (o orderModelDo) First() (*model.OrderModel, error) {
	result, err := o.DO.First()
	if err != nil {
		return nil, err
	}

	return result.(*model.OrderModel), nil
}

func (o orderModelDo) Delete(models ...*model.OrderModel) (result gen.ResultInfo, err error) {
	return o.DO.Delete(models)
}

func (o *orderModelDo) withDO(do gen.Dao) *orderModelDo {
	o.DO = *do.(*gen.DO)

	return o
}
