package converter

import "github.com/DRSN-tech/catalog-service/internal/domain"

func ToRedisModel(entity *domain.ProductDetails) *ProductRedisModel {
	return &ProductRedisModel{
		ID:               entity.ID,
		Name:             entity.Name,
		Price:            entity.Price,
		Description:      entity.Description,
		Stock:            entity.Stock,
		CategoryName:     entity.CategoryName,
		ManufacturerName: entity.ManufacturerName,
	}
}

func ToEntity(model *ProductRedisModel) *domain.ProductDetails {
	return &domain.ProductDetails{
		Product: domain.Product{
			ID:          model.ID,
			Name:        model.Name,
			Price:       model.Price,
			Description: model.Description,
			Stock:       model.Stock,
		},
		CategoryName:     model.CategoryName,
		ManufacturerName: model.ManufacturerName,
	}
}
