package converter

import "github.com/DRSN-tech/catalog-service/internal/domain"

// ToProductDetails преобразует строку выборки в карточку продукта.
func ToProductDetails(model *ProductRowModel) domain.ProductDetails {
	return domain.ProductDetails{
		Product: domain.Product{
			ID:          model.ProductID,
			Name:        model.Name,
			Price:       model.Price,
			Description: model.Description,
			Stock:       model.Stock,
		},
		CategoryName:     model.CategoryName,
		ManufacturerName: model.ManufacturerName,
	}
}

func ToProductEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ProductID,
		Name:        model.Name,
		Price:       model.Price,
		Description: model.Description,
		Stock:       model.Stock,
	}
}

func ToCategoryStatsEntities(models []CategoryStatsModel) []domain.CategoryStats {
	result := make([]domain.CategoryStats, 0, len(models))
	for _, m := range models {
		result = append(result, domain.CategoryStats{
			CategoryName:  m.CategoryName,
			TotalProducts: m.TotalProducts,
			AvgPrice:      m.AvgPrice,
		})
	}

	return result
}

func ToCustomerEntity(model *CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:      model.CustomerID,
		Name:    model.Name,
		Email:   model.Email,
		Phone:   model.Phone,
		Address: model.Address,
	}
}

func ToCustomerEntities(models []CustomerModel) []domain.Customer {
	result := make([]domain.Customer, 0, len(models))
	for i := range models {
		result = append(result, *ToCustomerEntity(&models[i]))
	}

	return result
}

func ToOrderEntities(models []OrderModel) []domain.Order {
	result := make([]domain.Order, 0, len(models))
	for _, m := range models {
		result = append(result, domain.Order{
			ID:              m.OrderID,
			Status:          m.Status,
			OrderDate:       m.OrderDate,
			DeliveryAddress: m.DeliveryAddress,
			ShippingMethod:  m.ShippingMethod,
		})
	}

	return result
}

func ToRatingStatsEntities(models []RatingStatsModel) []domain.RatingStats {
	result := make([]domain.RatingStats, 0, len(models))
	for _, m := range models {
		result = append(result, domain.RatingStats{
			ProductID:    m.ProductID,
			ProductName:  m.ProductName,
			TotalReviews: m.TotalReviews,
			AvgRating:    m.AvgRating,
		})
	}

	return result
}
