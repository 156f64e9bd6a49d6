package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
)

// TxManager выполняет fn в одной транзакции. Репозитории, вызванные с ctx из fn,
// работают внутри неё; ошибка fn откатывает все изменения.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter, page domain.PageRequest) ([]domain.ProductDetails, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	// GetByID возвращает e.ErrProductNotFound, если продукта нет.
	GetByID(ctx context.Context, id int64) (*domain.ProductDetails, error)
	Create(ctx context.Context, product *domain.Product) (int64, error)
	// Update возвращает e.ErrUpdateTargetMissing, если строка не найдена.
	Update(ctx context.Context, product *domain.Product) error
	// Delete удаляет продукт и возвращает удалённую строку либо e.ErrProductNotFound.
	Delete(ctx context.Context, id int64) (*domain.Product, error)
	LinkCategory(ctx context.Context, productID, categoryID int64) error
	ReplaceCategory(ctx context.Context, productID, categoryID int64) error
	LinkManufacturer(ctx context.Context, productID, manufacturerID int64) error
	ReplaceManufacturer(ctx context.Context, productID, manufacturerID int64) error
	CategoryStats(ctx context.Context) ([]domain.CategoryStats, error)
}

type CategoryRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	// EnsureExists создаёт категорию с переданным ключом, если её ещё нет.
	EnsureExists(ctx context.Context, category *domain.Category) error
}

type ManufacturerRepository interface {
	// GetByName возвращает e.ErrNotFound, если производителя с таким названием нет.
	GetByName(ctx context.Context, name string) (*domain.Manufacturer, error)
}

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	// GetByID возвращает e.ErrCustomerNotFound, если покупателя нет.
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	// UpdateContact возвращает e.ErrCustomerNotFound, если строка не обновилась.
	UpdateContact(ctx context.Context, id int64, contact domain.CustomerContact) error
	ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error)
}

type ReviewRepository interface {
	RatingStats(ctx context.Context) ([]domain.RatingStats, error)
}

// CacheRepository кэширует карточки продуктов. Промах кэша — (nil, nil).
type CacheRepository interface {
	GetProduct(ctx context.Context, id int64) (*domain.ProductDetails, error)
	SetProduct(ctx context.Context, product *domain.ProductDetails) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

// ProductEventPublisher публикует события об изменении продуктов.
type ProductEventPublisher interface {
	PublishProductEvent(ctx context.Context, event *ProductEvent) error
}
