package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
)

const cacheWriteTimeout = 500 * time.Millisecond

// ProductUseCase реализует бизнес-логику каталога продуктов.
type ProductUseCase struct {
	productRepo      ProductRepository
	categoryRepo     CategoryRepository
	manufacturerRepo ManufacturerRepository
	txManager        TxManager
	cacheRepo        CacheRepository
	publisher        ProductEventPublisher
	logger           logger.Logger
	cacheGuard       cacheGuard
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	manufacturerRepo ManufacturerRepository,
	txManager TxManager,
	cacheRepo CacheRepository,
	publisher ProductEventPublisher,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		manufacturerRepo: manufacturerRepo,
		txManager:        txManager,
		cacheRepo:        cacheRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// ListProducts возвращает страницу всех продуктов. Пустая страница — e.ErrProductsNotFound.
func (p *ProductUseCase) ListProducts(ctx context.Context, page domain.PageRequest) (*ProductPage, error) {
	const op = "ProductUseCase.ListProducts"

	res, err := p.listPage(ctx, NewProductFilter(FilterAll), page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(res.Products) == 0 {
		return nil, e.Wrap(op, e.ErrProductsNotFound)
	}

	return res, nil
}

// SearchProducts ищет продукты по подстроке в названии без учёта регистра.
func (p *ProductUseCase) SearchProducts(ctx context.Context, term string, page domain.PageRequest) (*ProductPage, error) {
	const op = "ProductUseCase.SearchProducts"

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, e.Wrap(op, e.ErrSearchTermRequired)
	}

	res, err := p.listPage(ctx, NewSearchFilter(term), page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(res.Products) == 0 {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	return res, nil
}

// ListProductsByCategory возвращает продукты категории.
// Пустая первая страница считается отсутствием продуктов, пустая последующая — обычным ответом.
func (p *ProductUseCase) ListProductsByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) (*ProductPage, error) {
	const op = "ProductUseCase.ListProductsByCategory"

	exists, err := p.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !exists {
		return nil, e.Wrap(op, e.ErrCategoryNotFound)
	}

	res, err := p.listPage(ctx, NewCategoryFilter(categoryID), page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(res.Products) == 0 && page.Page == 1 {
		return nil, e.Wrap(op, e.ErrNoProductsInCategory)
	}

	return res, nil
}

// GetProduct возвращает карточку продукта, сначала пытаясь прочитать её из кэша.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*domain.ProductDetails, error) {
	const op = "ProductUseCase.GetProduct"

	cached, err := p.cacheRepo.GetProduct(ctx, id)
	if err != nil {
		p.logger.Warnf("Failed to read product from cache: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	gen := p.cacheGuard.generation(id)

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое добавление продукта в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()

		written, err := p.cacheGuard.fill(id, gen, func() error {
			return p.cacheRepo.SetProduct(bgCtx, product)
		})
		if err != nil {
			p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
			return
		}
		if !written {
			p.logger.Debugf("Product %d changed while loading, cache fill skipped", id)
		}
	}()

	return product, nil
}

// ProductStats возвращает число продуктов и среднюю цену по каждой категории.
func (p *ProductUseCase) ProductStats(ctx context.Context) ([]domain.CategoryStats, error) {
	const op = "ProductUseCase.ProductStats"

	stats, err := p.productRepo.CategoryStats(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(stats) == 0 {
		return nil, e.Wrap(op, e.ErrNoStatistics)
	}

	return stats, nil
}

// CreateProduct создаёт продукт и его связи в одной транзакции.
// Категория с переданным ключом создаётся при отсутствии, производитель обязан существовать.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (int64, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := validateCreateProduct(req); err != nil {
		return 0, e.Wrap(op, err)
	}

	product := domain.NewProduct(req.Name, *req.Price, req.Description, *req.Stock)
	categoryID := suppliedID(req.CategoryID)

	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		var manufacturer *domain.Manufacturer
		if name := manufacturerName(req.ManufacturerName); name != "" {
			m, err := p.manufacturerRepo.GetByName(ctx, name)
			if errors.Is(err, e.ErrNotFound) {
				return e.Wrap(name, e.ErrUnknownManufacturer)
			}
			if err != nil {
				return err
			}
			manufacturer = m
		}

		id, err := p.productRepo.Create(ctx, product)
		if err != nil {
			return err
		}
		product.ID = id

		if categoryID != nil {
			if err := p.categoryRepo.EnsureExists(ctx, domain.NewCategory(*categoryID)); err != nil {
				return err
			}

			if err := p.productRepo.LinkCategory(ctx, id, *categoryID); err != nil {
				return err
			}
		}

		if manufacturer != nil {
			if err := p.productRepo.LinkManufacturer(ctx, id, manufacturer.ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	p.publish(ctx, NewProductEvent(ProductCreated, product))

	return product.ID, nil
}

// UpdateProduct заменяет поля продукта и, если переданы, его связи с категорией и производителем.
// Все изменения применяются в одной транзакции.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) error {
	const op = "ProductUseCase.UpdateProduct"

	if err := validateUpdateProduct(req); err != nil {
		return e.Wrap(op, err)
	}

	product := domain.NewProduct(req.Name, *req.Price, req.Description, *req.Stock)
	product.ID = req.ID
	categoryID, manufacturerID := suppliedID(req.CategoryID), suppliedID(req.ManufacturerID)

	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		if err := p.productRepo.Update(ctx, product); err != nil {
			return err
		}

		if categoryID != nil {
			if err := p.productRepo.ReplaceCategory(ctx, product.ID, *categoryID); err != nil {
				return err
			}
		}

		if manufacturerID != nil {
			if err := p.productRepo.ReplaceManufacturer(ctx, product.ID, *manufacturerID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	p.invalidate(ctx, product.ID)
	p.publish(ctx, NewProductEvent(ProductUpdated, product))

	return nil
}

// DeleteProduct удаляет продукт; связи удаляются каскадно. Возвращает удалённый продукт.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.DeleteProduct"

	product, err := p.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx, id)
	p.publish(ctx, NewProductEvent(ProductDeleted, product))

	return product, nil
}

// listPage выполняет выборку страницы и независимый подсчёт общего числа продуктов.
func (p *ProductUseCase) listPage(ctx context.Context, filter ProductFilter, page domain.PageRequest) (*ProductPage, error) {
	total, err := p.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	products, err := p.productRepo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	pagination, err := domain.NewPagination(total, page.Page, page.Limit)
	if err != nil {
		return nil, err
	}

	return NewProductPage(products, pagination), nil
}

// invalidate удаляет карточку продукта из кэша. Ошибка кэша не влияет на результат операции.
func (p *ProductUseCase) invalidate(ctx context.Context, id int64) {
	p.cacheGuard.bump(id)

	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("Failed to delete product %d from cache: %v", id, err)
	}
}

// publish отправляет событие после коммита. Ошибка публикации только логируется.
func (p *ProductUseCase) publish(ctx context.Context, event *ProductEvent) {
	if err := p.publisher.PublishProductEvent(ctx, event); err != nil {
		p.logger.Warnf("Failed to publish %s event for product %d: %v", event.Type, event.ProductID, err)
	}
}

func validateCreateProduct(req *CreateProductReq) error {
	if err := domain.ValidateProduct(req.validationInput()); err != nil {
		return err
	}

	if req.CategoryID != nil && *req.CategoryID < 0 {
		return e.ErrInvalidCategoryID
	}

	return nil
}

func validateUpdateProduct(req *UpdateProductReq) error {
	if err := domain.ValidateProduct(req.validationInput()); err != nil {
		return err
	}

	if req.CategoryID != nil && *req.CategoryID < 0 {
		return e.ErrInvalidCategoryID
	}

	if req.ManufacturerID != nil && *req.ManufacturerID < 0 {
		return e.ErrInvalidManufacturerID
	}

	return nil
}

// suppliedID возвращает nil для отсутствующего и нулевого ключа: ноль означает, что связь не передана.
func suppliedID(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}

	return id
}

func manufacturerName(name *string) string {
	if name == nil {
		return ""
	}

	return strings.TrimSpace(*name)
}
