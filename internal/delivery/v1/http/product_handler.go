package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Tags			products
//	@Produce		json
//	@Param			page	query		int	false	"Номер страницы"	default(1)
//	@Param			limit	query		int	false	"Размер страницы"	default(10)
//	@Success		200		{object}	ProductPageResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	page := pageFromQuery(r)

	res, err := p.productUsecase.ListProducts(r.Context(), page)
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductPageResponse(res))
}

// searchProducts
//
//	@Summary		Поиск товаров по названию
//	@Description	Поиск по подстроке без учёта регистра
//	@Tags			products
//	@Produce		json
//	@Param			name	query		string	true	"Часть названия"
//	@Param			page	query		int		false	"Номер страницы"	default(1)
//	@Param			limit	query		int		false	"Размер страницы"	default(10)
//	@Success		200		{object}	ProductPageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	res, err := p.productUsecase.SearchProducts(r.Context(), r.URL.Query().Get("name"), pageFromQuery(r))
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductPageResponse(res))
}

// productStats
//
//	@Summary	Статистика по категориям
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		CategoryStatsResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/stats [get]
func (p *ProductHandler) productStats(w http.ResponseWriter, r *http.Request) {
	stats, err := p.productUsecase.ProductStats(r.Context())
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryStatsResponse(stats))
}

// getProduct
//
//	@Summary	Товар по идентификатору
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"), e.ErrProductNotFound)
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	product, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Категория создаётся по переданному ключу, если её ещё нет. Производитель должен существовать.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		createProductRequest	true	"Товар"
//	@Success		201		{object}	CreateProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	req, err := body.toUseCase()
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	id, err := p.productUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, CreateProductResponse{Message: "Product created", ProductID: id})
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Description	Поля товара заменяются целиком, переданные категория и производитель заменяют прежние связи.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID товара"
//	@Param			product	body		updateProductRequest	true	"Товар"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"), e.ErrInvalidProductID)
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	var body updateProductRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	req, err := body.toUseCase(id)
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	if err := p.productUsecase.UpdateProduct(r.Context(), req); err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MessageResponse{Message: "Product updated"})
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	DeleteProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"), e.ErrInvalidProductID)
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	deleted, err := p.productUsecase.DeleteProduct(r.Context(), id)
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, DeleteProductResponse{Message: "Product deleted", DeletedProduct: deleted.Name})
}

// listProductsByCategory
//
//	@Summary	Товары категории
//	@Tags		categories
//	@Produce	json
//	@Param		categoryId	path		int	true	"ID категории"
//	@Param		page		query		int	false	"Номер страницы"	default(1)
//	@Param		limit		query		int	false	"Размер страницы"	default(10)
//	@Success	200			{object}	ProductPageResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/categories/{categoryId} [get]
func (p *ProductHandler) listProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseIDParam(chi.URLParam(r, "categoryId"), e.ErrInvalidCategoryID)
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	res, err := p.productUsecase.ListProductsByCategory(r.Context(), categoryID, pageFromQuery(r))
	if err != nil {
		writeFailure(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductPageResponse(res))
}

func pageFromQuery(r *http.Request) domain.PageRequest {
	q := r.URL.Query()
	return domain.NewPageRequest(q.Get("page"), q.Get("limit"))
}
