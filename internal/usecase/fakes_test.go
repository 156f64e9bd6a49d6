package usecase

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/shopspring/decimal"
)

var errInjected = errors.New("injected storage failure")

// sortedKeys возвращает ключи map в порядке возрастания.
func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// memStore — хранилище в памяти, повторяющее поведение схемы: каскадное удаление связей
// и идемпотентные вставки пар в таблицы связей.
type memStore struct {
	mu sync.Mutex

	nextProductID        int64
	products             map[int64]domain.Product
	categories           map[int64]*string
	manufacturers        map[int64]string
	productCategories    map[int64][]int64
	productManufacturers map[int64][]int64

	failOn map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		products:             map[int64]domain.Product{},
		categories:           map[int64]*string{},
		manufacturers:        map[int64]string{},
		productCategories:    map[int64][]int64{},
		productManufacturers: map[int64][]int64{},
		failOn:               map[string]bool{},
	}
}

func (s *memStore) clone() *memStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := newMemStore()
	c.nextProductID = s.nextProductID
	c.products = maps.Clone(s.products)
	c.categories = maps.Clone(s.categories)
	c.manufacturers = maps.Clone(s.manufacturers)
	for k, v := range s.productCategories {
		c.productCategories[k] = slices.Clone(v)
	}
	for k, v := range s.productManufacturers {
		c.productManufacturers[k] = slices.Clone(v)
	}
	c.failOn = s.failOn
	return c
}

func (s *memStore) restore(from *memStore) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProductID = from.nextProductID
	s.products = from.products
	s.categories = from.categories
	s.manufacturers = from.manufacturers
	s.productCategories = from.productCategories
	s.productManufacturers = from.productManufacturers
}

func (s *memStore) fail(method string) error {
	if s.failOn[method] {
		return errInjected
	}
	return nil
}

func (s *memStore) addProduct(name, price string, stock int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProductID++
	p := domain.NewProduct(name, mustDecimal(price), nil, stock)
	p.ID = s.nextProductID
	s.products[p.ID] = *p
	return p.ID
}

func (s *memStore) addCategory(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[id] = &name
}

func (s *memStore) addManufacturer(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manufacturers[id] = name
}

func (s *memStore) link(productID, categoryID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productCategories[productID] = append(s.productCategories[productID], categoryID)
}

// fakeTxManager откатывает хранилище к снимку, если fn вернула ошибку.
type fakeTxManager struct {
	store *memStore
	calls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	snapshot := m.store.clone()
	if err := fn(ctx); err != nil {
		m.store.restore(snapshot)
		return err
	}
	return nil
}

type fakeProductRepo struct {
	s        *memStore
	afterGet func() // вызывается после чтения, вне блокировки хранилища
}

func (r *fakeProductRepo) matches(p domain.Product, f ProductFilter) bool {
	switch f.Kind {
	case FilterSearch:
		return strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.SearchTerm))
	case FilterCategory:
		return slices.Contains(r.s.productCategories[p.ID], f.CategoryID)
	case FilterByID:
		return p.ID == f.ProductID
	default:
		return true
	}
}

func (r *fakeProductRepo) details(p domain.Product) domain.ProductDetails {
	d := domain.ProductDetails{Product: p}
	for _, cid := range r.s.productCategories[p.ID] {
		if name := r.s.categories[cid]; name != nil {
			d.CategoryName = name
			break
		}
	}
	for _, mid := range r.s.productManufacturers[p.ID] {
		name := r.s.manufacturers[mid]
		d.ManufacturerName = &name
		break
	}
	return d
}

func (r *fakeProductRepo) sortedIDs() []int64 {
	return sortedKeys(r.s.products)
}

func (r *fakeProductRepo) List(_ context.Context, f ProductFilter, page domain.PageRequest) ([]domain.ProductDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("List"); err != nil {
		return nil, err
	}

	var matched []domain.ProductDetails
	for _, id := range r.sortedIDs() {
		if p := r.s.products[id]; r.matches(p, f) {
			matched = append(matched, r.details(p))
		}
	}

	from := min(page.Offset(), len(matched))
	to := min(from+page.Limit, len(matched))
	return matched[from:to], nil
}

func (r *fakeProductRepo) Count(_ context.Context, f ProductFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Count"); err != nil {
		return 0, err
	}

	var n int64
	for _, p := range r.s.products {
		if r.matches(p, f) {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.ProductDetails, error) {
	r.s.mu.Lock()
	p, ok := r.s.products[id]
	var d domain.ProductDetails
	if ok {
		d = r.details(p)
	}
	r.s.mu.Unlock()

	if !ok {
		return nil, e.ErrProductNotFound
	}
	if r.afterGet != nil {
		r.afterGet()
	}
	return &d, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Create"); err != nil {
		return 0, err
	}

	r.s.nextProductID++
	p := *product
	p.ID = r.s.nextProductID
	r.s.products[p.ID] = p
	return p.ID, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[product.ID]; !ok {
		return e.ErrUpdateTargetMissing
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	delete(r.s.products, id)
	delete(r.s.productCategories, id)
	delete(r.s.productManufacturers, id)
	return &p, nil
}

func (r *fakeProductRepo) LinkCategory(_ context.Context, productID, categoryID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("LinkCategory"); err != nil {
		return err
	}

	if !slices.Contains(r.s.productCategories[productID], categoryID) {
		r.s.productCategories[productID] = append(r.s.productCategories[productID], categoryID)
	}
	return nil
}

func (r *fakeProductRepo) ReplaceCategory(_ context.Context, productID, categoryID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[categoryID]; !ok {
		return e.ErrInvalidCategoryID
	}
	r.s.productCategories[productID] = []int64{categoryID}
	return nil
}

func (r *fakeProductRepo) LinkManufacturer(_ context.Context, productID, manufacturerID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !slices.Contains(r.s.productManufacturers[productID], manufacturerID) {
		r.s.productManufacturers[productID] = append(r.s.productManufacturers[productID], manufacturerID)
	}
	return nil
}

func (r *fakeProductRepo) ReplaceManufacturer(_ context.Context, productID, manufacturerID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("ReplaceManufacturer"); err != nil {
		return err
	}

	r.s.productManufacturers[productID] = []int64{manufacturerID}
	return nil
}

func (r *fakeProductRepo) CategoryStats(_ context.Context) ([]domain.CategoryStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := sortedKeys(r.s.categories)
	stats := make([]domain.CategoryStats, 0, len(ids))
	for _, cid := range ids {
		st := domain.CategoryStats{CategoryName: r.s.categories[cid], AvgPrice: decimal.Zero}
		sum := decimal.Zero
		for pid, cats := range r.s.productCategories {
			if slices.Contains(cats, cid) {
				st.TotalProducts++
				sum = sum.Add(r.s.products[pid].Price)
			}
		}
		if st.TotalProducts > 0 {
			st.AvgPrice = sum.Div(decimal.NewFromInt(st.TotalProducts)).Round(2)
		}
		stats = append(stats, st)
	}
	return stats, nil
}

type fakeCategoryRepo struct {
	s *memStore
}

func (r *fakeCategoryRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.categories[id]
	return ok, nil
}

func (r *fakeCategoryRepo) EnsureExists(_ context.Context, category *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[category.ID]; !ok {
		r.s.categories[category.ID] = category.Name
	}
	return nil
}

type fakeManufacturerRepo struct {
	s *memStore
}

func (r *fakeManufacturerRepo) GetByName(_ context.Context, name string) (*domain.Manufacturer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, n := range r.s.manufacturers {
		if n == name {
			return &domain.Manufacturer{ID: id, Name: n}, nil
		}
	}
	return nil, e.ErrNotFound
}

type fakeCache struct {
	mu       sync.Mutex
	items    map[int64]domain.ProductDetails
	deleted  []int64
	getCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[int64]domain.ProductDetails{}}
}

func (c *fakeCache) GetProduct(_ context.Context, id int64) (*domain.ProductDetails, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getCalls++

	if p, ok := c.items[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (c *fakeCache) SetProduct(_ context.Context, product *domain.ProductDetails) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[product.ID] = *product
	return nil
}

func (c *fakeCache) DeleteProducts(_ context.Context, ids []int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		delete(c.items, id)
	}
	c.deleted = append(c.deleted, ids...)
	return nil
}

func (c *fakeCache) has(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[id]
	return ok
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*ProductEvent
	err    error
}

func (p *fakePublisher) PublishProductEvent(_ context.Context, event *ProductEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) types() []ProductEventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := make([]ProductEventType, 0, len(p.events))
	for _, ev := range p.events {
		res = append(res, ev.Type)
	}
	return res
}

type fakeCustomerRepo struct {
	customers map[int64]domain.Customer
	orders    map[int64][]domain.Order
	updates   int
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	ids := sortedKeys(r.customers)
	res := make([]domain.Customer, 0, len(ids))
	for _, id := range ids {
		res = append(res, r.customers[id])
	}
	return res, nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, e.ErrCustomerNotFound
	}
	return &c, nil
}

func (r *fakeCustomerRepo) UpdateContact(_ context.Context, id int64, contact domain.CustomerContact) error {
	r.updates++
	c, ok := r.customers[id]
	if !ok {
		return e.ErrCustomerNotFound
	}
	c.Email = contact.Email
	c.Phone = &contact.Phone
	c.Address = &contact.Address
	r.customers[id] = c
	return nil
}

func (r *fakeCustomerRepo) ListOrders(_ context.Context, customerID int64) ([]domain.Order, error) {
	return r.orders[customerID], nil
}

type fakeReviewRepo struct {
	stats []domain.RatingStats
	err   error
}

func (r *fakeReviewRepo) RatingStats(_ context.Context) ([]domain.RatingStats, error) {
	return r.stats, r.err
}
