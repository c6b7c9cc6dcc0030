package service_test

import (
	"context"

	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/model"
	"github.com/iamumarjaved/padelbridge1/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil so services run their
// transactional closures directly, without a database.

// ── items ─────────────────────────────────────────────────────────────────────

type restockCall struct {
	itemID uuid.UUID
	delta  int
}

type stubItemRepo struct {
	items map[uuid.UUID]*model.InventoryItem

	// loseDecrementRace makes DecrementStockTx report zero rows updated,
	// simulating a concurrent sale draining the stock first.
	loseDecrementRace bool

	decrements []restockCall
	restocks   []restockCall
}

func newStubItemRepo(items ...*model.InventoryItem) *stubItemRepo {
	r := &stubItemRepo{items: map[uuid.UUID]*model.InventoryItem{}}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *stubItemRepo) Create(_ context.Context, item *model.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubItemRepo) FindBySKU(_ context.Context, sku string) (*model.InventoryItem, error) {
	for _, item := range r.items {
		if item.SKU == sku {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubItemRepo) FindBySKUExcluding(_ context.Context, sku string, exclude uuid.UUID) (*model.InventoryItem, error) {
	for _, item := range r.items {
		if item.SKU == sku && item.ID != exclude {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubItemRepo) List(_ context.Context, _ dto.ItemFilter) ([]model.InventoryItem, int64, error) {
	var list []model.InventoryItem
	for _, item := range r.items {
		list = append(list, *item)
	}
	return list, int64(len(list)), nil
}

func (r *stubItemRepo) Update(_ context.Context, item *model.InventoryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubItemRepo) DecrementStockTx(_ *gorm.DB, id uuid.UUID, delta int) (int64, error) {
	if r.loseDecrementRace {
		return 0, nil
	}
	item, ok := r.items[id]
	if !ok || item.Quantity < delta {
		return 0, nil
	}
	item.Quantity -= delta
	r.decrements = append(r.decrements, restockCall{itemID: id, delta: delta})
	return 1, nil
}

func (r *stubItemRepo) RestockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	if item, ok := r.items[id]; ok {
		item.Quantity += delta
	}
	r.restocks = append(r.restocks, restockCall{itemID: id, delta: delta})
	return nil
}

func (r *stubItemRepo) SetQuantityTx(_ *gorm.DB, id uuid.UUID, quantity int) error {
	if item, ok := r.items[id]; ok {
		item.Quantity = quantity
	}
	return nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

// ── bookings ──────────────────────────────────────────────────────────────────

type stubBookingRepo struct {
	bookings map[uuid.UUID]*model.Booking
}

func newStubBookingRepo(bookings ...*model.Booking) *stubBookingRepo {
	r := &stubBookingRepo{bookings: map[uuid.UUID]*model.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *stubBookingRepo) Create(_ context.Context, b *model.Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.bookings[b.ID] = b
	return nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBookingRepo) List(_ context.Context, filter repository.BookingListFilter) ([]model.Booking, error) {
	var list []model.Booking
	for _, b := range r.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		list = append(list, *b)
	}
	return list, nil
}

func (r *stubBookingRepo) Update(_ context.Context, b *model.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	if b, ok := r.bookings[id]; ok {
		b.Status = status
	}
	return nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bookings, id)
	return nil
}

func (r *stubBookingRepo) DB() *gorm.DB { return nil }

// ── sales ─────────────────────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales map[uuid.UUID]*model.Sale

	sumTotal decimal.Decimal
	count    int64
	topItems []repository.TopItemRow
}

func newStubSaleRepo(sales ...*model.Sale) *stubSaleRepo {
	r := &stubSaleRepo{sales: map[uuid.UUID]*model.Sale{}}
	for _, s := range sales {
		r.sales[s.ID] = s
	}
	return r
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSaleRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) List(_ context.Context, _ repository.SaleRange) ([]model.Sale, error) {
	var list []model.Sale
	for _, s := range r.sales {
		list = append(list, *s)
	}
	return list, nil
}

func (r *stubSaleRepo) SumTotal(_ context.Context, _ repository.SaleRange) (decimal.Decimal, error) {
	return r.sumTotal, nil
}

func (r *stubSaleRepo) Count(_ context.Context, _ repository.SaleRange) (int64, error) {
	return r.count, nil
}

func (r *stubSaleRepo) TopItems(_ context.Context, _ repository.SaleRange, limit int) ([]repository.TopItemRow, error) {
	if len(r.topItems) > limit {
		return r.topItems[:limit], nil
	}
	return r.topItems, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

// ── stock transactions ────────────────────────────────────────────────────────

type stubStockTxRepo struct {
	created []*model.StockTransaction
}

func (r *stubStockTxRepo) CreateTx(_ *gorm.DB, t *model.StockTransaction) error {
	r.created = append(r.created, t)
	return nil
}

func (r *stubStockTxRepo) ListByItem(_ context.Context, itemID uuid.UUID, _ int) ([]model.StockTransaction, error) {
	var list []model.StockTransaction
	for _, t := range r.created {
		if t.InventoryItemID == itemID {
			list = append(list, *t)
		}
	}
	return list, nil
}

// ── categories ────────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.InventoryCategory
	itemCounts map[uuid.UUID]int64
}

func newStubCategoryRepo(categories ...*model.InventoryCategory) *stubCategoryRepo {
	r := &stubCategoryRepo{
		categories: map[uuid.UUID]*model.InventoryCategory{},
		itemCounts: map[uuid.UUID]int64{},
	}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.InventoryCategory) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InventoryCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.InventoryCategory, error) {
	var list []model.InventoryCategory
	for _, c := range r.categories {
		list = append(list, *c)
	}
	return list, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.InventoryCategory) error {
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) CountItems(_ context.Context, id uuid.UUID) (int64, error) {
	return r.itemCounts[id], nil
}

// ── courts ────────────────────────────────────────────────────────────────────

type stubCourtRepo struct {
	courts        map[uuid.UUID]*model.Court
	bookingCounts map[int]int64
}

func newStubCourtRepo(courts ...*model.Court) *stubCourtRepo {
	r := &stubCourtRepo{
		courts:        map[uuid.UUID]*model.Court{},
		bookingCounts: map[int]int64{},
	}
	for _, c := range courts {
		r.courts[c.ID] = c
	}
	return r
}

func (r *stubCourtRepo) Create(_ context.Context, c *model.Court) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.courts[c.ID] = c
	return nil
}

func (r *stubCourtRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Court, error) {
	c, ok := r.courts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCourtRepo) FindByCourtNumber(_ context.Context, number int) (*model.Court, error) {
	for _, c := range r.courts {
		if c.CourtNumber == number {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCourtRepo) List(_ context.Context, activeOnly bool) ([]model.Court, error) {
	var list []model.Court
	for _, c := range r.courts {
		if activeOnly && !c.IsActive {
			continue
		}
		list = append(list, *c)
	}
	return list, nil
}

func (r *stubCourtRepo) Update(_ context.Context, c *model.Court) error {
	r.courts[c.ID] = c
	return nil
}

func (r *stubCourtRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.courts, id)
	return nil
}

func (r *stubCourtRepo) CountBookings(_ context.Context, courtNumber int) (int64, error) {
	return r.bookingCounts[courtNumber], nil
}

// ── users ─────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo(users ...*model.User) *stubUserRepo {
	r := &stubUserRepo{users: map[uuid.UUID]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var list []model.User
	for _, u := range r.users {
		list = append(list, *u)
	}
	return list, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}
