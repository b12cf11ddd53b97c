package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// memStore estado compartido de los repos en memoria para tests.
type memStore struct {
	products   map[string]*entity.Product
	skuIndex   map[string]string // sku -> product id
	warehouses map[string]*entity.Warehouse
	inventory  map[string]*entity.Inventory // key: productID|warehouseID
	sales      []*entity.Sale
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[string]*entity.Product),
		skuIndex:   make(map[string]string),
		warehouses: make(map[string]*entity.Warehouse),
		inventory:  make(map[string]*entity.Inventory),
	}
}

func invKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

// snapshot clona el estado para poder restaurarlo en un rollback.
func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range s.products {
		p := *v
		c.products[k] = &p
	}
	for k, v := range s.skuIndex {
		c.skuIndex[k] = v
	}
	for k, v := range s.warehouses {
		w := *v
		c.warehouses[k] = &w
	}
	for k, v := range s.inventory {
		i := *v
		c.inventory[k] = &i
	}
	c.sales = append(c.sales, s.sales...)
	return c
}

func (s *memStore) restore(from *memStore) {
	s.products = from.products
	s.skuIndex = from.skuIndex
	s.warehouses = from.warehouses
	s.inventory = from.inventory
	s.sales = from.sales
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.s.skuIndex[p.SKU]; ok {
		return domain.ErrConflict
	}
	cp := *p
	r.s.products[p.ID] = &cp
	r.s.skuIndex[p.SKU] = p.ID
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	id, ok := r.s.skuIndex[sku]
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeWarehouseRepo struct{ s *memStore }

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.s.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) ListByCompany(companyID string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.warehouses {
		if w.CompanyID == companyID {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type fakeInventoryRepo struct{ s *memStore }

func (r *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	k := invKey(inv.ProductID, inv.WarehouseID)
	if _, ok := r.s.inventory[k]; ok {
		return domain.ErrConflict
	}
	cp := *inv
	r.s.inventory[k] = &cp
	return nil
}

func (r *fakeInventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	inv, ok := r.s.inventory[invKey(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return r.Get(productID, warehouseID)
}

func (r *fakeInventoryRepo) UpdateQuantity(inv *entity.Inventory) error {
	k := invKey(inv.ProductID, inv.WarehouseID)
	if _, ok := r.s.inventory[k]; !ok {
		return domain.ErrNotFound
	}
	cp := *inv
	r.s.inventory[k] = &cp
	return nil
}

func (r *fakeInventoryRepo) ListByWarehouse(warehouseID string) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.s.inventory {
		if inv.WarehouseID == warehouseID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type fakeSaleRepo struct{ s *memStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.sales = append(r.s.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) CountByProductBetween(productID string, from, to time.Time) (int64, error) {
	var n int64
	for _, sale := range r.s.sales {
		if sale.ProductID != productID {
			continue
		}
		if sale.CreatedAt.Before(from) || sale.CreatedAt.After(to) {
			continue
		}
		n++
	}
	return n, nil
}

// fakeTxRunner imita la semántica transaccional: si fn falla, restaura el
// estado previo (rollback); si no, deja los cambios (commit).
type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
) error) error {
	before := t.s.snapshot()
	err := fn(
		&fakeProductRepo{s: t.s},
		&fakeWarehouseRepo{s: t.s},
		&fakeInventoryRepo{s: t.s},
		&fakeSaleRepo{s: t.s},
	)
	if err != nil {
		t.s.restore(before)
		return err
	}
	return nil
}

func strPtr(s string) *string { return &s }

func i64Ptr(n int64) *int64 { return &n }

func rawJSON(s string) []byte { return []byte(s) }
