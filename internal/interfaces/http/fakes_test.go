package http

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/inventory"
	"github.com/jhoicas/stock-alerts-api/internal/application/usecase"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// Reloj fijo para la ventana de ventas en los tests de alertas.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// memStore estado en memoria compartido por los repos falsos.
type memStore struct {
	companies  map[string]*entity.Company
	products   map[string]*entity.Product
	skuIndex   map[string]string
	warehouses map[string]*entity.Warehouse
	inventory  map[string]*entity.Inventory
	sales      []*entity.Sale
	suppliers  map[string]*entity.Supplier
	links      []*entity.SupplierProduct
}

func newMemStore() *memStore {
	return &memStore{
		companies:  make(map[string]*entity.Company),
		products:   make(map[string]*entity.Product),
		skuIndex:   make(map[string]string),
		warehouses: make(map[string]*entity.Warehouse),
		inventory:  make(map[string]*entity.Inventory),
		suppliers:  make(map[string]*entity.Supplier),
	}
}

func invKey(productID, warehouseID string) string { return productID + "|" + warehouseID }

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range s.companies {
		cp := *v
		c.companies[k] = &cp
	}
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.skuIndex {
		c.skuIndex[k] = v
	}
	for k, v := range s.warehouses {
		cp := *v
		c.warehouses[k] = &cp
	}
	for k, v := range s.inventory {
		cp := *v
		c.inventory[k] = &cp
	}
	for k, v := range s.suppliers {
		cp := *v
		c.suppliers[k] = &cp
	}
	c.sales = append(c.sales, s.sales...)
	c.links = append(c.links, s.links...)
	return c
}

func (s *memStore) restore(from *memStore) { *s = *from }

type fakeCompanyRepo struct{ s *memStore }

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		cp := *c
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
		if sale.ProductID != productID || sale.CreatedAt.Before(from) || sale.CreatedAt.After(to) {
			continue
		}
		n++
	}
	return n, nil
}

type fakeSupplierRepo struct{ s *memStore }

func (r *fakeSupplierRepo) Create(sup *entity.Supplier) error {
	cp := *sup
	r.s.suppliers[sup.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *sup
	return &cp, nil
}

func (r *fakeSupplierRepo) Link(supplierID, productID string) error {
	r.s.links = append(r.s.links, &entity.SupplierProduct{
		SupplierID: supplierID,
		ProductID:  productID,
		CreatedAt:  time.Now(),
	})
	return nil
}

func (r *fakeSupplierRepo) GetFirstByProduct(productID string) (*entity.Supplier, error) {
	var first *entity.SupplierProduct
	for _, l := range r.s.links {
		if l.ProductID != productID {
			continue
		}
		if first == nil || l.CreatedAt.Before(first.CreatedAt) {
			first = l
		}
	}
	if first == nil {
		return nil, nil
	}
	return r.GetByID(first.SupplierID)
}

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

// newTestApp arma una app de Fiber con las rutas reales sobre repos en memoria.
func newTestApp(s *memStore) *fiber.App {
	companyRepo := &fakeCompanyRepo{s: s}
	warehouseRepo := &fakeWarehouseRepo{s: s}
	productRepo := &fakeProductRepo{s: s}
	inventoryRepo := &fakeInventoryRepo{s: s}
	saleRepo := &fakeSaleRepo{s: s}
	supplierRepo := &fakeSupplierRepo{s: s}
	txRunner := &fakeTxRunner{s: s}

	app := fiber.New()
	Router(app, RouterDeps{
		CompanyUC:     usecase.NewCompanyUseCase(companyRepo),
		WarehouseUC:   usecase.NewWarehouseUseCase(warehouseRepo, companyRepo),
		ProductUC:     usecase.NewProductUseCase(productRepo),
		SupplierUC:    usecase.NewSupplierUseCase(supplierRepo, productRepo),
		CreateProduct: inventory.NewCreateProductUseCase(txRunner, productRepo, 10),
		RecordSale:    inventory.NewRecordSaleUseCase(txRunner, productRepo, warehouseRepo),
		LowStockUC: alerts.NewLowStockAlertUseCase(
			warehouseRepo, inventoryRepo, productRepo, saleRepo, supplierRepo,
			30, func() time.Time { return testNow },
		),
	})
	return app
}
