package stock_test

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// Fakes en memoria para aislar los casos de uso de PostgreSQL.

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stock int) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = stock
	return nil
}

func (r *fakeProductRepo) List(search, status string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.IsActive && p.IsLowStock() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrentStock < out[j].CurrentStock })
	return out, nil
}

func (r *fakeProductRepo) ListOutOfStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.IsActive && p.CurrentStock == 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsActive = false
	return nil
}

type fakeStockTxRepo struct {
	created []*entity.StockTransaction
}

func (r *fakeStockTxRepo) Create(tx *entity.StockTransaction) error {
	r.created = append(r.created, tx)
	return nil
}

func (r *fakeStockTxRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for _, tx := range r.created {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeStockTxRepo) ListRecent(limit int) ([]*entity.StockTransaction, error) {
	return r.created, nil
}

// fakeTxRunner ejecuta el callback sin transacción real. Si el callback
// falla, descarta los movimientos creados para simular el rollback.
type fakeTxRunner struct {
	txRepo      *fakeStockTxRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	txRepo repository.StockTransactionRepository,
	productRepo repository.ProductRepository,
) error) error {
	beforeTxs := len(r.txRepo.created)
	beforeStock := map[string]int{}
	for id, p := range r.productRepo.products {
		beforeStock[id] = p.CurrentStock
	}
	if err := fn(r.txRepo, r.productRepo); err != nil {
		r.txRepo.created = r.txRepo.created[:beforeTxs]
		for id, stock := range beforeStock {
			r.productRepo.products[id].CurrentStock = stock
		}
		return err
	}
	return nil
}

type fakeParityRepo struct {
	parities map[string]*entity.StockParity
}

func newFakeParityRepo() *fakeParityRepo {
	return &fakeParityRepo{parities: map[string]*entity.StockParity{}}
}

func (r *fakeParityRepo) Create(p *entity.StockParity) error {
	r.parities[p.ID] = p
	return nil
}

func (r *fakeParityRepo) GetByID(id string) (*entity.StockParity, error) {
	return r.parities[id], nil
}

func (r *fakeParityRepo) List(resolved bool, limit, offset int) ([]*entity.StockParity, error) {
	var out []*entity.StockParity
	for _, p := range r.parities {
		if p.Resolved == resolved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeParityRepo) Resolve(id, resolvedBy string, resolvedAt time.Time) error {
	p, ok := r.parities[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Resolved {
		return domain.ErrConflict
	}
	p.Resolved = true
	p.ResolvedBy = resolvedBy
	p.ResolvedAt = &resolvedAt
	return nil
}
