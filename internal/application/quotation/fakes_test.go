package quotation_test

import (
	"context"
	"errors"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
)

type fakeClients struct {
	byID  map[string]*entity.Client
	err   error
	calls int
}

func newFakeClients(clients ...*entity.Client) *fakeClients {
	f := &fakeClients{byID: map[string]*entity.Client{}}
	for _, c := range clients {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeClients) Create(_ context.Context, c *entity.Client) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeClients) List(context.Context) ([]*entity.Client, error) { return nil, f.err }

type fakeQuotations struct {
	headers []*entity.Quotation
	items   []*entity.QuotationItem

	latest    string
	found     bool
	lookupErr error
	headerErr error
	itemsErr  error

	lookupCalls int
	headerCalls int
	itemsCalls  int
	nextID      int64
}

var _ repository.QuotationRepository = (*fakeQuotations)(nil)

func (f *fakeQuotations) writes() int { return f.headerCalls + f.itemsCalls }

func (f *fakeQuotations) CreateHeader(_ context.Context, q *entity.Quotation) error {
	f.headerCalls++
	if f.headerErr != nil {
		return f.headerErr
	}
	f.headers = append(f.headers, q)
	return nil
}

func (f *fakeQuotations) CreateItems(_ context.Context, items []*entity.QuotationItem) error {
	f.itemsCalls++
	if f.itemsErr != nil {
		return f.itemsErr
	}
	for _, it := range items {
		f.nextID++
		it.ID = f.nextID
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeQuotations) LatestNumberWithPrefix(context.Context, string) (string, bool, error) {
	f.lookupCalls++
	return f.latest, f.found, f.lookupErr
}

func (f *fakeQuotations) GetByNumber(_ context.Context, number string) (*entity.Quotation, error) {
	for _, q := range f.headers {
		if q.Number == number {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuotations) ListItems(_ context.Context, quotationID string) ([]*entity.QuotationItem, error) {
	var out []*entity.QuotationItem
	for _, it := range f.items {
		if it.QuotationID == quotationID {
			out = append(out, it)
		}
	}
	return out, nil
}

// fakeTx acumula las escrituras en un repositorio temporal y solo las pasa a base si fn no falla.
type fakeTx struct {
	base       *fakeQuotations
	runs       int
	rolledBack int
}

func (t *fakeTx) RunQuotation(ctx context.Context, fn func(repository.QuotationRepository) error) error {
	t.runs++
	staging := &fakeQuotations{headerErr: t.base.headerErr, itemsErr: t.base.itemsErr, nextID: t.base.nextID}
	if err := fn(staging); err != nil {
		t.rolledBack++
		return err
	}
	t.base.headers = append(t.base.headers, staging.headers...)
	t.base.items = append(t.base.items, staging.items...)
	t.base.nextID = staging.nextID
	return nil
}

type fakeRenderer struct {
	last  dto.QuoteDocument
	opts  dto.RenderOptions
	calls int
	err   error
}

func (r *fakeRenderer) Render(doc dto.QuoteDocument, opts dto.RenderOptions) ([]byte, error) {
	r.calls++
	r.last, r.opts = doc, opts
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

var errBoom = errors.New("boom")
