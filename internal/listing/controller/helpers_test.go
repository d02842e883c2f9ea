package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeFetcher serves pages out of a catalogue of total products named p1..pN.
type fakeFetcher struct {
	mu      sync.Mutex
	total   int
	err     error
	calls   []listing.PageRequest
	started chan struct{} // signalled when a fetch begins, if set
	release chan struct{} // a fetch waits on it, if set
}

func (f *fakeFetcher) Fetch(ctx context.Context, req listing.PageRequest) (listing.PageEnvelope, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	total, err := f.total, f.err
	started, release := f.started, f.release
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return listing.PageEnvelope{}, err
	}
	return catalogPage(total, req.Page, req.Limit), nil
}

func (f *fakeFetcher) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeFetcher) lastCall() listing.PageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func catalogPage(total, page, limit int) listing.PageEnvelope {
	totalPages := (total + limit - 1) / limit
	items := []model.Product{}
	for i := (page-1)*limit + 1; i <= page*limit && i <= total; i++ {
		items = append(items, model.Product{
			ID:    fmt.Sprintf("p%d", i),
			Name:  fmt.Sprintf("Product %d", i),
			Price: decimal.NewFromInt(int64(i * 100)),
		})
	}
	return listing.PageEnvelope{
		Items:      items,
		Pagination: listing.NewPagination(page, totalPages, total, limit),
	}
}

type renderCall struct {
	items     []model.Product
	surfaceID string
	variant   listing.Variant
}

type recordingRenderer struct {
	mu    sync.Mutex
	calls []renderCall
}

func (r *recordingRenderer) Render(items []model.Product, surfaceID string, variant listing.Variant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, renderCall{
		items:     append([]model.Product(nil), items...),
		surfaceID: surfaceID,
		variant:   variant,
	})
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recordingRenderer) last() renderCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}

func ids(items []model.Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}
