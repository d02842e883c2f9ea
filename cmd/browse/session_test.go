package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/controller"
	"marketplace-browser/internal/listing/render"
	"marketplace-browser/internal/listing/urlsync"
	"marketplace-browser/internal/model"
	"marketplace-browser/pkg/log"
)

func TestParseCommand(t *testing.T) {
	tcs := map[string]struct {
		line    string
		want    command
		wantErr error
	}{
		"blank":               {line: "   ", want: command{}},
		"next":                {line: "n", want: command{name: "n"}},
		"long alias":          {line: "Prev", want: command{name: "p"}},
		"goto":                {line: "g 4", want: command{name: "g", args: []string{"4"}}},
		"goto no page":        {line: "g", wantErr: errMissingArg},
		"search keeps spaces": {line: "s  desk lamp ", want: command{name: "s", args: []string{"desk lamp"}}},
		"search blank":        {line: "s", want: command{name: "s", args: []string{""}}},
		"category":            {line: "c home", want: command{name: "c", args: []string{"home"}}},
		"price both":          {line: "price 1000 5000", want: command{name: "price", args: []string{"1000", "5000"}}},
		"price max only":      {line: "price - 5000", want: command{name: "price", args: []string{"", "5000"}}},
		"price none":          {line: "price", want: command{name: "price", args: []string{"", ""}}},
		"refresh":             {line: "refresh", want: command{name: "refresh"}},
		"unknown":             {line: "zoom 3", wantErr: errUnknownCommand},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := parseCommand(tc.line)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatControls(t *testing.T) {
	p := listing.NewPagination(6, 12, 120, 10)
	assert.Equal(t, "< 1 ... 4 5 [6] 7 8 ... 12 >", formatControls(listing.BuildControls(p, 2)))

	first := listing.NewPagination(1, 3, 25, 10)
	assert.Equal(t, "[1] 2 3 >", formatControls(listing.BuildControls(first, 2)))
}

// stubFetcher serves a catalogue of total products.
type stubFetcher struct {
	total int
	err   error
}

func (f *stubFetcher) Fetch(_ context.Context, req listing.PageRequest) (listing.PageEnvelope, error) {
	if f.err != nil {
		return listing.PageEnvelope{}, f.err
	}
	totalPages := (f.total + req.Limit - 1) / req.Limit
	items := []model.Product{}
	for i := (req.Page-1)*req.Limit + 1; i <= req.Page*req.Limit && i <= f.total; i++ {
		items = append(items, model.Product{
			ID:    fmt.Sprintf("p%d", i),
			Name:  fmt.Sprintf("Product %d", i),
			Price: decimal.NewFromInt(int64(i * 100)),
		})
	}
	return listing.PageEnvelope{
		Items:      items,
		Pagination: listing.NewPagination(req.Page, totalPages, f.total, req.Limit),
	}, nil
}

func newTestSession(f *stubFetcher, location string) (*session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	loc := urlsync.NewMemoryLocation(location)
	ctrl := controller.New(
		log.NewNop(),
		f,
		render.NewText(out),
		nil,
		urlsync.New(loc),
		controller.Options{Variant: listing.VariantExplore, Limit: 10},
	)
	return &session{ctrl: ctrl, loc: loc, out: out}, out
}

func TestSessionRun(t *testing.T) {
	sess, out := newTestSession(&stubFetcher{total: 25}, "/explore")

	err := sess.run(context.Background(), strings.NewReader("n\ng 3\nn\nq\n"))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Showing 1-10 of 25 products")
	assert.Contains(t, text, "Showing 11-20 of 25 products")
	assert.Contains(t, text, "Showing 21-25 of 25 products")
	assert.Contains(t, text, "location: /explore?page=3")
	assert.Contains(t, text, "1 2 [3]")
	// next on the last page
	assert.Contains(t, text, "nothing to do")
	assert.Equal(t, 3, sess.ctrl.Snapshot().State.CurrentPage)
}

func TestSessionExec(t *testing.T) {
	ctx := context.Background()

	t.Run("restores location then filters", func(t *testing.T) {
		sess, out := newTestSession(&stubFetcher{total: 25}, "/explore?page=2&q=lamp")
		sess.report(sess.ctrl.InitFromLocation(ctx))
		assert.Contains(t, out.String(), "location: /explore?page=2&q=lamp")

		quit, err := sess.exec(ctx, command{name: "c", args: []string{"home"}})
		require.NoError(t, err)
		assert.False(t, quit)
		assert.Contains(t, out.String(), "location: /explore?categories=home&page=1&q=lamp")
	})

	t.Run("invalid page", func(t *testing.T) {
		sess, _ := newTestSession(&stubFetcher{total: 25}, "/explore")
		_, err := sess.exec(ctx, command{name: "g", args: []string{"two"}})
		require.Error(t, err)
		_, err = sess.exec(ctx, command{name: "g", args: []string{"0"}})
		require.Error(t, err)
	})

	t.Run("invalid price", func(t *testing.T) {
		sess, out := newTestSession(&stubFetcher{total: 25}, "/explore")
		_, err := sess.exec(ctx, command{name: "price", args: []string{"cheap", ""}})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "error: ")
	})

	t.Run("failure then retry", func(t *testing.T) {
		f := &stubFetcher{total: 25, err: errors.New("connection refused")}
		sess, out := newTestSession(f, "/explore")
		sess.report(sess.ctrl.InitFromLocation(ctx))
		assert.Contains(t, out.String(), "error: Failed to load products")

		f.err = nil
		out.Reset()
		_, err := sess.exec(ctx, command{name: "r"})
		require.NoError(t, err)
		assert.NotContains(t, out.String(), "error:")
		assert.Contains(t, out.String(), "Showing 1-10 of 25 products")
	})

	t.Run("quit", func(t *testing.T) {
		sess, _ := newTestSession(&stubFetcher{total: 25}, "/explore")
		quit, err := sess.exec(ctx, command{name: "q"})
		require.NoError(t, err)
		assert.True(t, quit)
	})
}
