package render

import (
	"fmt"
	"io"
	"sync"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/model"
)

const (
	currencySymbol = "₦"
	defaultShop    = "Seller"
	defaultRating  = 4.5
)

var priceLocale = language.Make("en-NG")

// Text writes product cards as an aligned table.
type Text struct {
	mu      sync.Mutex
	w       io.Writer
	printer *message.Printer
}

var _ listing.Renderer = (*Text)(nil)

func NewText(w io.Writer) *Text {
	return &Text{
		w:       w,
		printer: message.NewPrinter(priceLocale),
	}
}

// Render prints items in the layout of variant. Unknown variants use the
// recommended layout.
func (t *Text) Render(items []model.Product, surfaceID string, variant listing.Variant) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.w, "== %s (%s) ==\n", surfaceID, variant)
	if len(items) == 0 {
		fmt.Fprintln(t.w, "No products found")
		return
	}

	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	for i, p := range items {
		price := t.formatPrice(p.Price)
		switch variant {
		case listing.VariantSeller:
			fmt.Fprintf(tw, "%d.\t%s\t%s\t[edit %s] [delete %s]\n", i+1, p.Name, price, p.ID, p.ID)
		case listing.VariantExplore:
			fmt.Fprintf(tw, "%d.\t%s\t%s\t%s\t★ %.1f\t#%s\n", i+1, p.Name, price, shopName(p), rating(p), p.ID)
		default:
			fmt.Fprintf(tw, "%d.\t%s\t%s\t%s\t★ %.1f\n", i+1, p.Name, price, shopName(p), rating(p))
		}
	}
	tw.Flush()
}

func (t *Text) formatPrice(d decimal.Decimal) string {
	return FormatPrice(t.printer, d)
}

// FormatPrice renders d in naira with locale digit grouping, e.g. "₦1,500"
// or "₦1,234.50".
func FormatPrice(p *message.Printer, d decimal.Decimal) string {
	if d.IsInteger() {
		return currencySymbol + p.Sprintf("%d", d.IntPart())
	}
	return currencySymbol + p.Sprintf("%.2f", d.InexactFloat64())
}

func shopName(p model.Product) string {
	if p.Seller.ShopName == "" {
		return defaultShop
	}
	return p.Seller.ShopName
}

func rating(p model.Product) float64 {
	if p.Rating == 0 {
		return defaultRating
	}
	return p.Rating
}
