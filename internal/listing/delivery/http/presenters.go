package http

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/cache"
	"marketplace-browser/internal/listing/render"
	"marketplace-browser/internal/model"
	"marketplace-browser/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Location string `json:"location" binding:"max=2048"`
	Variant  string `json:"variant"  binding:"omitempty,oneof=explore seller recommended"`
	Limit    int    `json:"limit"    binding:"omitempty,min=1,max=100"`
}

func (r createReq) toInput() createInput {
	return createInput{
		Location: r.Location,
		Variant:  r.Variant,
		Limit:    r.Limit,
	}
}

type createInput struct {
	Location string
	Variant  string
	Limit    int
}

type searchReq struct {
	Query string `json:"query" binding:"max=200"`
}

type categoryReq struct {
	Category string `json:"category" binding:"max=100"`
}

type priceReq struct {
	MinPrice string `json:"min_price"`
	MaxPrice string `json:"max_price"`
}

func (r priceReq) validate() error {
	if _, err := listing.ParsePrice(r.MinPrice); err != nil {
		return err
	}
	if _, err := listing.ParsePrice(r.MaxPrice); err != nil {
		return err
	}
	return nil
}

type pageReq struct {
	Page int `json:"page" binding:"required"`
}

func (r pageReq) validate() error {
	if r.Page < 1 {
		return listing.ErrInvalidPage
	}
	return nil
}

// --- Response DTOs ---

var pricePrinter = message.NewPrinter(language.Make("en-NG"))

type productResp struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        string  `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Image        string  `json:"image,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	ShopName     string  `json:"shop_name,omitempty"`
}

func newProductResp(p model.Product) productResp {
	return productResp{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price.String(),
		PriceDisplay: render.FormatPrice(pricePrinter, p.Price),
		Image:        p.Image,
		Rating:       p.Rating,
		ShopName:     p.Seller.ShopName,
	}
}

type pageLinkResp struct {
	Page    int  `json:"page,omitempty"`
	Gap     bool `json:"gap,omitempty"`
	Current bool `json:"current,omitempty"`
}

type controlsResp struct {
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
	HasPrev     bool           `json:"has_prev"`
	HasNext     bool           `json:"has_next"`
	Pages       []pageLinkResp `json:"pages"`
}

func newControlsResp(c *listing.Controls) *controlsResp {
	if c == nil {
		return nil
	}
	pages := make([]pageLinkResp, len(c.Pages))
	for i, p := range c.Pages {
		pages[i] = pageLinkResp{Page: p.Number, Gap: p.Gap, Current: p.Current}
	}
	return &controlsResp{
		CurrentPage: c.CurrentPage,
		TotalPages:  c.TotalPages,
		HasPrev:     c.HasPrev,
		HasNext:     c.HasNext,
		Pages:       pages,
	}
}

type paginationResp struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
	Limit       int  `json:"limit"`
}

type surfaceResp struct {
	ID         string            `json:"id"`
	Outcome    string            `json:"outcome,omitempty"`
	Location   string            `json:"location"`
	Variant    string            `json:"variant"`
	Page       int               `json:"page"`
	Filters    map[string]string `json:"filters"`
	Loading    bool              `json:"loading"`
	Empty      bool              `json:"empty"`
	Error      string            `json:"error,omitempty"`
	Results    string            `json:"results,omitempty"`
	Pagination *paginationResp   `json:"pagination,omitempty"`
	Controls   *controlsResp     `json:"controls,omitempty"`
	Items      []productResp     `json:"items"`
	CreatedAt  response.DateTime `json:"created_at"`
}

// newSurfaceResp describes what the surface shows. outcome is omitted for plain reads.
func (h *handler) newSurfaceResp(s *surface, outcome *listing.Outcome) surfaceResp {
	snap := s.ctrl.Snapshot()
	grid := h.reg.grid(s.id)

	items := make([]productResp, len(grid.Items))
	for i, p := range grid.Items {
		items[i] = newProductResp(p)
	}

	resp := surfaceResp{
		ID:        s.id,
		Location:  s.loc.String(),
		Variant:   string(s.variant),
		Page:      snap.State.CurrentPage,
		Filters:   snap.State.Filters.Values(),
		Loading:   snap.UI.Loading,
		Empty:     snap.UI.Empty,
		Error:     snap.UI.Error,
		Results:   snap.UI.Results,
		Controls:  newControlsResp(snap.UI.Controls),
		Items:     items,
		CreatedAt: response.DateTime(s.createdAt),
	}
	if outcome != nil {
		resp.Outcome = outcome.String()
	}
	if env := snap.State.LastEnvelope; env != nil {
		p := env.Pagination
		resp.Pagination = &paginationResp{
			CurrentPage: p.CurrentPage,
			TotalPages:  p.TotalPages,
			TotalItems:  p.TotalItems,
			HasNextPage: p.HasNextPage,
			HasPrevPage: p.HasPrevPage,
			Limit:       p.Limit,
		}
	}
	return resp
}

type cacheMetricsResp struct {
	Hits      int64    `json:"hits"`
	Misses    int64    `json:"misses"`
	Evictions int64    `json:"evictions"`
	Size      int      `json:"size"`
	Capacity  int      `json:"capacity"`
	Keys      []string `json:"keys"`
}

func newCacheMetricsResp(m cache.Metrics, keys []string) cacheMetricsResp {
	if keys == nil {
		keys = []string{}
	}
	return cacheMetricsResp{
		Hits:      m.Hits,
		Misses:    m.Misses,
		Evictions: m.Evictions,
		Size:      m.Size,
		Capacity:  m.Capacity,
		Keys:      keys,
	}
}
