package listing

import "fmt"

// DefaultControlsDelta is how many pages either side of the current one are listed.
const DefaultControlsDelta = 2

// PageLink is one entry in the page-number strip. Gap entries render as "...".
type PageLink struct {
	Number  int
	Gap     bool
	Current bool
}

// Controls is what the pagination bar shows.
type Controls struct {
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	Pages       []PageLink
}

// BuildControls lays out the pagination bar for p. The strip always contains
// the first and last page plus current±delta; a single skipped page is shown
// as a number instead of a gap.
func BuildControls(p Pagination, delta int) Controls {
	return Controls{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		HasPrev:     p.HasPrevPage,
		HasNext:     p.HasNextPage,
		Pages:       pageNumbers(p.CurrentPage, p.TotalPages, delta),
	}
}

func pageNumbers(current, total, delta int) []PageLink {
	var window []int
	for i := 1; i <= total; i++ {
		if i == 1 || i == total || (i >= current-delta && i <= current+delta) {
			window = append(window, i)
		}
	}

	links := make([]PageLink, 0, len(window)+2)
	prev := 0
	for _, i := range window {
		if prev > 0 {
			switch {
			case i-prev == 2:
				links = append(links, PageLink{Number: prev + 1, Current: prev+1 == current})
			case i-prev != 1:
				links = append(links, PageLink{Gap: true})
			}
		}
		links = append(links, PageLink{Number: i, Current: i == current})
		prev = i
	}
	return links
}

// ResultsRange returns the 1-based item range shown on page.
func ResultsRange(page, limit, total int) (start, end int) {
	if total <= 0 || page < 1 || limit < 1 {
		return 0, 0
	}
	start = (page-1)*limit + 1
	if start > total {
		return 0, 0
	}
	end = page * limit
	if end > total {
		end = total
	}
	return start, end
}

// ResultsText renders the results counter. It is empty when there is nothing to count.
func ResultsText(page, limit, total int) string {
	start, end := ResultsRange(page, limit, total)
	if start == 0 {
		return ""
	}
	return fmt.Sprintf("Showing %d-%d of %d products", start, end, total)
}

// Clone returns a copy of c whose Pages slice is not shared.
func (c Controls) Clone() Controls {
	out := c
	out.Pages = append([]PageLink(nil), c.Pages...)
	return out
}
