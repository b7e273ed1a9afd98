package engine

import "github.com/paydeck/transactions-console/internal/models"

// DefaultPageSize matches the dashboard table's rows per page.
const DefaultPageSize = 5

// Page is one rendered window over the filtered view.
type Page struct {
	Items       []models.Transaction `json:"items"`
	PageCount   int                  `json:"page_count"`
	CurrentPage int                  `json:"current_page"`
	Buttons     []PageButton         `json:"buttons,omitempty"`
}

// PageButton is one entry in the compressed page-navigation window. An
// ellipsis entry stands for the whole run of pages skipped between its
// neighbours.
type PageButton struct {
	Page     int  `json:"page,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Paginate slices the filtered view into the requested page. currentPage
// is clamped into [1, pageCount]; an empty view yields no items and no
// buttons.
func Paginate(filtered []models.Transaction, currentPage, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pageCount := (len(filtered) + pageSize - 1) / pageSize
	currentPage = ClampPage(currentPage, pageCount)
	if pageCount == 0 {
		return Page{Items: []models.Transaction{}, CurrentPage: currentPage}
	}

	start := (currentPage - 1) * pageSize
	end := min(start+pageSize, len(filtered))
	return Page{
		Items:       filtered[start:end],
		PageCount:   pageCount,
		CurrentPage: currentPage,
		Buttons:     PageButtons(currentPage, pageCount),
	}
}

// PageButtons computes the compressed button window: always page 1 and
// pageCount, always the current page and its neighbours, one ellipsis
// per gap. Small page counts (≤ 5) render every page.
func PageButtons(currentPage, pageCount int) []PageButton {
	if pageCount < 1 {
		return nil
	}
	include := func(p int) bool {
		if pageCount <= 5 {
			return true
		}
		return p == 1 || p == pageCount ||
			(p >= currentPage-1 && p <= currentPage+1)
	}

	var buttons []PageButton
	last := 0
	for p := 1; p <= pageCount; p++ {
		if !include(p) {
			continue
		}
		if last != 0 && p-last > 1 {
			buttons = append(buttons, PageButton{Ellipsis: true})
		}
		buttons = append(buttons, PageButton{Page: p, Current: p == currentPage})
		last = p
	}
	return buttons
}

// ClampPage forces page into [1, pageCount]. A zero pageCount clamps to
// page 1 so the view never points past the filtered length.
func ClampPage(page, pageCount int) int {
	if page < 1 {
		return 1
	}
	if pageCount >= 1 && page > pageCount {
		return pageCount
	}
	if pageCount == 0 {
		return 1
	}
	return page
}

// NextPage advances one page, stopping at the last.
func NextPage(current, pageCount int) int {
	return ClampPage(current+1, pageCount)
}

// PrevPage steps back one page, stopping at the first.
func PrevPage(current int) int {
	return max(current-1, 1)
}
