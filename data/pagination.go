package data

// Pagination is the envelope block the remote API attaches to list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// LastPage returns the total page count, never less than one.
func (p Pagination) LastPage() int {
	if p.Pages < 1 {
		return 1
	}
	return p.Pages
}

// Clamp bounds page to [1, LastPage].
func (p Pagination) Clamp(page int) int {
	return max(1, min(page, p.LastPage()))
}
