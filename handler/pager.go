package handler

import (
	"net/url"
	"strconv"

	"github.com/emzola/bookmanager/data"
)

// pager is the view model of the pagination control. The links keep the
// current filters and only change the page. Page may lie past the last page
// when the URL asks for one; Anterior then leads back to the last page.
type pager struct {
	Page   int
	Pages  int
	bounds data.Pagination
	path   string
	query  url.Values
}

func newPager(p data.Pagination, path string, query url.Values) pager {
	q := url.Values{}
	for k, v := range query {
		if k != "page" {
			q[k] = v
		}
	}
	return pager{
		Page:   max(1, p.Page),
		Pages:  p.LastPage(),
		bounds: p,
		path:   path,
		query:  q,
	}
}

// Visible reports whether there is more than one page to move between.
func (p pager) Visible() bool { return p.Pages > 1 }

func (p pager) HasPrev() bool { return p.Page > 1 }

func (p pager) HasNext() bool { return p.Page < p.Pages }

func (p pager) PrevURL() string { return p.url(p.bounds.Clamp(p.Page - 1)) }

func (p pager) NextURL() string { return p.url(p.bounds.Clamp(p.Page + 1)) }

func (p pager) url(page int) string {
	q := url.Values{}
	for k, v := range p.query {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(page))
	return p.path + "?" + q.Encode()
}
