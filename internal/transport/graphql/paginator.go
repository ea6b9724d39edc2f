package graphql

import "go-tenant-user-api/internal/domain"

// PaginatorInfo mirrors the paginator metadata contract of the users
// listing. firstItem/lastItem are null on an empty page.
type PaginatorInfo struct {
	Count        int   `json:"count"`
	CurrentPage  int   `json:"currentPage"`
	FirstItem    *int  `json:"firstItem"`
	LastItem     *int  `json:"lastItem"`
	LastPage     int   `json:"lastPage"`
	PerPage      int   `json:"perPage"`
	Total        int64 `json:"total"`
	HasMorePages bool  `json:"hasMorePages"`
}

func newPaginatorInfo(p *domain.Page) PaginatorInfo {
	lastPage := int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}

	info := PaginatorInfo{
		Count:        len(p.Items),
		CurrentPage:  p.Page,
		LastPage:     lastPage,
		PerPage:      p.PerPage,
		Total:        p.Total,
		HasMorePages: p.Page < lastPage,
	}
	if info.Count > 0 {
		first := (p.Page-1)*p.PerPage + 1
		last := first + info.Count - 1
		info.FirstItem = &first
		info.LastItem = &last
	}
	return info
}
