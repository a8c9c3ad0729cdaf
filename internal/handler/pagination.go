package handler

import (
	"github.com/yourusername/careers-web/internal/model"
)

// paginate computes pager metadata for the role listing. fetched is the
// row count before trimming the one-ahead probe row; totalCount is -1
// when the API sent no X-Total-Count header. The two HasNext paths must
// agree when both are exercised with consistent data.
func paginate(page, pageSize, fetched, totalCount int) model.Pagination {
	p := model.Pagination{
		CurrentPage: page,
		PrevPage:    page - 1,
		NextPage:    page + 1,
		HasPrev:     page > 1,
		TotalPages:  -1,
		TotalCount:  totalCount,
	}

	if totalCount >= 0 {
		totalPages := (totalCount + pageSize - 1) / pageSize
		if totalPages < 1 {
			totalPages = 1
		}
		p.TotalPages = totalPages
		p.HasNext = page < totalPages
	} else {
		// No total available: the extra probe row signals a next page.
		p.HasNext = fetched > pageSize
	}

	return p
}
