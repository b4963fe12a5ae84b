package gigs

import "github.com/presetapp/gigboard/internal/domain/model"

const DefaultPageSize = 12

type Page struct {
	Items      []model.Gig
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Paginate slices a 1-based page out of gigs. Pages below 1 are clamped to
// 1; pages past the end return no items but still report totals.
func Paginate(gigs []model.Gig, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(gigs)
	totalPages := (total + pageSize - 1) / pageSize

	out := Page{
		Items:      []model.Gig{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}

	if page > totalPages {
		return out
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	out.Items = append(out.Items, gigs[start:end]...)
	return out
}
