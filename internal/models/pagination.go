package models

// PageRequest carries the 1-based page number and page size parsed from
// query parameters.
type PageRequest struct {
	Page     int
	PageSize int
}

// Offset converts the page request into a SQL offset.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type PaginationMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Pages    int   `json:"pages"`
	Total    int64 `json:"total"`
}

// PaginationResult is the common envelope for every paginated listing.
type PaginationResult struct {
	Meta   PaginationMeta `json:"meta"`
	Result interface{}    `json:"result"`
}

// NewPaginationResult fills the meta block from the request and total count.
func NewPaginationResult(req PageRequest, total int64, result interface{}) PaginationResult {
	pages := 0
	if req.PageSize > 0 {
		pages = int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	}
	return PaginationResult{
		Meta: PaginationMeta{
			Page:     req.Page,
			PageSize: req.PageSize,
			Pages:    pages,
			Total:    total,
		},
		Result: result,
	}
}
