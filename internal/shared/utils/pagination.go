package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/shared/constants"
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page     int
	PageSize int
}

// ValidatePagination replaces non-positive values with the defaults and
// caps PageSize at constants.MaxPageSize.
func ValidatePagination(page, pageSize int) Pagination {
	p := Pagination{Page: constants.DefaultPage, PageSize: constants.DefaultPageSize}
	if page > 0 {
		p.Page = page
	}
	if pageSize > 0 {
		p.PageSize = min(pageSize, constants.MaxPageSize)
	}
	return p
}

// ParsePagination reads ?page= and ?page_size=. Unparseable values fall
// back to the defaults instead of failing the request.
func ParsePagination(c *gin.Context) Pagination {
	return ValidatePagination(queryInt(c, "page"), queryInt(c, "page_size"))
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

// Offset is the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages never returns less than one so empty lists still report a page.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
