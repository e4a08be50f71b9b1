package dto

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"hotel/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// Sort is a single ORDER BY term. Field is a trusted column name and is never
// taken from the request.
type Sort struct {
	Field string
	Dir   string
}

func (s Sort) String() string {
	dir := strings.ToUpper(s.Dir)
	if dir != SortDirAsc && dir != SortDirDesc {
		dir = SortDirAsc
	}

	return fmt.Sprintf("%s %s", s.Field, dir)
}

type QueryParams struct {
	Page  int    `json:"page"  validate:"omitempty,min=1"`
	Limit int    `json:"limit" validate:"omitempty,min=1"`
	Sorts []Sort `json:"-"`
}

// FromRequest populates Page and Limit from the query string.
// Invalid or non-positive values are ignored so the list is returned whole.
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req)
//	q.Sorts = dto.PresentationOrder("rooms")
func (q *QueryParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if q.Limit > 0 && q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}
}

// OrderBy renders the sort terms without the ORDER BY keyword.
func (q *QueryParams) OrderBy() string {
	terms := make([]string, 0, len(q.Sorts))
	for _, sort := range q.Sorts {
		if sort.Field == "" {
			continue
		}

		terms = append(terms, sort.String())
	}

	return strings.Join(terms, ", ")
}

// PresentationOrder is the listing order used by every public catalogue:
// ascending sort_order, newest first on ties.
func PresentationOrder(table string) []Sort {
	return []Sort{
		{Field: qualify(table, constant.FieldSortOrder), Dir: SortDirAsc},
		{Field: qualify(table, constant.FieldCreatedAt), Dir: SortDirDesc},
	}
}

// NewestFirst orders by creation time descending.
func NewestFirst(table string) []Sort {
	return []Sort{
		{Field: qualify(table, constant.FieldCreatedAt), Dir: SortDirDesc},
	}
}

func qualify(table, column string) string {
	if table == "" {
		return column
	}

	return table + "." + column
}
