package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		CreatedBy: "creator",
		UpdatedBy: "modifier",
	})

	expectedCreated, _ := time.Parse(constant.DateFormat, metadata.CreatedAt)
	expectedUpdated, _ := time.Parse(constant.DateFormat, metadata.UpdatedAt)

	assert.True(t, expectedCreated.Equal(createdAt))
	assert.True(t, expectedUpdated.Equal(updatedAt))
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name        string
		queryParams map[string]string
		expected    dto.QueryParams
	}{
		{
			name:        "no parameters returns whole list",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:        "page and limit",
			queryParams: map[string]string{"page": "2", "limit": "20"},
			expected:    dto.QueryParams{Page: 2, Limit: 20},
		},
		{
			name:        "limit without page starts at first page",
			queryParams: map[string]string{"limit": "5"},
			expected:    dto.QueryParams{Page: constant.DefaultValuePage, Limit: 5},
		},
		{
			name:        "invalid values are ignored",
			queryParams: map[string]string{"page": "abc", "limit": "-10"},
			expected:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			req, err := http.NewRequest(http.MethodGet, "http://example.com/v1/rooms?"+query.Encode(), nil)
			assert.NoError(t, err)

			params := &dto.QueryParams{}
			params.FromRequest(req)

			assert.Equal(t, tt.expected.Page, params.Page)
			assert.Equal(t, tt.expected.Limit, params.Limit)
		})
	}
}

func TestQueryParams_OrderBy(t *testing.T) {
	params := dto.QueryParams{Sorts: dto.PresentationOrder("rooms")}
	assert.Equal(t, "rooms.sort_order ASC, rooms.created_at DESC", params.OrderBy())

	params = dto.QueryParams{Sorts: []dto.Sort{{Field: "created_at", Dir: "sideways"}, {}}}
	assert.Equal(t, "created_at ASC", params.OrderBy())

	params = dto.QueryParams{Sorts: dto.NewestFirst("")}
	assert.Equal(t, "created_at DESC", params.OrderBy())
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "equality with table",
			group: dto.NewFilterGroup(
				dto.Filter{Field: "slug", Value: "deluxe", Operator: dto.FilterOperatorEq, Table: "rooms"},
			),
			wantWhere: "(rooms.slug = :slug)",
			wantArgs:  map[string]any{"slug": "deluxe"},
		},
		{
			name: "two filters joined by AND",
			group: dto.NewFilterGroup(
				dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "is_featured", Value: true, Operator: dto.FilterOperatorEq},
			),
			wantWhere: "(is_active = :is_active AND is_featured = :is_featured)",
			wantArgs:  map[string]any{"is_active": true, "is_featured": true},
		},
		{
			name: "in operator expands slice",
			group: dto.NewFilterGroup(
				dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
			),
			wantWhere: "(status IN (:status_0, :status_1))",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name: "empty nested group is skipped",
			group: dto.NewFilterGroup(
				dto.FilterGroup{Operator: dto.FilterGroupOperatorOr},
				dto.Filter{Field: "id", Value: int64(7), Operator: dto.FilterOperatorEq},
			),
			wantWhere: "(id = :id)",
			wantArgs:  map[string]any{"id": int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
