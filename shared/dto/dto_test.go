package dto_test

import (
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"floorplan/shared/constant"
	"floorplan/shared/dto"
	"floorplan/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, CreatedBy: "user-1"})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, "user-1", metadata.CreatedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "operation",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "operation", SortDir: "ASC"},
		},
		{
			name:           "defaults applied",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:        "no defaults",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "invalid page and limit fall back to defaults",
			queryParams:    map[string]string{"page": "-1", "limit": "abc"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:        "unknown sort direction ignored",
			queryParams: map[string]string{"sort_dir": "sideways"},
			expected:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			req := httptest.NewRequest("GET", "/v1/floors/f-1/sync-logs?"+query.Encode(), nil)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestQueryParams_RestrictSortBy(t *testing.T) {
	params := dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirAsc}
	params.RestrictSortBy("created_at", "operation")
	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)

	params = dto.QueryParams{SortBy: "1; DROP TABLE floor_sync_logs", SortDir: dto.SortDirAsc}
	params.RestrictSortBy("created_at", "operation")
	assert.Empty(t, params.SortBy)
	assert.Empty(t, params.SortDir)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "floor_id", Value: "f-1", Operator: dto.FilterOperatorEq, Table: "floor_sync_logs"},
			dto.Filter{Field: "operation", Value: []string{"sync", "create"}, Operator: dto.FilterOperatorIn},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(floor_sync_logs.floor_id = :floor_id AND operation IN (:operation_0, :operation_1) )", where)
	assert.Equal(t, map[string]any{"floor_id": "f-1", "operation_0": "sync", "operation_1": "create"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
