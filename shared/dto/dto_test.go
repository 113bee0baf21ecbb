package dto_test

import (
	"net/http/httptest"
	"testing"

	"campusbook/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "resource_id",
				Operator: dto.FilterOperatorEq,
				Value:    "r-1",
				Table:    "bookings",
			},
			wantWhere: "bookings.resource_id = :resource_id",
			wantArgs:  map[string]any{"resource_id": "r-1"},
		},
		{
			name: "in with slice",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorIn,
				Value:    []string{"REQUEST", "ONGOING"},
				Table:    "bookings",
			},
			wantWhere: "bookings.status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "REQUEST", "status_1": "ONGOING"},
		},
		{
			name: "less_eq with custom arg name",
			filter: dto.Filter{
				ArgName:  "window_start",
				Field:    "start_time",
				Operator: dto.FilterOperatorLessEq,
				Value:    "2026-03-02T09:00:00Z",
			},
			wantWhere: "start_time <= :window_start",
			wantArgs:  map[string]any{"window_start": "2026-03-02T09:00:00Z"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "resource_id", Operator: dto.FilterOperatorEq, Value: "r-1"},
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "REQUEST", ArgName: "booking_status"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(resource_id = :resource_id AND status = :booking_status)", where)
	assert.Len(t, args, 2)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/bookings?page=2&limit=25&sort_by=start_time&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(req, true)

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "start_time", q.SortBy)
	assert.Equal(t, "ASC", q.SortDir)
}

func TestQueryParams_FromRequestDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/bookings", nil)

	q := dto.QueryParams{}
	q.FromRequest(req, true)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}
