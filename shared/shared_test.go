package shared_test

import (
	"testing"

	"campusbook/shared"
	"campusbook/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "with remainder", total: 21, limit: 10, want: 3},
		{name: "empty result set", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 15, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		Purpose string `db:"purpose"`
		Status  string `db:"status"`
		Skip    string
	}

	fields := shared.TransformFields(patch{Purpose: "department offsite"}, "staff-1")

	assert.Equal(t, "department offsite", fields["purpose"])
	assert.NotContains(t, fields, "status")
	assert.Equal(t, "staff-1", fields["modified_by"])
	assert.Contains(t, fields, "modified_at")
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get", shared.BuildCacheKey("booking:get"))
	assert.Equal(t, "booking:get:b-1", shared.BuildCacheKey("booking:get", "b-1"))
}

func TestBuildCacheKeyWithQuery_Deterministic(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "start_time", SortDir: "ASC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "resource_id", Operator: dto.FilterOperatorEq, Value: "r-1"},
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "REQUEST"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	for range 20 {
		assert.Equal(t, first, shared.BuildCacheKeyWithQuery("booking:gets", params, filter))
	}
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	v := shared.ConvertStringToBool("true")
	if assert.NotNil(t, v) {
		assert.True(t, *v)
	}
}
