package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 25, TotalPages: 3}, NewPagination(2, 10, 25))
	assert.Equal(t, 0, NewPagination(1, 10, 0).TotalPages)
	assert.Equal(t, 1, NewPagination(1, 10, 10).TotalPages)
}
