package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pq.Error{Code: CodeUniqueViolation})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.True(t, IsCheckViolation(&pq.Error{Code: CodeCheckViolation}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(nil))
}
