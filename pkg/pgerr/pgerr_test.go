package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		unique        bool
		exclusion     bool
		serialization bool
	}{
		{name: "unique", err: &pq.Error{Code: "23505"}, unique: true},
		{name: "exclusion", err: &pq.Error{Code: "23P01"}, exclusion: true},
		{name: "serialization", err: &pq.Error{Code: "40001"}, serialization: true},
		{name: "deadlock", err: &pq.Error{Code: "40P01"}, serialization: true},
		{name: "wrapped exclusion", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23P01"}), exclusion: true},
		{name: "plain error", err: errors.New("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
			assert.Equal(t, tt.exclusion, IsExclusionViolation(tt.err))
			assert.Equal(t, tt.serialization, IsSerializationFailure(tt.err))
		})
	}
}

func TestConstraint(t *testing.T) {
	err := fmt.Errorf("wrap: %w", &pq.Error{Code: "23505", Constraint: "invoices_reservation_id_key"})
	assert.Equal(t, "invoices_reservation_id_key", Constraint(err))
	assert.Equal(t, "", Constraint(errors.New("x")))
}
