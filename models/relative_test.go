package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestLiveEmailIndexes(t *testing.T) {
	tests := []struct {
		model interface{}
		index string
	}{
		{&ChildRelation{}, "idx_child_relations_email"},
		{&Supplier{}, "idx_suppliers_email"},
		{&Artist{}, "idx_artists_email"},
	}
	for _, tt := range tests {
		t.Run(tt.index, func(t *testing.T) {
			s, err := schema.Parse(tt.model, &sync.Map{}, schema.NamingStrategy{})
			require.NoError(t, err)

			idx, ok := s.ParseIndexes()[tt.index]
			require.True(t, ok)
			assert.Equal(t, "UNIQUE", idx.Class)
			assert.Equal(t, "is_deleted = false", idx.Where)
			require.Len(t, idx.Fields, 1)
			assert.Equal(t, "email", idx.Fields[0].DBName)
		})
	}
}
