package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdadeEm(t *testing.T) {
	ref := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		nascimento time.Time
		want       int
	}{
		{"aniversário hoje", time.Date(2007, 6, 15, 0, 0, 0, 0, time.UTC), 18},
		{"aniversário amanhã", time.Date(2007, 6, 16, 0, 0, 0, 0, time.UTC), 17},
		{"aniversário ontem", time.Date(2007, 6, 14, 0, 0, 0, 0, time.UTC), 18},
		{"dez anos", time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), 10},
		{"recém-nascido", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IdadeEm(tt.nascimento, ref))
		})
	}
}
