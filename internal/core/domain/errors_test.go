package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestErrorLine(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Nil", nil, ""},
		{"Simple", errors.New("boom"), "boom"},
		{
			"Joined",
			errors.Join(domain.ErrDownload, zerr.New("overpass returned an unexpected status")),
			"download failed: overpass returned an unexpected status",
		},
		{"BlankLines", errors.New("first\n\n  second  \n"), "first: second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ErrorLine(tt.err))
		})
	}
}
