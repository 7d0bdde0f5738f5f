package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainClassifier_Matches(t *testing.T) {
	c := NewDomainClassifier(BeautyKeywords...)

	tests := []struct {
		category string
		want     bool
	}{
		{"Health & Beauty > Personal Care > Cosmetics", true},
		{"SKINCARE", true},
		{"Hair Care > Shampoo", true},
		{"Eye Makeup", true},
		{"en:sunscreens", true},
		{"Food > Snacks", false},
		{"Electronics", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Matches(tt.category))
		})
	}
}

func TestNewDomainClassifier_NormalizesKeywords(t *testing.T) {
	c := NewDomainClassifier("  Perfume ", "", "NAIL")

	assert.True(t, c.Matches("perfumes"))
	assert.True(t, c.Matches("Nail polish"))
	assert.False(t, c.Matches("anything"), "blank keywords must not match everything")
}
