package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
)

func TestParseGemVersion_Invalid(t *testing.T) {
	for _, input := range []string{"", "  ", "beta", "4..0", "4.0.$", "4.0."} {
		t.Run(input, func(t *testing.T) {
			_, err := domain.ParseGemVersion(input)
			require.Error(t, err)
		})
	}
}

func TestGemVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"4.0.0", "4.0.0", 0},
		{"4.0", "4.0.0", 0},
		{"4.0.1", "4.0.0", 1},
		{"4.0.0.beta", "4.0.0", -1},
		{"4.0.0.beta", "4.0.0.beta1", -1},
		{"4.0.0.beta1", "4.0.0.rc1", -1},
		{"4.1.0.beta1", "4.0.13", 1},
		{"3.2.22", "4.0.0.beta", -1},
		{"10.0.0", "9.9.9", 1},
		{"1.0-rc1", "1.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			a := domain.MustParseGemVersion(tt.a)
			b := domain.MustParseGemVersion(tt.b)
			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
		})
	}
}

func TestGemVersion_InRange(t *testing.T) {
	lower := domain.MustParseGemVersion("4.0.0.beta")
	upper := domain.MustParseGemVersion("4.1.0.beta1")

	assert.True(t, domain.MustParseGemVersion("4.0.0").InRange(lower, upper))
	assert.True(t, domain.MustParseGemVersion("4.0.0.beta").InRange(lower, upper))
	assert.True(t, domain.MustParseGemVersion("4.0.13").InRange(lower, upper))
	assert.False(t, domain.MustParseGemVersion("4.1.0").InRange(lower, upper))
	assert.False(t, domain.MustParseGemVersion("4.1.0.beta1").InRange(lower, upper))
	assert.False(t, domain.MustParseGemVersion("3.2.22").InRange(lower, upper))
}

func TestGemVersion_IsPrerelease(t *testing.T) {
	assert.True(t, domain.MustParseGemVersion("4.0.0.rc2").IsPrerelease())
	assert.False(t, domain.MustParseGemVersion("4.0.2").IsPrerelease())
	assert.Equal(t, "4.0.2", domain.MustParseGemVersion(" 4.0.2 ").String())
}
