package gpc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		v    float64
		want axisParts
	}{
		{0, axisParts{1, 0, [5]int{0, 0, 0, 0, 0}}},
		{math.Copysign(0, -1), axisParts{1, 0, [5]int{0, 0, 0, 0, 0}}},
		{12.34567, axisParts{1, 12, [5]int{3, 4, 5, 6, 7}}},
		{-12.34567, axisParts{-1, 12, [5]int{3, 4, 5, 6, 7}}},
		{-0.00001, axisParts{-1, 0, [5]int{0, 0, 0, 0, 1}}},
		{179.99999, axisParts{1, 179, [5]int{9, 9, 9, 9, 9}}},
		{-89.99999, axisParts{-1, 89, [5]int{9, 9, 9, 9, 9}}},
		// truncated, not rounded
		{1.234569, axisParts{1, 1, [5]int{2, 3, 4, 5, 6}}},
		{89.99999999999, axisParts{1, 89, [5]int{9, 9, 9, 9, 9}}},
		// binary floating point multiplication drifts on these
		{0.29, axisParts{1, 0, [5]int{2, 9, 0, 0, 0}}},
		{0.1 + 0.2, axisParts{1, 0, [5]int{3, 0, 0, 0, 0}}},
		{4.35, axisParts{1, 4, [5]int{3, 5, 0, 0, 0}}},
		{45, axisParts{1, 45, [5]int{0, 0, 0, 0, 0}}},
		{1e-20, axisParts{1, 0, [5]int{0, 0, 0, 0, 0}}},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, decompose(tc.v), "decompose(%v)", tc.v)
	}
}

func TestCompose(t *testing.T) {
	require.Equal(t, 12.34567, axisParts{1, 12, [5]int{3, 4, 5, 6, 7}}.compose())
	require.Equal(t, -0.00001, axisParts{-1, 0, [5]int{0, 0, 0, 0, 1}}.compose())
	require.Equal(t, -179.99999, axisParts{-1, 179, [5]int{9, 9, 9, 9, 9}}.compose())

	zero := axisParts{-1, 0, [5]int{}}.compose()
	require.Equal(t, 0.0, zero)
	require.False(t, math.Signbit(zero))
}

func TestDecomposeComposeRoundTrip(t *testing.T) {
	for i := -17999999; i <= 17999999; i += 7919 {
		v := float64(i) / fractionScale
		p := decompose(v)
		if got := p.compose(); got != v {
			t.Fatalf("compose(decompose(%v)) = %v (%+v)", v, got, p)
		}
	}
}
