package fahe_test

import (
	"testing"

	"github.com/fentec-project/fahe/fahe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrimeGeneratorProducesPrimeOfExactBitLength(t *testing.T) {
	gen := fahe.DefaultPrimeGenerator()

	for _, bits := range []int{64, 128, 256} {
		p, err := gen.Prime(bits)
		require.NoError(t, err)
		assert.Equal(t, bits, p.BitLen())
		assert.True(t, p.ProbablyPrime(40))
	}
}

func TestDefaultPrimeGeneratorRejectsTinyBitLength(t *testing.T) {
	gen := fahe.DefaultPrimeGenerator()
	_, err := gen.Prime(1)
	assert.ErrorIs(t, err, fahe.ErrInvalidParameter)
}
