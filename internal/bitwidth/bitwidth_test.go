package bitwidth_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/fahe/internal/bitwidth"
	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.Equal(t, big.NewInt(0), bitwidth.Mask(0))
	assert.Equal(t, big.NewInt(1), bitwidth.Mask(1))
	assert.Equal(t, big.NewInt(255), bitwidth.Mask(8))
}

func TestShifts(t *testing.T) {
	x := big.NewInt(5) // 0b101
	assert.Equal(t, big.NewInt(20), bitwidth.ShiftLeft(x, 2))
	assert.Equal(t, big.NewInt(1), bitwidth.ShiftRight(x, 2))
}

func TestExtractField(t *testing.T) {
	// value = (0b11 << 5) | 0b10101, extracting 4 bits after shifting by 5
	// should recover 0b11 = 3.
	v := new(big.Int).Lsh(big.NewInt(3), 5)
	v.Or(v, big.NewInt(21))
	assert.Equal(t, big.NewInt(3), bitwidth.ExtractField(v, 5, 4))
}
