package fahe_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/fahe/fahe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFAHE1RoundTrip(t *testing.T) {
	s, err := fahe.New(fahe.FAHE1, 128, 32, 6, 32, 1)
	require.NoError(t, err)

	for _, m := range []int64{0, 1, 42, 1<<32 - 1} {
		c, err := s.Encrypt(big.NewInt(m))
		require.NoError(t, err)

		out, err := s.Decrypt(c)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(m), out)
	}
}

// S1: 10 additions of a fixed 32-bit value.
func TestFAHE1ScenarioS1(t *testing.T) {
	s, err := fahe.New(fahe.FAHE1, 128, 32, 6, 32, 10)
	require.NoError(t, err)

	m := big.NewInt(2364110189)
	sum := new(big.Int)
	for i := 0; i < 10; i++ {
		c, err := s.Encrypt(m)
		require.NoError(t, err)
		sum.Add(sum, c)
	}

	out, err := s.Decrypt(sum)
	require.NoError(t, err)

	want := new(big.Int).Mul(big.NewInt(10), m)
	want.Mod(want, new(big.Int).Lsh(big.NewInt(1), 32))
	assert.Equal(t, want, out)
}

// S3: small messages (1..100), high alpha headroom.
func TestFAHE1ScenarioS3(t *testing.T) {
	s, err := fahe.New(fahe.FAHE1, 128, 32, 33, 32, 100)
	require.NoError(t, err)

	sum := new(big.Int)
	for i := 1; i <= 100; i++ {
		c, err := s.Encrypt(big.NewInt(int64(i)))
		require.NoError(t, err)
		sum.Add(sum, c)
	}

	out, err := s.Decrypt(sum)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(5050), out)
}

// S5: single-message round trip at the boundaries of the message space.
func TestFAHE1ScenarioS5(t *testing.T) {
	s, err := fahe.New(fahe.FAHE1, 128, 32, 6, 32, 1)
	require.NoError(t, err)

	c0, err := s.Encrypt(big.NewInt(0))
	require.NoError(t, err)
	out0, err := s.Decrypt(c0)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0), out0)

	maxM := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 32), big.NewInt(1))
	cMax, err := s.Encrypt(maxM)
	require.NoError(t, err)
	outMax, err := s.Decrypt(cMax)
	require.NoError(t, err)
	assert.Equal(t, maxM, outMax)
}

func TestFAHE1MessageBound(t *testing.T) {
	s, err := fahe.New(fahe.FAHE1, 128, 32, 6, 32, 1)
	require.NoError(t, err)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 32)
	_, err = s.Encrypt(tooBig)
	assert.ErrorIs(t, err, fahe.ErrInvalidMessage)

	justUnder := new(big.Int).Sub(tooBig, big.NewInt(1))
	_, err = s.Encrypt(justUnder)
	assert.NoError(t, err)

	_, err = s.Encrypt(big.NewInt(-1))
	assert.ErrorIs(t, err, fahe.ErrInvalidMessage)
}

func TestFAHE1CiphertextSizeBound(t *testing.T) {
	s, err := fahe.New(fahe.FAHE1, 128, 32, 6, 32, 1)
	require.NoError(t, err)

	gamma := s.Params().Gamma
	for _, m := range []int64{0, 1, 1<<32 - 1} {
		c, err := s.Encrypt(big.NewInt(m))
		require.NoError(t, err)
		assert.LessOrEqual(t, c.BitLen(), gamma+2)
	}
}

func TestFAHE1FreshRandomness(t *testing.T) {
	s, err := fahe.New(fahe.FAHE1, 128, 32, 6, 32, 1)
	require.NoError(t, err)

	m := big.NewInt(7)
	c1, err := s.Encrypt(m)
	require.NoError(t, err)
	c2, err := s.Encrypt(m)
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2)
}

func TestKeyFreshness(t *testing.T) {
	s1, err := fahe.New(fahe.FAHE1, 128, 32, 6, 32, 1)
	require.NoError(t, err)
	s2, err := fahe.New(fahe.FAHE1, 128, 32, 6, 32, 1)
	require.NoError(t, err)

	k1 := s1.Keys().Decrypt.(fahe.FAHE1DecryptKey)
	k2 := s2.Keys().Decrypt.(fahe.FAHE1DecryptKey)
	assert.NotEqual(t, k1.P, k2.P)
}
