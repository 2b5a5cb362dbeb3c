package fahe_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/fentec-project/fahe/fahe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCSPRNG is a deterministic stand-in satisfying fahe.CSPRNG, used here
// only to demonstrate the override point section 6 requires; it must never
// be used outside tests.
type fakeCSPRNG struct {
	r *rand.Rand
}

func newFakeCSPRNG(seed int64) *fakeCSPRNG {
	return &fakeCSPRNG{r: rand.New(rand.NewSource(seed))}
}

func (f *fakeCSPRNG) UniformBits(k int) (*big.Int, error) {
	if k <= 0 {
		return big.NewInt(0), nil
	}
	max := new(big.Int).Lsh(big.NewInt(1), uint(k))
	return new(big.Int).Rand(f.r, max), nil
}

func (f *fakeCSPRNG) UniformBelow(n *big.Int) (*big.Int, error) {
	return new(big.Int).Rand(f.r, n), nil
}

func (f *fakeCSPRNG) UniformBelowInclusive(n *big.Int) (*big.Int, error) {
	max := new(big.Int).Add(n, big.NewInt(1))
	return new(big.Int).Rand(f.r, max), nil
}

// fakePrimeGenerator stands in for a caller-supplied PrimeGenerator. It
// delegates to the default generator, so every call still runs a fresh
// random prime search.
type fakePrimeGenerator struct{}

func (fakePrimeGenerator) Prime(bits int) (*big.Int, error) {
	return fahe.DefaultPrimeGenerator().Prime(bits)
}

func TestSchemeWithOverriddenDeps(t *testing.T) {
	s, err := fahe.NewWithDeps(fahe.FAHE1, 64, 16, 6, 16, 1, newFakeCSPRNG(1), fakePrimeGenerator{})
	require.NoError(t, err)

	c, err := s.Encrypt(big.NewInt(42))
	require.NoError(t, err)
	out, err := s.Decrypt(c)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), out)
}

func TestEncryptBatch(t *testing.T) {
	s, err := fahe.New(fahe.FAHE1, 64, 16, 6, 16, 3)
	require.NoError(t, err)

	ms := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	cs, err := s.EncryptBatch(ms)
	require.NoError(t, err)
	require.Len(t, cs, 3)

	sum := new(big.Int)
	for _, c := range cs {
		sum.Add(sum, c)
	}
	out, err := s.Decrypt(sum)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(6), out)
}

func TestEncryptBatchPropagatesInvalidMessage(t *testing.T) {
	s, err := fahe.New(fahe.FAHE1, 64, 8, 6, 8, 1)
	require.NoError(t, err)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 8)
	_, err = s.EncryptBatch([]*big.Int{big.NewInt(1), tooBig})
	assert.ErrorIs(t, err, fahe.ErrInvalidMessage)
}
