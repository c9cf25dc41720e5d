package model

import (
	"math/big"
	"slices"
	"sync"
	"testing"

	"github.com/limaJavier/lazycart/pkg/random"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceSource replays a fixed list of draws.
type sequenceSource struct {
	draws []int64
	calls int
}

func (source *sequenceSource) Int(n *big.Int) *big.Int {
	draw := source.draws[source.calls%len(source.draws)]
	source.calls++
	return big.NewInt(draw % n.Int64())
}

func TestSampleIndicesRejectsDuplicates(t *testing.T) {
	//** Arrange
	source := &sequenceSource{draws: []int64{3, 3, 1, 3, 1, 0, 2}}

	//** Act
	indices, err := SampleIndices(big.NewInt(4), big.NewInt(3), source)
	require.NoError(t, err)
	drawn := texts(slices.Collect(indices))

	//** Assert
	assert.Equal(t, []string{"3", "1", "0"}, drawn)
	assert.Equal(t, 6, source.calls)
}

func TestSampleIndicesValidation(t *testing.T) {
	_, err := SampleIndices(big.NewInt(4), big.NewInt(5), nil)
	assert.ErrorIs(t, err, ErrSampleSizeExceedsCapacity)

	_, err = SampleIndices(big.NewInt(4), big.NewInt(-1), nil)
	assert.ErrorIs(t, err, ErrNegativeSampleSize)

	_, err = SampleIndices(big.NewInt(4), nil, nil)
	assert.ErrorIs(t, err, ErrNilArgument)

	indices, err := SampleIndices(big.NewInt(0), big.NewInt(0), nil)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(indices))
}

func TestGenerateSamplesDistinct(t *testing.T) {
	g := NewWithT(t)
	product := FromSlices2(lo.Range(50), lo.Map(lo.Range(40), func(i int, _ int) string { return string(rune('A' + i)) }))
	source := random.NewSeededSourceFromUint64(7)

	for _, sampleSize := range []int64{0, 1, 10, 500, 1999, 2000} {
		samples, err := product.Samples(sampleSize, source)
		g.Expect(err).NotTo(HaveOccurred())

		entries := slices.Collect(samples)
		g.Expect(entries).To(HaveLen(int(sampleSize)))
		g.Expect(lo.Uniq(entries)).To(HaveLen(int(sampleSize)))
	}

	_, err := product.Samples(2001, source)
	g.Expect(err).To(MatchError(ErrSampleSizeExceedsCapacity))
}

func TestGenerateSamplesExhaustsProduct(t *testing.T) {
	g := NewWithT(t)
	product := FromSlices3([]int{1, 2}, []string{"a", "b", "c"}, []bool{true, false})

	samples, err := product.GenerateSamples(product.Size(), random.NewCryptoSource())
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(slices.Collect(samples)).To(ConsistOf(
		lo.T3(1, "a", true), lo.T3(1, "a", false), lo.T3(1, "b", true), lo.T3(1, "b", false),
		lo.T3(1, "c", true), lo.T3(1, "c", false), lo.T3(2, "a", true), lo.T3(2, "a", false),
		lo.T3(2, "b", true), lo.T3(2, "b", false), lo.T3(2, "c", true), lo.T3(2, "c", false),
	))
}

func TestGenerateSamplesEachConsumptionIsIndependent(t *testing.T) {
	product := FromSlices2([]int{1, 2, 3}, []int{4, 5, 6})
	samples, err := product.Samples(9, random.NewSeededSourceFromUint64(3))
	require.NoError(t, err)

	first := slices.Collect(samples)
	second := slices.Collect(samples)

	assert.Len(t, first, 9)
	assert.Len(t, second, 9, "a second range starts from an empty seen-set")
	assert.ElementsMatch(t, first, second)
}

func TestGenerateSamplesStopsEarly(t *testing.T) {
	product := FromSlices2(lo.Range(1000), lo.Range(1000))
	source := &sequenceSource{draws: []int64{5, 17, 999_999, 42}}
	samples, err := product.Samples(1_000_000, source)
	require.NoError(t, err)

	taken := 0
	for range samples {
		taken++
		if taken == 3 {
			break
		}
	}

	assert.Equal(t, 3, taken)
	assert.Equal(t, 3, source.calls, "no draws happen after the consumer stops")
}

func TestGenerateSamplesIsDeterministicForSeed(t *testing.T) {
	product := FromSlices3(lo.Range(30), lo.Range(30), lo.Range(30))

	draw := func() []lo.Tuple3[int, int, int] {
		samples, err := product.Samples(100, random.NewSeededSourceFromUint64(99))
		require.NoError(t, err)
		return slices.Collect(samples)
	}

	assert.Equal(t, draw(), draw())
}

func TestGenerateSamplesConcurrently(t *testing.T) {
	product := FromSlices2(lo.Range(100), lo.Range(100))

	var wg sync.WaitGroup
	results := make([][]lo.Tuple2[int, int], 8)
	for worker := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			samples, err := product.Samples(200, random.NewSeededSourceFromUint64(uint64(worker)))
			if err != nil {
				return
			}
			results[worker] = slices.Collect(samples)
		}()
	}
	wg.Wait()

	for _, entries := range results {
		assert.Len(t, lo.Uniq(entries), 200)
	}
}

func BenchmarkSampleIndices(b *testing.B) {
	size := big.NewInt(1_000_000)
	sampleSize := big.NewInt(1_000)
	for b.Loop() {
		indices, _ := SampleIndices(size, sampleSize, random.NewSeededSourceFromUint64(1))
		for range indices {
		}
	}
}
