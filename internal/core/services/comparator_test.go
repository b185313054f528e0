package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/comparedocs/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/comparedocs/internal/core/domain"
)

// catDogScore is the cosine between the reference counts [2 1 1 1 1]
// and TF-IDF weights ln(1/2)*[2 0 1 1 0].
var catDogScore = -6 / math.Sqrt(48)

func newLoader(texts map[string]string) *memory.DocumentLoader {
	loader := memory.NewDocumentLoader()
	for path, text := range texts {
		loader.Put(path, text)
	}
	return loader
}

func newTestComparator(t *testing.T, loader *memory.DocumentLoader, opts ...ComparatorOption) *Comparator {
	t.Helper()
	c, err := NewComparator(context.Background(), loader, "ref.txt", opts...)
	require.NoError(t, err)
	return c
}

func TestNewComparator(t *testing.T) {
	loader := newLoader(map[string]string{"ref.txt": "the cat sat on the mat"})

	c := newTestComparator(t, loader)

	require.NotNil(t, c.Reference())
	assert.Equal(t, "ref", c.Reference().Name)
	assert.Equal(t, domain.Vector{2, 1, 1, 1, 1}, c.refVector)
	assert.Empty(t, c.Documents())
	assert.Equal(t, 1, c.concurrency)
}

func TestNewComparator_Errors(t *testing.T) {
	t.Run("nil loader", func(t *testing.T) {
		_, err := NewComparator(context.Background(), nil, "ref.txt")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing reference", func(t *testing.T) {
		_, err := NewComparator(context.Background(), newLoader(nil), "ref.txt")
		assert.ErrorIs(t, err, domain.ErrInvalidPath)
		assert.Contains(t, err.Error(), "load reference")
	})
}

func TestWithConcurrency(t *testing.T) {
	loader := newLoader(map[string]string{"ref.txt": "a"})

	tests := []struct {
		n        int
		expected int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{8, 8},
	}

	for _, tt := range tests {
		c := newTestComparator(t, loader, WithConcurrency(tt.n))
		assert.Equal(t, tt.expected, c.concurrency, "WithConcurrency(%d)", tt.n)
	}
}

func TestComparator_AddDocument(t *testing.T) {
	loader := newLoader(map[string]string{
		"ref.txt": "the cat sat on the mat",
		"a.txt":   "the dog sat on the rug",
	})
	c := newTestComparator(t, loader)

	require.NoError(t, c.AddDocument(context.Background(), "a.txt"))

	err := c.AddDocument(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, domain.ErrInvalidPath)
	assert.Contains(t, err.Error(), "add document")

	docs := c.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0].Name)
}

func TestComparator_DocumentRemovedAfterConstruction(t *testing.T) {
	loader := newLoader(map[string]string{
		"ref.txt": "the cat sat on the mat",
		"a.txt":   "the dog sat on the rug",
	})
	c := newTestComparator(t, loader)

	loader.Remove("a.txt")
	loader.Remove("ref.txt")

	err := c.AddDocument(context.Background(), "a.txt")
	require.ErrorIs(t, err, domain.ErrInvalidPath)
	assert.Empty(t, c.Documents())

	// The reference was loaded once at construction and is not reloaded.
	result, err := c.Compare(context.Background(), domain.NewDocument("b.txt", "the dog sat on the rug"))
	require.NoError(t, err)
	assert.InDelta(t, catDogScore, result["b"], 1e-9)
	assert.Equal(t, 1, loader.Loads("ref.txt"))
}

func TestComparator_Documents_ReturnsCopy(t *testing.T) {
	loader := newLoader(map[string]string{"ref.txt": "x", "a.txt": "x"})
	c := newTestComparator(t, loader)
	require.NoError(t, c.AddDocument(context.Background(), "a.txt"))

	docs := c.Documents()
	docs[0] = nil

	assert.NotNil(t, c.Documents()[0])
}

func TestComparator_Compare_CatAndDog(t *testing.T) {
	loader := newLoader(map[string]string{
		"ref.txt": "the cat sat on the mat",
		"dog.txt": "the dog sat on the rug",
	})
	c := newTestComparator(t, loader)
	require.NoError(t, c.AddDocument(context.Background(), "dog.txt"))

	result, err := c.Compare(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.InDelta(t, catDogScore, result["dog"], 1e-12)
}

func TestComparator_Compare_IdenticalDocumentScoresMinusOne(t *testing.T) {
	loader := newLoader(map[string]string{
		"ref.txt":  "alpha beta gamma",
		"copy.txt": "Alpha, beta; GAMMA!",
	})
	c := newTestComparator(t, loader)
	require.NoError(t, c.AddDocument(context.Background(), "copy.txt"))

	result, err := c.Compare(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, -1.0, result["copy"], 1e-12)
}

func TestComparator_Compare_NoSharedTerms(t *testing.T) {
	loader := newLoader(map[string]string{
		"ref.txt":   "alpha beta",
		"other.txt": "gamma delta",
	})
	c := newTestComparator(t, loader)
	require.NoError(t, c.AddDocument(context.Background(), "other.txt"))

	result, err := c.Compare(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrZeroMagnitudeVector)
	assert.Contains(t, err.Error(), `"other"`)
}

func TestComparator_Compare_EmptyReference(t *testing.T) {
	loader := newLoader(map[string]string{
		"ref.txt": "!!! ...",
		"a.txt":   "alpha",
	})
	c := newTestComparator(t, loader)
	require.NoError(t, c.AddDocument(context.Background(), "a.txt"))

	_, err := c.Compare(context.Background())
	assert.ErrorIs(t, err, domain.ErrZeroMagnitudeVector)
}

func TestComparator_Compare_EmptyComparisonSet(t *testing.T) {
	c := newTestComparator(t, newLoader(map[string]string{"ref.txt": "alpha"}))

	result, err := c.Compare(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrEmptyComparisonSet)
}

func TestComparator_Compare_NilExtraDocument(t *testing.T) {
	c := newTestComparator(t, newLoader(map[string]string{"ref.txt": "alpha"}))

	_, err := c.Compare(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComparator_Compare_ExtraDocumentsAreNotHeld(t *testing.T) {
	loader := newLoader(map[string]string{
		"ref.txt": "the cat sat on the mat",
		"a.txt":   "the dog sat on the rug",
	})
	c := newTestComparator(t, loader)
	require.NoError(t, c.AddDocument(context.Background(), "a.txt"))

	extra := domain.NewDocument("inline.txt", "the cat sat on the mat")
	result, err := c.Compare(context.Background(), extra)

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.InDelta(t, -1.0, result["inline"], 1e-12)
	assert.InDelta(t, catDogScore, result["a"], 1e-12)
	assert.Len(t, c.Documents(), 1)
}

func TestComparator_Compare_DuplicateNamesLastWins(t *testing.T) {
	loader := newLoader(map[string]string{
		"ref.txt":       "the cat sat on the mat",
		"one/notes.txt": "the dog sat on the rug",
		"two/notes.md":  "the cat sat on the mat",
	})
	c := newTestComparator(t, loader, WithConcurrency(4))
	require.NoError(t, c.AddDocument(context.Background(), "one/notes.txt"))
	require.NoError(t, c.AddDocument(context.Background(), "two/notes.md"))

	result, err := c.Compare(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.InDelta(t, -1.0, result["notes"], 1e-12)
}

func TestComparator_Compare_IndependentPerCandidate(t *testing.T) {
	texts := map[string]string{
		"ref.txt": "the cat sat on the mat",
		"a.txt":   "the dog sat on the rug",
		"b.txt":   "cat",
		"c.txt":   "mat mat the",
	}

	single := make(map[string]float64)
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		c := newTestComparator(t, newLoader(texts))
		require.NoError(t, c.AddDocument(context.Background(), name))
		result, err := c.Compare(context.Background())
		require.NoError(t, err)
		for k, v := range result {
			single[k] = v
		}
	}

	for _, concurrency := range []int{1, 3} {
		c := newTestComparator(t, newLoader(texts), WithConcurrency(concurrency))
		for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
			require.NoError(t, c.AddDocument(context.Background(), name))
		}

		result, err := c.Compare(context.Background())

		require.NoError(t, err)
		assert.Len(t, result, 3)
		for name, score := range single {
			assert.InDelta(t, score, result[name], 1e-12, "concurrency %d, %s", concurrency, name)
		}
	}
}

func TestComparator_Compare_RepeatableAndDoesNotMutate(t *testing.T) {
	loader := newLoader(map[string]string{
		"ref.txt": "the cat sat on the mat",
		"a.txt":   "the dog sat on the rug",
	})
	c := newTestComparator(t, loader)
	require.NoError(t, c.AddDocument(context.Background(), "a.txt"))
	before := c.Reference().CleanedContent()

	first, err := c.Compare(context.Background())
	require.NoError(t, err)
	second, err := c.Compare(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, c.Reference().CleanedContent())
	assert.Equal(t, 1, loader.Loads("a.txt"))
}

func TestComparator_Compare_CancelledContext(t *testing.T) {
	loader := newLoader(map[string]string{"ref.txt": "alpha", "a.txt": "alpha"})
	c := newTestComparator(t, loader)
	require.NoError(t, c.AddDocument(context.Background(), "a.txt"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Compare(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}
