package calldata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digits(words []string) int {
	return len(join(words))
}

func TestPadZeroWord(t *testing.T) {
	t.Run("shifts the tail right by one selector", func(t *testing.T) {
		words := []string{
			padWord("20"),
			EmptyWord,
			"0000004401020304" + strings.Repeat("a", 48),
			strings.Repeat("b", 56) + "cccccccc",
		}

		got, err := PadZeroWord(words, 1)
		require.NoError(t, err)

		require.Len(t, got, 4)
		assert.Equal(t, words[0], got[0])
		assert.Equal(t, EmptyWord, got[1])
		assert.Equal(t, EmptySelector+words[2][:56], got[2])
		assert.Equal(t, words[2][56:]+words[3][:56], got[3])
		assert.Equal(t, digits(words), digits(got))
	})

	t.Run("keeps a short last word short", func(t *testing.T) {
		words := []string{EmptyWord, padWord("1"), "abcdef1234"}

		got, err := PadZeroWord(words, 0)
		require.NoError(t, err)

		assert.Equal(t, digits(words), digits(got))
		assert.Len(t, got[len(got)-1], len(words[len(words)-1]))
	})

	t.Run("does not modify its input", func(t *testing.T) {
		words := []string{EmptyWord, padWord("1")}
		before := append([]string(nil), words...)

		_, err := PadZeroWord(words, 0)
		require.NoError(t, err)
		assert.Equal(t, before, words)
	})

	t.Run("rejects bad indices", func(t *testing.T) {
		words := []string{EmptyWord}

		for _, i := range []int{-1, 1} {
			_, err := PadZeroWord(words, i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)

			var idxErr *IndexError
			assert.ErrorAs(t, err, &idxErr)
			assert.Equal(t, i, idxErr.Index)
		}
	})

	t.Run("rejects a word too close to the end", func(t *testing.T) {
		_, err := PadZeroWord([]string{"0000"}, 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

func TestSpliceSelector(t *testing.T) {
	t.Run("removes the selector and appends a delimiter", func(t *testing.T) {
		words := []string{
			padWord("44"),
			"a9059cbb" + strings.Repeat("1", 56),
			"11111111" + strings.Repeat("2", 56),
			"22222222" + strings.Repeat("0", 56),
		}

		got, err := SpliceSelector(words, 1)
		require.NoError(t, err)

		require.Len(t, got, 4)
		assert.Equal(t, words[0], got[0])
		assert.Equal(t, strings.Repeat("1", 64), got[1])
		assert.Equal(t, strings.Repeat("2", 64), got[2])
		assert.Equal(t, strings.Repeat("0", 64), got[3])
		assert.Equal(t, digits(words), digits(got))
	})

	t.Run("rejects bad indices", func(t *testing.T) {
		words := []string{EmptyWord, "abc"}

		for _, i := range []int{-1, 2} {
			_, err := SpliceSelector(words, i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		}

		_, err := SpliceSelector(words, 1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "word shorter than a selector")
	})
}

func TestEditsPreserveLength(t *testing.T) {
	sequences := [][]string{
		{EmptyWord, EmptyWord, EmptyWord},
		{padWord("20"), EmptyWord, "88316456" + strings.Repeat("0", 56), "abcd"},
		Chunk(strings.Repeat("0123456789abcdef", 13), WordWidth),
	}

	for _, words := range sequences {
		for i := range words {
			if padded, err := PadZeroWord(words, i); err == nil {
				assert.Equal(t, digits(words), digits(padded))
			}
			if spliced, err := SpliceSelector(words, i); err == nil {
				assert.Equal(t, digits(words), digits(spliced))
			}
		}
	}
}
