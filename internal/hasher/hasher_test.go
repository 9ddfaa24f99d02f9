package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	// xxh64("") is a well known constant.
	assert.Equal(t, "ef46db3751d8e999", ContentHash(nil, 0))
	assert.Equal(t, "ef46db37", ContentHash([]byte{}, 8))
	assert.Len(t, ContentHash([]byte("card_2_spades"), Len), Len)
}

func TestContentHashReaderMatches(t *testing.T) {
	data := strings.Repeat("queen of hearts ", 1000)
	got, err := ContentHashReader(strings.NewReader(data), Len)
	require.NoError(t, err)
	assert.Equal(t, ContentHash([]byte(data), Len), got)
}
