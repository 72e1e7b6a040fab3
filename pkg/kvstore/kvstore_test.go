package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `rating:7:anon\_123`, EscapeLike("rating:7:anon_123"))
	assert.Equal(t, `a\%b\_c\\d`, EscapeLike(`a%b_c\d`))
	assert.Equal(t, "movie:", EscapeLike("movie:"))
}
