package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("shoes")
	require.NoError(t, err)
	assert.Equal(t, CategoryShoes, c)

	c, err = ParseCategory("ALL")
	require.NoError(t, err)
	assert.Equal(t, CategoryAll, c)

	_, err = ParseCategory("boats")
	assert.Error(t, err)
}

func TestJoinAndSplitValues(t *testing.T) {
	assert.Equal(t, "M;FM", JoinValues([]string{"M", "FM"}))
	assert.Equal(t, "", JoinValues(nil))
	assert.Equal(t, []string{"Nike", "Adidas"}, SplitValues("Nike; ;Adidas;"))
	assert.Nil(t, SplitValues(""))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, SortPriceDesc.Valid())
	assert.False(t, SortOrder("random").Valid())
	assert.True(t, GenderUnisex.Valid())
	assert.False(t, Gender("X").Valid())
}

func TestEpochMillis(t *testing.T) {
	assert.Nil(t, ToEpochMillis(nil))
	assert.Nil(t, FromEpochMillis(nil))

	ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	ms := ToEpochMillis(&ts)
	require.NotNil(t, ms)
	assert.Equal(t, ts.UnixMilli(), *ms)
	assert.True(t, ts.Equal(*FromEpochMillis(ms)))
}
