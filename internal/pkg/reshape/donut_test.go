package reshape

import (
	"testing"

	"github.com/greenmarket/agridash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportions(t *testing.T) {
	shares := Proportions(&domain.RegionRate{
		CountryNm: "서울",
		RiseCount: 1,
		DropCount: 1,
		KeepCount: 1,
	})

	require.Len(t, shares, 3)
	assert.Equal(t, StatusRise, shares[0].Status)
	assert.Equal(t, StatusDrop, shares[1].Status)
	assert.Equal(t, StatusKeep, shares[2].Status)

	// counts survive untouched even though the rounded percents
	// do not reach exactly 100
	var counts, pcts float64
	for _, s := range shares {
		counts += float64(s.Count)
		pcts += s.Percent
	}
	assert.Equal(t, 3.0, counts)
	assert.InDelta(t, 100.0, pcts, 0.2)
	assert.Equal(t, 33.3, shares[0].Percent)
}

func TestProportions_ZeroTotal(t *testing.T) {
	shares := Proportions(&domain.RegionRate{})

	require.Len(t, shares, 3)
	for _, s := range shares {
		assert.Zero(t, s.Count)
		assert.Zero(t, s.Percent)
	}
}

func TestProportions_NilRate(t *testing.T) {
	assert.Nil(t, Proportions(nil))
}
