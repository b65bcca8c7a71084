package reshape

import (
	"encoding/json"
	"strings"

	"github.com/greenmarket/agridash/internal/pkg/geo"
)

// RegionValue is one region's datum to paint onto the map.
type RegionValue struct {
	Region string
	Price  float64
	YoYPct *float64
	Rank   *int64
	Unit   string
}

// ChoroplethFeature is one polygon of the rendered map. Polygons without
// matching price data still appear, flagged for neutral styling.
type ChoroplethFeature struct {
	Region   string          `json:"region"`
	HasData  bool            `json:"has_data"`
	Price    *float64        `json:"price,omitempty"`
	YoYPct   *float64        `json:"yoy_pct,omitempty"`
	Rank     *int64          `json:"rank,omitempty"`
	Unit     string          `json:"unit,omitempty"`
	Geometry json.RawMessage `json:"geometry"`
}

// ChoroplethMap is the full map payload: one feature per boundary polygon
// plus the value range for the color legend.
type ChoroplethMap struct {
	Features []ChoroplethFeature `json:"features"`
	MinPrice *float64            `json:"min_price,omitempty"`
	MaxPrice *float64            `json:"max_price,omitempty"`
}

// BuildChoropleth joins region values onto the boundary document. Every
// polygon appears in the output exactly once, in document order; a
// polygon without data is neutral, never an error. Region keys are
// whitespace-trimmed on both sides before matching; the first value per
// region wins.
func BuildChoropleth(fc *geo.FeatureCollection, values []RegionValue) *ChoroplethMap {
	byRegion := make(map[string]*RegionValue, len(values))
	for i := range values {
		key := strings.TrimSpace(values[i].Region)
		if key == "" {
			continue
		}
		if _, ok := byRegion[key]; !ok {
			byRegion[key] = &values[i]
		}
	}

	out := &ChoroplethMap{Features: make([]ChoroplethFeature, 0, len(fc.Features))}
	for _, feat := range fc.Features {
		region := feat.RegionKey()
		cf := ChoroplethFeature{
			Region:   region,
			Geometry: feat.Geometry,
		}

		if val, ok := byRegion[region]; ok {
			price := val.Price
			cf.HasData = true
			cf.Price = &price
			cf.YoYPct = val.YoYPct
			cf.Rank = val.Rank
			cf.Unit = val.Unit

			if out.MinPrice == nil || price < *out.MinPrice {
				out.MinPrice = &price
			}
			if out.MaxPrice == nil || price > *out.MaxPrice {
				out.MaxPrice = &price
			}
		}

		out.Features = append(out.Features, cf)
	}

	return out
}
