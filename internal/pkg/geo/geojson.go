package geo

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
)

// RegionKeyProperty names the GeoJSON property used as the join key
// between boundary polygons and query results.
const RegionKeyProperty = "CITY_AB_NM"

// Feature is one boundary polygon. Geometry is carried through untouched;
// only the properties are inspected.
type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   json.RawMessage        `json:"geometry"`
}

// RegionKey returns the whitespace-trimmed region name of the feature.
func (f *Feature) RegionKey() string {
	v, ok := f.Properties[RegionKeyProperty]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// FeatureCollection is the boundary polygon document.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// Loader reads the boundary document once per process and hands out the
// same immutable copy afterwards.
type Loader struct {
	path string
	once sync.Once
	fc   *FeatureCollection
	err  error
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Load() (*FeatureCollection, error) {
	l.once.Do(func() {
		data, err := os.ReadFile(l.path)
		if err != nil {
			l.err = fmt.Errorf("read boundary document: %w", err)
			return
		}

		fc := &FeatureCollection{}
		if err := sonic.Unmarshal(data, fc); err != nil {
			l.err = fmt.Errorf("decode boundary document: %w", err)
			return
		}
		l.fc = fc
	})

	return l.fc, l.err
}
