package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ErrMalformed indicates catalog data that does not parse.
var ErrMalformed = errors.New("catalog: malformed data")

// Load reads a catalog file, choosing the parser from the extension
// (.json, .yaml, .yml).
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// ParseJSON decodes the JSON catalog shape
//
//	{"buildings":[{"id":"smelter","name":"Smelter","recipes":[
//	  {"output":{"item":"bar","rate":1},"inputs":[{"item":"ore","rate":1}]}]}]}
//
// Unknown keys are ignored; a missing "buildings" array yields an empty catalog.
func ParseJSON(data []byte) (*Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	cat := &Catalog{}
	buildings := gjson.GetBytes(data, "buildings")
	if buildings.Exists() && !buildings.IsArray() {
		return nil, fmt.Errorf("%w: buildings must be an array", ErrMalformed)
	}
	buildings.ForEach(func(_, b gjson.Result) bool {
		bld := Building{
			ID:   b.Get("id").String(),
			Name: b.Get("name").String(),
		}
		b.Get("recipes").ForEach(func(_, r gjson.Result) bool {
			rec := Recipe{Output: readItemRate(r.Get("output"))}
			r.Get("inputs").ForEach(func(_, in gjson.Result) bool {
				rec.Inputs = append(rec.Inputs, readItemRate(in))
				return true
			})
			bld.Recipes = append(bld.Recipes, rec)
			return true
		})
		cat.Buildings = append(cat.Buildings, bld)
		return true
	})

	return cat, nil
}

// ParseYAML decodes a catalog using the same field names as ParseJSON.
func ParseYAML(data []byte) (*Catalog, error) {
	cat := &Catalog{}
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return cat, nil
}

func readItemRate(v gjson.Result) ItemRate {
	return ItemRate{Item: v.Get("item").String(), Rate: v.Get("rate").Float()}
}
