package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	get "github.com/hashicorp/go-getter"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaJSON is the contract for preset pack files. Bands are required and
// additional fields are rejected so a stale pack fails loudly.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "bands"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "water_level": {"type": "number", "minimum": 0, "maximum": 1},
    "bands": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "up_to", "color"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "up_to": {"type": "number", "minimum": 0, "maximum": 1},
          "color": {"type": "string", "pattern": "^#[0-9a-fA-F]{6}$"}
        }
      }
    }
  }
}`

var packSchema = func() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("preset.schema.json", strings.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile("preset.schema.json")
}()

// Validate checks a raw preset file against the pack schema.
func Validate(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("parse preset: %w", err)
	}
	if err := packSchema.Validate(v); err != nil {
		return fmt.Errorf("validate preset: %w", err)
	}
	return nil
}

// FetchPack downloads a preset pack from src (any go-getter source: git,
// http, s3, local path) into dst and registers every preset in it. It
// returns the names registered, sorted by file order.
func FetchPack(ctx context.Context, dst, src string) ([]string, error) {
	client := &get.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Mode: get.ClientModeDir,
	}
	if err := client.Get(); err != nil {
		return nil, fmt.Errorf("fetch preset pack %s: %w", src, err)
	}
	return LoadPack(dst)
}

// LoadPack validates and registers every *.json preset in dir. One bad file
// fails the whole pack; nothing from it is registered.
func LoadPack(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan preset pack: %w", err)
	}

	loaded := make([]*Preset, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read preset %s: %w", path, err)
		}
		if err := Validate(data); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		var p Preset
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse preset %s: %w", path, err)
		}
		loaded = append(loaded, &p)
	}

	names := make([]string, 0, len(loaded))
	for _, p := range loaded {
		if err := Register(p); err != nil {
			return nil, err
		}
		names = append(names, p.Name)
	}
	return names, nil
}
