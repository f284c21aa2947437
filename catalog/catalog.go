// Package catalog declares error kinds from YAML or TOML documents.
//
// A catalog lists kinds in order; an entry may extend an earlier one by tag.
//
//	kinds:
//	  - tag: StoreError
//	    template: "store $op failed"
//	  - tag: RowNotFoundError
//	    template: "row $id not found in $table"
//	    fields: [id, table]
//	    extends: StoreError
//
// The same document in TOML uses [[kinds]] tables. Reading is done from an
// io.Reader the caller supplies; the package opens no files itself.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	xgxkind "github.com/xgx-io/xgx-kind"
)

// Format is a catalog document format.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// DetectFormat picks a format from a file name's extension. Anything that is
// not .toml is treated as YAML.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

var (
	// Decode reports a document that could not be parsed.
	Decode = xgxkind.MustDefine(xgxkind.Spec{
		Tag:      "CatalogDecodeError",
		Template: "cannot decode $format catalog: $reason",
		Fields:   []string{"format", "reason"},
	})

	// Entry reports a parsed entry that does not define a valid kind. The
	// underlying registration error is the cause.
	Entry = xgxkind.MustDefine(xgxkind.Spec{
		Tag:      "CatalogEntryError",
		Template: "catalog entry $index ($tag) is invalid",
		Fields:   []string{"index", "tag"},
	})
)

type entry struct {
	Tag      string   `yaml:"tag" toml:"tag"`
	Template string   `yaml:"template" toml:"template"`
	Fields   []string `yaml:"fields" toml:"fields"`
	Extends  string   `yaml:"extends" toml:"extends"`
}

type document struct {
	Kinds []entry `yaml:"kinds" toml:"kinds"`
}

// Catalog is the set of kinds defined by one document.
type Catalog struct {
	kinds []*xgxkind.Kind
	union *xgxkind.Union
}

// Load decodes a document in format f and defines its kinds.
func Load(r io.Reader, f Format) (*Catalog, error) {
	var doc document
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, Decode.Wrap(err, xgxkind.Args{"format": f.String(), "reason": err.Error()})
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, Decode.Wrap(err, xgxkind.Args{"format": f.String(), "reason": err.Error()})
		}
	default:
		return nil, Decode.New(xgxkind.Args{"format": f.String(), "reason": "unsupported format"})
	}
	return build(doc)
}

// LoadYAML is Load with FormatYAML.
func LoadYAML(r io.Reader) (*Catalog, error) { return Load(r, FormatYAML) }

// LoadTOML is Load with FormatTOML.
func LoadTOML(r io.Reader) (*Catalog, error) { return Load(r, FormatTOML) }

func build(doc document) (*Catalog, error) {
	c := &Catalog{kinds: make([]*xgxkind.Kind, 0, len(doc.Kinds))}
	byTag := make(map[string]*xgxkind.Kind, len(doc.Kinds))
	for i, e := range doc.Kinds {
		spec := xgxkind.Spec{Tag: e.Tag, Template: e.Template, Fields: e.Fields}

		var (
			k   *xgxkind.Kind
			err error
		)
		if e.Extends != "" {
			parent, ok := byTag[e.Extends]
			if !ok {
				err = xgxkind.InvalidSpec.New(xgxkind.Args{"tag": e.Tag, "reason": "extends unknown kind " + e.Extends})
			} else {
				k, err = parent.Extend(spec)
			}
		} else {
			k, err = xgxkind.Define(spec)
		}
		if err == nil {
			if _, dup := byTag[e.Tag]; dup {
				err = xgxkind.InvalidSpec.New(xgxkind.Args{"tag": e.Tag, "reason": "tag appears twice in catalog"})
			}
		}
		if err != nil {
			return nil, Entry.Wrap(err, xgxkind.Args{"index": i, "tag": e.Tag})
		}
		byTag[e.Tag] = k
		c.kinds = append(c.kinds, k)
	}
	u, err := xgxkind.NewUnion(c.kinds...)
	if err != nil {
		return nil, err
	}
	c.union = u
	return c, nil
}

// Kind returns the kind declared with tag.
func (c *Catalog) Kind(tag string) (*xgxkind.Kind, bool) {
	return c.union.Lookup(tag)
}

// Kinds returns the kinds in document order.
func (c *Catalog) Kinds() []*xgxkind.Kind {
	out := make([]*xgxkind.Kind, len(c.kinds))
	copy(out, c.kinds)
	return out
}

// Union returns all catalog kinds as a Union, ready for xgxkind.Exhaustive.
func (c *Catalog) Union() *xgxkind.Union { return c.union }
