package catalog

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/seantiz/roster/internal/model"
)

// yamlCatalog is the on-disk layout of a YAML catalog file. Activities are a
// list so that file order becomes catalog order.
type yamlCatalog struct {
	Activities []yamlActivity `yaml:"activities"`
}

type yamlActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// LoadYAML decodes a catalog from r. Unknown fields are rejected.
func LoadYAML(r io.Reader) (model.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlCatalog
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml catalog: %w", err)
	}

	cat := make(model.Catalog, 0, len(doc.Activities))
	for _, a := range doc.Activities {
		act, err := model.NewActivity(a.Name, a.Description, a.Schedule, a.MaxParticipants, a.Participants...)
		if err != nil {
			return nil, err
		}
		cat = append(cat, act)
	}
	return cat, nil
}

// WriteYAML encodes cat to w in the layout LoadYAML reads.
func WriteYAML(w io.Writer, cat model.Catalog) error {
	doc := yamlCatalog{Activities: make([]yamlActivity, 0, len(cat))}
	for _, a := range cat {
		doc.Activities = append(doc.Activities, yamlActivity{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml catalog: %w", err)
	}
	return enc.Close()
}
