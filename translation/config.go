package translation

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/osmitalia/edificato/log"
	"github.com/osmitalia/edificato/translation/config"
)

// FromFile returns a Translator with the built-in tables customized by a
// YAML mapping file.
func FromFile(filename string) (*Translator, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return New(b)
}

// New returns a Translator with the built-in tables customized by a YAML
// mapping document. Configured codes are merged over the built-in entries;
// unknown configuration keys are rejected.
func New(b []byte) (*Translator, error) {
	conf := config.Translation{}
	if err := yaml.UnmarshalStrict(b, &conf); err != nil {
		return nil, errors.Wrap(err, "parsing translation config")
	}

	t := NewDefault()
	t.underground.merge("underground", conf.Tables.Underground)
	t.buildingType.merge("type", conf.Tables.Type)
	t.use.merge("use", conf.Tables.Use)
	t.checkGeom.merge("check_geom", conf.Tables.CheckGeom)
	return t, nil
}

func (t *CodeTable) merge(name string, c *config.CodeTable) {
	if c == nil {
		return
	}
	if c.Default != nil {
		t.fallback = convertAssignments(c.Default)
	}
	for code, assignments := range c.Codes {
		if _, ok := t.codes[code]; ok {
			log.Printf("[warn] overriding built-in %s mapping for code %q", name, code)
		}
		t.codes[code] = convertAssignments(assignments)
	}
}

func convertAssignments(in config.TagAssignments) []TagAssignment {
	out := make([]TagAssignment, 0, len(in))
	for _, a := range in {
		out = append(out, TagAssignment{Key: a.Key, Value: a.Value})
	}
	return out
}
