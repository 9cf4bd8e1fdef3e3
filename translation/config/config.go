// Package config holds the YAML schema for custom translation tables.
package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Translation struct {
	Tables Tables `yaml:"tables"`
}

// Tables customizes the code tables of a Translator. Only the table-driven
// stages are configurable, the name and status rules are fixed.
type Tables struct {
	Underground *CodeTable `yaml:"underground"`
	Type        *CodeTable `yaml:"type"`
	Use         *CodeTable `yaml:"use"`
	CheckGeom   *CodeTable `yaml:"check_geom"`
}

type CodeTable struct {
	// Default replaces the table's fallback assignments when set.
	Default TagAssignments `yaml:"default"`
	// Codes are merged over the built-in entries; an empty assignment list
	// disables the built-in entry for that code.
	Codes map[string]TagAssignments `yaml:"codes"`
}

type TagAssignment struct {
	Key   string
	Value string
}

type TagAssignments []TagAssignment

// UnmarshalYAML keeps the document order of the assignments. Later
// assignments to the same key win, like in the built-in tables.
func (ta *TagAssignments) UnmarshalYAML(unmarshal func(interface{}) error) error {
	slice := yaml.MapSlice{}
	if err := unmarshal(&slice); err != nil {
		return err
	}
	for _, item := range slice {
		k, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("tag key '%v' not a string", item.Key)
		}
		var v string
		switch value := item.Value.(type) {
		case string:
			v = value
		case int:
			v = strconv.Itoa(value)
		case bool:
			// YAML parses unquoted yes/no as booleans
			if value {
				v = "yes"
			} else {
				v = "no"
			}
		case nil:
			v = ""
		default:
			return fmt.Errorf("tag value '%v' for key '%s' not a string", item.Value, k)
		}
		*ta = append(*ta, TagAssignment{Key: k, Value: v})
	}
	return nil
}
