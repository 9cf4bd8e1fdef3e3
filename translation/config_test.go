package translation

import (
	"reflect"
	"testing"

	osm "github.com/omniscale/go-osm"
)

func TestNewCustomTables(t *testing.T) {
	tr, err := New([]byte(`
tables:
  type:
    codes:
      "26":
        building: bunker
        military: bunker
  use:
    codes:
      "0705":
        shop: mall
`))
	if err != nil {
		t.Fatal(err)
	}

	tags, err := tr.Translate(Record{
		FieldName: "unk",
		FieldType: "26",
		FieldUse:  "0705",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := osm.Tags{
		"name":     "",
		"building": "bunker",
		"military": "bunker",
		"shop":     "mall",
	}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("got %v, want %v", tags, want)
	}

	// built-in entries stay in place next to the custom ones
	tags, err = tr.Translate(Record{
		FieldName: "unk",
		FieldType: "04",
		FieldUse:  "0701",
	})
	if err != nil {
		t.Fatal(err)
	}
	if tags["building"] != "house" || tags["amenity"] != "bank" {
		t.Error("built-in tables lost after merge:", tags)
	}
}

func TestNewOverrideBuiltin(t *testing.T) {
	tr, err := New([]byte(`
tables:
  type:
    codes:
      "04":
        building: detached
`))
	if err != nil {
		t.Fatal(err)
	}
	tags, err := tr.Translate(Record{
		FieldName: "unk",
		FieldType: "04",
		FieldUse:  "9999",
	})
	if err != nil {
		t.Fatal(err)
	}
	if tags["building"] != "detached" {
		t.Error("expected building=detached, got", tags["building"])
	}
}

func TestNewDisableBuiltin(t *testing.T) {
	// an empty assignment list disables the entry without triggering
	// the fallback
	tr, err := New([]byte(`
tables:
  type:
    codes:
      "23": {}
`))
	if err != nil {
		t.Fatal(err)
	}
	tags, err := tr.Translate(Record{
		FieldName: "unk",
		FieldType: "23",
		FieldUse:  "9999",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tags["building"]; ok {
		t.Error("expected no building tag, got", tags)
	}
	if _, ok := tags["layer"]; ok {
		t.Error("expected no layer tag, got", tags)
	}
}

func TestNewCustomDefault(t *testing.T) {
	tr, err := New([]byte(`
tables:
  type:
    default:
      building: shed
`))
	if err != nil {
		t.Fatal(err)
	}
	tags, err := tr.Translate(Record{
		FieldName: "unk",
		FieldType: "99",
		FieldUse:  "9999",
	})
	if err != nil {
		t.Fatal(err)
	}
	if tags["building"] != "shed" {
		t.Error("expected building=shed, got", tags["building"])
	}

	// known codes are not affected by the default
	tags, err = tr.Translate(Record{
		FieldName: "unk",
		FieldType: "11",
		FieldUse:  "9999",
	})
	if err != nil {
		t.Fatal(err)
	}
	if tags["building"] != "church" {
		t.Error("expected building=church, got", tags["building"])
	}
}

func TestNewInvalidYAML(t *testing.T) {
	_, err := New([]byte("tables: [broken"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNewUnknownTable(t *testing.T) {
	_, err := New([]byte(`
tables:
  typology:
    codes:
      "04":
        building: house
`))
	if err == nil {
		t.Fatal("expected error for unknown table name")
	}
}

func TestFromFile(t *testing.T) {
	tr, err := FromFile("test_translation.yml")
	if err != nil {
		t.Fatal(err)
	}
	tags, err := tr.Translate(Record{
		FieldName: "unk",
		FieldType: "26",
		FieldUse:  "9999",
	})
	if err != nil {
		t.Fatal(err)
	}
	if tags["building"] != "bunker" {
		t.Error("expected building=bunker, got", tags["building"])
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile("no_such_translation.yml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
