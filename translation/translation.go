package translation

import (
	"fmt"
	"strings"

	osm "github.com/omniscale/go-osm"
)

// Field names of the DBSN edifc layer, as supplied by the conversion host.
const (
	FieldName        = "edifc_nome"
	FieldUnderground = "edifc_sot"
	FieldType        = "edifc_ty"
	FieldUse         = "edifc_uso"
	FieldCheckGeom   = "check_geom"
	FieldStatus      = "edifc_stat"
)

// unknownName is the sentinel the DBSN uses for buildings without a name.
// Compared case-insensitively, the source data is not consistent about it.
const unknownName = "unk"

const (
	statusConstruction = "01"
	statusRuin         = "02"
)

// Attrs provides access to the attribute fields of a single building record.
// A nil Attrs signals that the host found no attributes for the geometry.
type Attrs interface {
	Field(name string) (string, bool)
}

// Record is a map-backed Attrs for hosts that hand over attributes as plain
// key/value pairs.
type Record map[string]string

func (r Record) Field(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// MissingFieldError is returned when a record lacks a field the translation
// unconditionally reads. Records with missing required fields point at an
// extraction bug upstream and are reported instead of silently defaulted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required attribute %q", e.Field)
}

// Translator maps DBSN building attributes to OSM tags. Construct with
// NewDefault, New or FromFile. Safe for concurrent use, the code tables are
// not modified after construction.
type Translator struct {
	underground  CodeTable
	buildingType CodeTable
	use          CodeTable
	checkGeom    CodeTable
}

// NewDefault returns a Translator with the built-in DBSN code tables.
func NewDefault() *Translator {
	return &Translator{
		underground:  undergroundTable(),
		buildingType: buildingTypeTable(),
		use:          useTable(),
		checkGeom:    checkGeomTable(),
	}
}

// Translate converts one attribute record into OSM tags.
//
// A nil record returns nil tags and no error: the host skips the geometry.
// The returned tags may contain empty values (name=""); suppressing those
// during emission is the host's job.
func (t *Translator) Translate(attrs Attrs) (osm.Tags, error) {
	if attrs == nil {
		return nil, nil
	}

	tags := make(osm.Tags)

	if err := translateName(attrs, tags); err != nil {
		return nil, err
	}
	if code, ok := attrs.Field(FieldUnderground); ok {
		t.underground.apply(code, tags)
	}
	code, ok := attrs.Field(FieldType)
	if !ok {
		return nil, &MissingFieldError{FieldType}
	}
	t.buildingType.apply(code, tags)

	code, ok = attrs.Field(FieldUse)
	if !ok {
		return nil, &MissingFieldError{FieldUse}
	}
	t.use.apply(code, tags)

	if code, ok := attrs.Field(FieldCheckGeom); ok {
		t.checkGeom.apply(code, tags)
	}
	overlayStatus(attrs, tags)

	return tags, nil
}

func translateName(attrs Attrs, tags osm.Tags) error {
	name, ok := attrs.Field(FieldName)
	if !ok {
		return &MissingFieldError{FieldName}
	}
	if strings.ToLower(name) == unknownName {
		tags["name"] = ""
	} else {
		tags["name"] = name
	}
	return nil
}

// overlayStatus runs last and has the highest precedence over the building
// tag. A building under construction keeps its more specific typology under
// the construction key.
func overlayStatus(attrs Attrs, tags osm.Tags) {
	code, ok := attrs.Field(FieldStatus)
	if !ok {
		return
	}
	switch code {
	case statusConstruction:
		if b := tags["building"]; b != "yes" {
			tags["construction"] = b
		}
		tags["building"] = "construction"
		tags["fixme:building"] = "resurvey construction type and status"
	case statusRuin:
		tags["ruins"] = "yes"
		tags["fixme:building"] = "resurvey status"
	}
	// Status 91 (unknown) is deliberately not handled. About a quarter of the
	// source geometries carry it and a sample survey showed almost all of
	// them are real, existing buildings.
}
