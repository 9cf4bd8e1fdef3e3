/*
Package translation converts attribute records of the Italian DBSN building
dataset (layer edifc) into OSM tags.

The core logic is accessible with the Translator struct. A Translator holds
immutable code tables that map the coded DBSN attribute values to tag
assignments. The built-in tables implement the tagging rules agreed for the
DBSN import; custom tables can be loaded from a YAML mapping file to extend or
override them.

Translate runs six stages in a fixed order against a shared tag map: name,
underground flag, building typology, use destination, geometry check flag and
building status. The order is part of the contract: the use stage overrides
the typology stage for codes that declare a more specific building value, and
the status stage overrides both.

The conversion host (ogr2osm or equivalent) owns geometry handling, file I/O
and the command line. It feeds one attribute record per geometry into
Translate and attaches the returned tags to the output element, suppressing
empty-valued tags during emission.
*/
package translation
