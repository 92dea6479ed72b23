package types

import "fmt"

// DataType is the value type a property holds.
type DataType string

const (
	DataTypeWikibaseItem     DataType = "wikibase-item"
	DataTypeWikibaseProperty DataType = "wikibase-property"
	DataTypeExternalID       DataType = "external-id"
	DataTypeURL              DataType = "url"
	DataTypeCommonsMedia     DataType = "commonsMedia"
	DataTypeMonolingualText  DataType = "monolingualtext"
	DataTypeQuantity         DataType = "quantity"
	DataTypeString           DataType = "string"
	DataTypeTime             DataType = "time"
	DataTypeGlobeCoordinate  DataType = "globe-coordinate"
	DataTypeLexeme           DataType = "wikibase-lexeme"
	DataTypeForm             DataType = "wikibase-form"
	DataTypeSense            DataType = "wikibase-sense"
	DataTypeGeoShape         DataType = "geo-shape"
	DataTypeTabularData      DataType = "tabular-data"
	DataTypeMath             DataType = "math"
	DataTypeMusicalNotation  DataType = "musical-notation"
	DataTypeEntitySchema     DataType = "entity-schema"
)

var knownDataTypes = map[DataType]struct{}{
	DataTypeWikibaseItem: {}, DataTypeWikibaseProperty: {}, DataTypeExternalID: {},
	DataTypeURL: {}, DataTypeCommonsMedia: {}, DataTypeMonolingualText: {},
	DataTypeQuantity: {}, DataTypeString: {}, DataTypeTime: {},
	DataTypeGlobeCoordinate: {}, DataTypeLexeme: {}, DataTypeForm: {},
	DataTypeSense: {}, DataTypeGeoShape: {}, DataTypeTabularData: {},
	DataTypeMath: {}, DataTypeMusicalNotation: {}, DataTypeEntitySchema: {},
}

func ParseDataType(s string) (DataType, error) {
	dt := DataType(s)
	if _, ok := knownDataTypes[dt]; !ok {
		return "", fmt.Errorf("unknown data type \"%s\"", s)
	}
	return dt, nil
}
