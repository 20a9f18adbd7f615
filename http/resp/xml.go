package resp

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"reflect"

	"github.com/clbanning/mxj/v2"
)

// An XMLSerializer encodes v as an XML document whose root element is named root.
type XMLSerializer interface {
	Serialize(root string, v any) ([]byte, error)
}

// MXJSerializer implements XMLSerializer.
//
// Structs, and pointers to them, are encoded with encoding/xml under root.
// Everything else, notably maps keyed by strings and []any, is encoded with mxj.
type MXJSerializer struct {
	// OmitHeader drops the leading <?xml ...?> declaration.
	OmitHeader bool
}

// Serialize implements XMLSerializer.
func (s MXJSerializer) Serialize(root string, v any) ([]byte, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty root element name", ErrInvalid)
	}

	b := new(bytes.Buffer)
	if !s.OmitHeader {
		b.WriteString(xml.Header)
	}

	if isStruct(v) {
		enc := xml.NewEncoder(b)
		if err := enc.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: root}}); err != nil {
			return nil, err
		}

		if err := enc.Flush(); err != nil {
			return nil, err
		}

		return b.Bytes(), nil
	}

	doc, err := mxj.AnyXml(normalize(v), root)
	if err != nil {
		return nil, err
	}

	b.Write(doc)
	return b.Bytes(), nil
}

func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}

// normalize turns any map keyed by strings, i.e., gin.H or map[string]string,
// into the map[string]any mxj expects.
func normalize(v any) any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case mxj.Map:
		return map[string]any(m)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return v
	}

	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}

	return m
}
