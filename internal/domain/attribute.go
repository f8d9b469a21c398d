package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type AttributeKind string

const (
	AttributeString AttributeKind = "string"
	AttributeNumber AttributeKind = "number"
	AttributeBool   AttributeKind = "bool"
	AttributeDate   AttributeKind = "date"
)

const attributeDateLayout = "2006-01-02"

// AttributeValue is one entry in a listing's open attribute bag. Exactly
// one of the value fields is meaningful, selected by Kind.
type AttributeValue struct {
	Kind   AttributeKind
	String string
	Number float64
	Bool   bool
	Date   time.Time
}

func StringAttribute(s string) AttributeValue {
	return AttributeValue{Kind: AttributeString, String: s}
}

func NumberAttribute(n float64) AttributeValue {
	return AttributeValue{Kind: AttributeNumber, Number: n}
}

func BoolAttribute(b bool) AttributeValue {
	return AttributeValue{Kind: AttributeBool, Bool: b}
}

func DateAttribute(t time.Time) AttributeValue {
	return AttributeValue{Kind: AttributeDate, Date: t}
}

type attributeValueJson struct {
	Kind  AttributeKind `json:"kind"`
	Value interface{}   `json:"value"`
}

func (v AttributeValue) MarshalJSON() ([]byte, error) {
	out := attributeValueJson{Kind: v.Kind}
	switch v.Kind {
	case AttributeString:
		out.Value = v.String
	case AttributeNumber:
		out.Value = v.Number
	case AttributeBool:
		out.Value = v.Bool
	case AttributeDate:
		out.Value = v.Date.Format(attributeDateLayout)
	default:
		return nil, fmt.Errorf("cannot marshal attribute value of kind %q", v.Kind)
	}
	return json.Marshal(out)
}

func (v *AttributeValue) UnmarshalJSON(b []byte) error {
	in := attributeValueJson{}
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	v.Kind = in.Kind
	switch in.Kind {
	case AttributeString:
		s, ok := in.Value.(string)
		if !ok {
			return fmt.Errorf("string attribute holds %T", in.Value)
		}
		v.String = s
	case AttributeNumber:
		n, ok := in.Value.(float64)
		if !ok {
			return fmt.Errorf("number attribute holds %T", in.Value)
		}
		v.Number = n
	case AttributeBool:
		b, ok := in.Value.(bool)
		if !ok {
			return fmt.Errorf("bool attribute holds %T", in.Value)
		}
		v.Bool = b
	case AttributeDate:
		s, ok := in.Value.(string)
		if !ok {
			return fmt.Errorf("date attribute holds %T", in.Value)
		}
		t, err := time.Parse(attributeDateLayout, s)
		if err != nil {
			return fmt.Errorf("failed to parse date attribute: %w", err)
		}
		v.Date = t
	default:
		return fmt.Errorf("cannot unmarshal attribute value of kind %q", in.Kind)
	}
	return nil
}

// AttributeMap is the typed key -> value bag attached to a listing. Rule
// conditions resolve their field paths against it.
type AttributeMap map[string]AttributeValue

func (m AttributeMap) Get(field string) (AttributeValue, bool) {
	v, ok := m[field]
	return v, ok
}
