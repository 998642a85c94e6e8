package js

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"math/big"
	"reflect"
)

var nodeType = reflect.TypeOf(Node{})

// omitted when empty, the remaining fields are always written and nil nodes are written as null
var omitEmpty = map[string]bool{
	"Directive": true,
	"Regex":     true,
	"BigInt":    true,
}

// ESTreeEncoder writes syntax trees as ESTree JSON objects, the node type is written first followed by the span and the node fields in declaration order.
type ESTreeEncoder struct {
	w      io.Writer
	indent string
}

// NewESTreeEncoder returns an encoder writing to w.
func NewESTreeEncoder(w io.Writer) *ESTreeEncoder {
	return &ESTreeEncoder{w: w}
}

// SetIndent sets the indentation of nested values, the empty string writes compact JSON.
func (e *ESTreeEncoder) SetIndent(indent string) {
	e.indent = indent
}

// Encode writes n followed by a newline.
func (e *ESTreeEncoder) Encode(n INode) error {
	b, err := MarshalESTree(n)
	if err != nil {
		return err
	}
	if e.indent != "" {
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, b, "", e.indent); err != nil {
			return err
		}
		b = buf.Bytes()
	}
	_, err = e.w.Write(append(b, '\n'))
	return err
}

// MarshalESTree returns the compact ESTree JSON of n. Numbers that JSON cannot represent, BigInt values and regular expression values are written as null.
func MarshalESTree(n INode) ([]byte, error) {
	w := &estreeWriter{}
	w.value(reflect.ValueOf(n))
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}

type estreeWriter struct {
	buf bytes.Buffer
	err error
}

func (w *estreeWriter) json(v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		if w.err == nil {
			w.err = err
		}
		w.buf.WriteString("null")
		return
	}
	w.buf.Write(b)
}

func (w *estreeWriter) key(name string) {
	w.buf.WriteByte(',')
	w.json(name)
	w.buf.WriteByte(':')
}

func (w *estreeWriter) value(v reflect.Value) {
	switch v.Kind() {
	case reflect.Invalid:
		w.buf.WriteString("null")
	case reflect.Interface:
		if v.IsNil() {
			w.buf.WriteString("null")
		} else {
			w.value(v.Elem())
		}
	case reflect.Ptr:
		if v.IsNil() {
			w.buf.WriteString("null")
		} else if n, ok := v.Interface().(INode); ok {
			w.node(n)
		} else {
			w.json(v.Interface())
		}
	case reflect.Slice:
		w.buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i != 0 {
				w.buf.WriteByte(',')
			}
			w.value(v.Index(i))
		}
		w.buf.WriteByte(']')
	default:
		w.json(v.Interface())
	}
}

func (w *estreeWriter) node(n INode) {
	v := reflect.ValueOf(n).Elem()
	base := n.Base()
	w.buf.WriteString(`{"type":`)
	w.json(v.Type().Name())
	w.key("start")
	w.json(base.Start)
	w.key("end")
	w.json(base.End)
	if base.Loc != nil {
		w.key("loc")
		w.json(base.Loc)
	}
	if base.Range != nil {
		w.key("range")
		w.json(base.Range)
	}
	if base.SourceFile != "" {
		w.key("sourceFile")
		w.json(base.SourceFile)
	}
	w.fields(v)
	w.buf.WriteByte('}')
}

func (w *estreeWriter) fields(v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if f.Type != nodeType {
				w.fields(v.Field(i))
			}
			continue
		} else if !f.IsExported() {
			continue
		}

		fv := v.Field(i)
		if omitEmpty[f.Name] && fv.IsZero() {
			continue
		}
		w.key(fieldName(f.Name))
		if f.Name == "Value" && t == reflect.TypeOf(Literal{}) {
			w.json(literalValue(fv.Interface()))
		} else {
			w.value(fv)
		}
	}
}

func fieldName(name string) string {
	switch name {
	case "ID":
		return "id"
	case "BigInt":
		return "bigint"
	}
	return string(name[0]+'a'-'A') + name[1:]
}

func literalValue(v interface{}) interface{} {
	switch v := v.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
	case *big.Int:
		return nil
	}
	return v
}
