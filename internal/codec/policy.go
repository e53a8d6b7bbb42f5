package codec

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

func extensionsFor(policy *atlas.CodecPolicy) []jsoniter.Extension {
	rename := func(name string) string { return name }
	if policy.PropertyCasing == atlas.CasingCamel {
		rename = CamelCase
	}

	extensions := []jsoniter.Extension{&namingExtension{rename: rename}}

	if policy.WritePrivateFields {
		extensions = append(extensions, &privateFieldExtension{rename: rename})
	}

	if policy.EnumEncoding != atlas.EnumNumber {
		extensions = append(extensions, &enumExtension{})
	}

	return extensions
}

// CamelCase lowercases the leading run of upper-case letters of name, keeping
// the last one when it starts the next word: FirstName → firstName,
// ID → id, URLPath → urlPath.
func CamelCase(name string) string {
	runes := []rune(name)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return name
	}

	for i := range runes {
		if i == 1 && !unicode.IsUpper(runes[i]) {
			break
		}

		hasNext := i+1 < len(runes)
		if i > 0 && hasNext && !unicode.IsUpper(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// namingExtension renames exported fields that carry no explicit json name.
type namingExtension struct {
	jsoniter.DummyExtension

	rename func(string) string
}

func (e *namingExtension) UpdateStructDescriptor(structDescriptor *jsoniter.StructDescriptor) {
	for _, binding := range structDescriptor.Fields {
		name := binding.Field.Name()
		if !isExported(name) || hasExplicitName(binding.Field.Tag()) {
			continue
		}

		wire := e.rename(name)
		binding.FromNames = []string{wire}
		binding.ToNames = []string{wire}
	}
}

// privateFieldExtension binds unexported fields of non-standard-library types
// so that read-only values exposed through getters are written and read.
type privateFieldExtension struct {
	jsoniter.DummyExtension

	rename func(string) string
}

func (e *privateFieldExtension) UpdateStructDescriptor(structDescriptor *jsoniter.StructDescriptor) {
	if isStandardLibrary(structDescriptor.Type.Type1().PkgPath()) {
		return
	}

	for _, binding := range structDescriptor.Fields {
		name := binding.Field.Name()
		if isExported(name) || name == "_" {
			continue
		}

		wire := e.rename(strings.TrimLeft(name, "_"))
		binding.FromNames = []string{wire}
		binding.ToNames = []string{wire}
	}
}

func isExported(name string) bool {
	r := []rune(name)

	return len(r) > 0 && unicode.IsUpper(r[0])
}

func hasExplicitName(tag reflect.StructTag) bool {
	value, ok := tag.Lookup("json")
	if !ok {
		return false
	}

	name, _, _ := strings.Cut(value, ",")

	return name != ""
}

// isStandardLibrary reports whether pkgPath belongs to the Go distribution.
// Their unexported fields are implementation details, never wire data.
func isStandardLibrary(pkgPath string) bool {
	if pkgPath == "" || pkgPath == "main" {
		return false
	}

	first, _, _ := strings.Cut(pkgPath, "/")

	return !strings.Contains(first, ".")
}

var enumType = reflect2.TypeOfPtr((*atlas.Enum)(nil)).Elem()

// enumExtension writes int-backed atlas.Enum values as their names.
type enumExtension struct {
	jsoniter.DummyExtension
}

func (e *enumExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	names, ok := enumNames(typ)
	if !ok {
		return nil
	}

	return &enumEncoder{names: names}
}

func (e *enumExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	names, ok := enumNames(typ)
	if !ok {
		return nil
	}

	return &enumDecoder{names: names, typeName: typ.String()}
}

func enumNames(typ reflect2.Type) ([]string, bool) {
	if typ.Kind() != reflect.Int || !typ.Implements(enumType) {
		return nil, false
	}

	enum, ok := reflect.Zero(typ.Type1()).Interface().(atlas.Enum)
	if !ok {
		return nil, false
	}

	return enum.EnumNames(), true
}

type enumEncoder struct {
	names []string
}

func (e *enumEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*int)(ptr) == 0
}

func (e *enumEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	value := *(*int)(ptr)
	if value < 0 || value >= len(e.names) {
		stream.WriteInt(value)

		return
	}

	stream.WriteString(e.names[value])
}

type enumDecoder struct {
	names    []string
	typeName string
}

func (d *enumDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		name := iter.ReadString()
		for i, candidate := range d.names {
			if strings.EqualFold(candidate, name) {
				*(*int)(ptr) = i

				return
			}
		}

		iter.ReportError("decode "+d.typeName, fmt.Sprintf("unknown value %q", name))
	case jsoniter.NumberValue:
		*(*int)(ptr) = iter.ReadInt()
	case jsoniter.NilValue:
		iter.Skip()
	default:
		iter.ReportError("decode "+d.typeName, "expects a string or a number")
	}
}
