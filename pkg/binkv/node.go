package binkv

// Object is one nesting level of the container: an ordered field
// list. Field order is part of the wire contract, so there is no map
// here, and duplicate keys are structurally legal.
type Object struct {
	Fields []Field
}

// Field is a single keyed value inside an Object. Tag selects which
// of Str, U32 or Obj is meaningful. U32 carries the raw value of the
// wire's 32-bit little-endian integer type.
type Field struct {
	Tag byte
	Key string
	Str string
	U32 uint32
	Obj *Object
}

// StringField builds a string-typed field.
func StringField(key, val string) Field {
	return Field{Tag: TagString, Key: key, Str: val}
}

// Uint32Field builds a 32-bit-integer-typed field.
func Uint32Field(key string, val uint32) Field {
	return Field{Tag: TagInt32, Key: key, U32: val}
}

// ObjectField builds a nested-object field. A nil obj encodes as an
// empty object.
func ObjectField(key string, obj *Object) Field {
	if obj == nil {
		obj = &Object{}
	}
	return Field{Tag: TagObject, Key: key, Obj: obj}
}
