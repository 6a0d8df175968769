package logsink

import (
	"fmt"
	"reflect"
)

const (
	maxDumpDepth    = 10
	maxDumpElements = 10
)

// Dump writes a description of v at Debug severity, one line per value.
// Structs show their exported fields, maps every entry, slices and arrays at
// most their first ten elements. All lines of one dump are written together,
// so lines from other goroutines never land in the middle.
func (s *LogSink) Dump(v interface{}) {
	if s == nil || !Debug.Enabled(s.minimum) {
		return
	}
	d := &dumper{visited: make(map[uintptr]bool)}
	if v == nil {
		d.emit("Dump: <nil>")
	} else {
		d.value(v, emptyString, 0)
	}
	s.writeLines(Debug, d.lines...)
}

type dumper struct {
	lines   []string
	visited map[uintptr]bool
}

func (d *dumper) emit(format string, args ...interface{}) {
	d.lines = append(d.lines, fmt.Sprintf(format, args...))
}

func (d *dumper) value(v interface{}, prefix string, depth int) {
	if depth > maxDumpDepth {
		d.emit("%s: <max depth reached>", prefix)
		return
	}
	if v == nil {
		d.emit("%s: <nil>", prefix)
		return
	}

	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			d.emit("%s: <nil>", prefix)
			return
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if d.visited[ptr] {
				d.emit("%s: <circular reference>", prefix)
				return
			}
			d.visited[ptr] = true
		}
		val = val.Elem()
	}

	typ := val.Type()
	switch val.Kind() {
	case reflect.Struct:
		if prefix == emptyString {
			d.emit("Struct: %s", typ.Name())
		} else {
			d.emit("%s: %s {", prefix, typ.Name())
		}
		for i := 0; i < val.NumField(); i++ {
			field := val.Field(i)
			if !field.CanInterface() {
				continue
			}
			name := typ.Field(i).Name
			if prefix != emptyString {
				name = prefix + "." + name
			}
			d.value(field.Interface(), name, depth+1)
		}
		if prefix != emptyString {
			d.emit("%s: }", prefix)
		}

	case reflect.Map:
		d.emit("%s: map[%s]%s (len: %d) {", prefix, typ.Key(), typ.Elem(), val.Len())
		iter := val.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("%s[%v]", prefix, iter.Key().Interface())
			d.value(iter.Value().Interface(), key, depth+1)
		}
		d.emit("%s: }", prefix)

	case reflect.Slice, reflect.Array:
		d.emit("%s: %s (len: %d) {", prefix, typ, val.Len())
		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			elem := val.Index(i)
			if !elem.CanInterface() {
				continue
			}
			d.value(elem.Interface(), fmt.Sprintf("%s[%d]", prefix, i), depth+1)
		}
		if val.Len() > maxDumpElements {
			d.emit("%s: ... (%d more elements)", prefix, val.Len()-maxDumpElements)
		}
		d.emit("%s: }", prefix)

	default:
		if val.IsValid() && val.CanInterface() {
			d.emit("%s: %v", prefix, val.Interface())
		} else {
			d.emit("%s: %v", prefix, v)
		}
	}
}
