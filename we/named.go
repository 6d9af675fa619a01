package we

import (
	"path"
	"reflect"

	"github.com/iancoleman/strcase"
)

// Named values supply their own wire name.
type Named interface {
	TypeName() string
}

// NameOf returns the wire name of a value. Values that are not Named are
// named "package:type" with both segments kebab cased, so counter.TextChanged
// becomes "counter:text-changed".
func NameOf(value any) string {
	if named, ok := value.(Named); ok {
		return named.TypeName()
	}

	t := reflect.TypeOf(value)
	if t == nil {
		return ""
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	name := strcase.ToKebab(t.Name())
	namespace := path.Base(t.PkgPath())
	if namespace == "." || namespace == "/" {
		return name
	}

	return strcase.ToKebab(namespace) + ":" + name
}
