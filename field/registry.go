package field

import (
	"reflect"
	"sync"
)

// Field describes the set of elements of type T: its neutral elements and
// a printable name.
type Field[T Element[T]] struct {
	Name      string
	zero, one T
}

func (f *Field[T]) Zero() T { return f.zero }
func (f *Field[T]) One() T  { return f.one }

var registry sync.Map // reflect.Type -> *Field[T]

// Of returns the memoized descriptor for T. It is safe for concurrent use;
// concurrent first calls may build the descriptor twice but all callers
// observe the same stored value.
func Of[T Element[T]]() *Field[T] {
	var t T
	key := reflect.TypeOf(&t).Elem()
	if f, ok := registry.Load(key); ok {
		return f.(*Field[T])
	}
	f := &Field[T]{
		Name: key.String(),
		zero: t.Zero(),
		one:  t.One(),
	}
	actual, _ := registry.LoadOrStore(key, f)
	return actual.(*Field[T])
}
