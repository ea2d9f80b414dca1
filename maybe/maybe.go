package maybe

/*
module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault, ifNot)

{-| A `Maybe` models a value which may or may not be present. We use it for
optional layout fields, optional event bindings, and for eliding default
values from serialized output.
-}
*/

// Maybe is an option type: either Just(x) or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// IfNot wraps x in a Just, except when x equals dflt, in which case it
// returns Nothing. This is the default-elision helper: a field holding its
// documented default is treated as absent.
func IfNot[T comparable](dflt T, x T) Maybe[T] {
	if x == dflt {
		return Nothing[T]()
	}
	return Just(x)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault unwraps a Maybe, substituting def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value; Nothing stays Nothing.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// IsNothing is a predicate for absence.
func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a Maybe into a function producing another Maybe.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value of a Maybe, if present.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern-matching on the two constructors of a Maybe:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):   // v now holds the value
//     case m.Nothing():
//     }
//
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
