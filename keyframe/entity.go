// Package keyframe stores tick-indexed attribute snapshots for renderable
// entities and plays them back with linear interpolation, one tick per
// Update call.
package keyframe

import (
	"reflect"
)

// An Entity is anything with a transform and a colour that can be animated.
// Colours are RGBA with channels in [0, 1]. Registries key entities by
// identity, so implementations should be pointer types; nil pointers and
// non-comparable values are rejected.
type Entity interface {
	XPos() float64
	SetXPos(x float64)
	YPos() float64
	SetYPos(y float64)

	Width() float64
	SetWidth(w float64)
	Height() float64
	SetHeight(h float64)

	RotationInDegree() float64
	SetRotationInDegree(deg float64)

	Color() [4]float64
	SetColor(c [4]float64)
}

// usable reports whether e can be snapshotted and used as a Registry key:
// it must be non-nil, including a nil pointer wrapped in the interface, and
// its dynamic type must be comparable.
func usable(e Entity) bool {
	if e == nil {
		return false
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return false
		}
	}
	return v.Type().Comparable()
}
