package vector

import (
	"strconv"

	"scene-toolkit/internal/dom"
)

// axisAttrs are the element attribute names, indexed like Component.
var axisAttrs = [3]string{"x", "y", "z"}

// Vec3FromElement reads a vector from an element of the form
// <anyTagName x=".." y=".." z=".." />. Each attribute that is missing
// or not a number yields 0.0 for that component alone; a malformed or
// partial element never fails construction.
func Vec3FromElement(el *dom.Element) Vec3 {
	var v Vec3
	for i, name := range axisAttrs {
		v.SetComponent(i, dom.Float(el, name, 0.0))
	}
	return v
}

// SetFromElement resets v from an element created by ToElement. The
// result is identical to constructing a fresh vector with
// Vec3FromElement and assigning it.
func (v *Vec3) SetFromElement(el *dom.Element) {
	*v = Vec3FromElement(el)
}

// ToElement returns a new element of the given tag name carrying the
// vector as x, y and z attributes, created through doc. The element is
// not attached to any parent; use SetFromElement or Vec3FromElement to
// restore the vector from it.
func (v Vec3) ToElement(tag string, doc *dom.Document) *dom.Element {
	el := doc.CreateElement(tag)
	for i, name := range axisAttrs {
		el.SetAttribute(name, formatComponent(v.Component(i)))
	}
	return el
}

// formatComponent renders a component in its shortest decimal form
// that parses back to the same float64.
func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
