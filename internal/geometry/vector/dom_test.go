package vector

import (
	"strings"
	"testing"

	"scene-toolkit/internal/dom"
)

func TestToElement(t *testing.T) {
	doc := dom.NewDocument()
	el := NewVec3(1.5, -2.25, 0).ToElement("pos", doc)

	if el.Tag != "pos" {
		t.Fatalf("tag got %q, want %q", el.Tag, "pos")
	}
	want := map[string]string{"x": "1.5", "y": "-2.25", "z": "0"}
	for name, val := range want {
		got, ok := el.Attribute(name)
		if !ok {
			t.Fatalf("attribute %q missing", name)
		}
		if got != val {
			t.Fatalf("attribute %q got %q, want %q", name, got, val)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	doc := dom.NewDocument()
	vecs := []Vec3{
		NewVec3(1.5, -2.25, 0),
		NewVec3(0.1, 1.0/3.0, -1e-17),
		NewVec3(12345678.9, -0.000125, 2.718281828459045),
		{},
	}
	for _, v := range vecs {
		got := Vec3FromElement(v.ToElement("v", doc))
		if got != v {
			t.Fatalf("round trip got %v, want %v", got, v)
		}
	}
}

func TestXMLRoundTrip(t *testing.T) {
	doc := dom.NewDocument()
	v := NewVec3(0.1, -2.25, 1.0/3.0)
	doc.SetRoot(v.ToElement("pos", doc))

	var buf strings.Builder
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	parsed, err := dom.Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Vec3FromElement(parsed.Root()); got != v {
		t.Fatalf("XML round trip got %v, want %v", got, v)
	}
}

func TestFromElementAttributeOrder(t *testing.T) {
	in := `<pos z="3" x="1" y="2" />`
	doc, err := dom.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Vec3FromElement(doc.Root()); got != NewVec3(1, 2, 3) {
		t.Fatalf("reordered attributes got %v, want (1, 2, 3)", got)
	}
}

func TestFromElementMissingAttribute(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("pos")
	el.SetAttribute("x", "4")
	el.SetAttribute("z", "-7.5")

	got := Vec3FromElement(el)
	if got != NewVec3(4, 0, -7.5) {
		t.Fatalf("missing y got %v, want (4, 0, -7.5)", got)
	}
}

func TestFromElementMalformedAttribute(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("pos")
	el.SetAttribute("x", "not-a-number")
	el.SetAttribute("y", "2")
	el.SetAttribute("z", "")

	// each bad attribute falls back independently
	got := Vec3FromElement(el)
	if got != NewVec3(0, 2, 0) {
		t.Fatalf("malformed attributes got %v, want (0, 2, 0)", got)
	}

	empty := doc.CreateElement("pos")
	if got := Vec3FromElement(empty); got != (Vec3{}) {
		t.Fatalf("empty element got %v, want zero vector", got)
	}
}

func TestSetFromElementMatchesConstructor(t *testing.T) {
	doc := dom.NewDocument()
	el := NewVec3(9, -8, 7).ToElement("v", doc)

	v := NewVec3(1, 1, 1)
	v.SetFromElement(el)
	if want := Vec3FromElement(el); v != want {
		t.Fatalf("SetFromElement got %v, want %v", v, want)
	}
}
