// vecproj projects the vectors of an XML scene fragment onto an axis
// or a plane. Every element carrying x, y and z attributes is treated
// as a vector, projected in place, and the rewritten document is
// printed to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"scene-toolkit/internal/diag"
	"scene-toolkit/internal/dom"
	"scene-toolkit/internal/geometry/vector"
)

var (
	in      = flag.String("in", "-", "Input XML file, or - for stdin")
	axis    = flag.String("axis", "", "Project onto this axis, as x,y,z")
	plane   = flag.String("plane", "", "Project onto the plane with this normal, as x,y,z")
	verbose = flag.Bool("verbose", false, "Log degenerate-input warnings")
)

func main() {
	flag.Parse()

	if (*axis == "") == (*plane == "") {
		log.Fatal("exactly one of -axis or -plane is required")
	}

	if *verbose {
		vector.SetWarnSink(diag.Logger(log.Default()))
	}

	var project func(*vector.Vec3)
	if *axis != "" {
		d, err := parseTriple(*axis)
		if err != nil {
			log.Fatalf("bad -axis: %v", err)
		}
		project = func(v *vector.Vec3) { v.ProjectOnAxis(d) }
	} else {
		n, err := parseTriple(*plane)
		if err != nil {
			log.Fatalf("bad -plane: %v", err)
		}
		project = func(v *vector.Vec3) { v.ProjectOnPlane(n) }
	}

	r := os.Stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		r = f
	}

	doc, err := dom.Parse(r)
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}

	projectTree(doc, doc.Root(), project)

	if _, err := doc.WriteTo(os.Stdout); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

// projectTree projects every vector-shaped element in the subtree
// rooted at el. Elements missing any of the three attributes are left
// untouched rather than filled with fallback zeros.
func projectTree(doc *dom.Document, el *dom.Element, project func(*vector.Vec3)) {
	if el == nil {
		return
	}
	if hasVectorAttrs(el) {
		v := vector.Vec3FromElement(el)
		project(&v)
		for _, a := range v.ToElement(el.Tag, doc).Attrs {
			el.SetAttribute(a.Name, a.Value)
		}
	}
	for _, child := range el.Children {
		projectTree(doc, child, project)
	}
}

func hasVectorAttrs(el *dom.Element) bool {
	for _, name := range []string{"x", "y", "z"} {
		if _, ok := el.Attribute(name); !ok {
			return false
		}
	}
	return true
}

func parseTriple(s string) (vector.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vector.Vec3{}, fmt.Errorf("want three comma-separated numbers, got %q", s)
	}
	var v vector.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vector.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v.SetComponent(i, f)
	}
	return v, nil
}
