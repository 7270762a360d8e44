package codegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "codegen"})

// Number formats a coordinate the way every table does: two decimal places,
// and never a negative zero, so unchanged input renders byte-identically.
func Number(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}

	return s
}

// shift renders one foot as its firmware home identifier plus a displacement.
func shift(prefix string, idx int, v math3d.Vector3) string {
	return fmt.Sprintf("{%[1]s%[2]dX+(%[3]s), %[1]s%[2]dY+(%[4]s), %[1]s%[2]dZ+(%[5]s)}",
		prefix, idx, Number(v.X), Number(v.Y), Number(v.Z))
}

// transformed renders one foot as its firmware home identifier, transformed
// by the first three rows of m.
func transformed(prefix string, idx int, m math3d.Matrix44) string {
	e := m.Elements()
	rows := make([]string, 3)

	for r := range rows {
		rows[r] = fmt.Sprintf("%[1]s%[2]dX*%[3]s + %[1]s%[2]dY*%[4]s + %[1]s%[2]dZ*%[5]s + %[6]s",
			prefix, idx, Number(e[r][0]), Number(e[r][1]), Number(e[r][2]), Number(e[r][3]))
	}

	return "{" + strings.Join(rows, ", ") + "}"
}

func entries(es []int) string {
	s := make([]string, len(es))
	for i, e := range es {
		s[i] = strconv.Itoa(e)
	}

	return strings.Join(s, ",")
}

// tail renders everything after the frames of a table: the entries, the table
// descriptor binding them together.
func tail(b *strings.Builder, kind, name string, count, dur int, es []int) {
	b.WriteString("};\n")
	fmt.Fprintf(b, "const int %s_entries[] { %s };\n", name, entries(es))
	fmt.Fprintf(b, "const %[1]s %[2]s_table {%[2]s_paths, %[3]d, %[4]d, %[2]s_entries, %[5]d };\n",
		kind, name, count, dur, len(es))
}

func accessor(b *strings.Builder, kind, name string) {
	fmt.Fprintf(b, "const %[1]s& %[2]sTable() {\n    return %[2]s_table;\n}\n", kind, name)
}

// HexapodBody renders the frames, entries and descriptor of one path.
func HexapodBody(p pathtool.HexPath) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "\nconst Locations %s_paths[] {\n", p.Name)

	for i := 0; i < p.Len(); i++ {
		cells := make([]string, legs.NumHexLegs)

		if p.Mode == pathtool.MatrixMode {
			for _, l := range legs.HexLegs {
				cells[l] = transformed("P", int(l)+1, p.Matrices[i])
			}
			b.WriteString("    {" + strings.Join(cells, ", \n     ") + "},\n")

		} else {
			for _, l := range legs.HexLegs {
				cells[l] = shift("P", int(l)+1, p.Shift[i][l])
			}
			b.WriteString("    {" + strings.Join(cells, ", ") + "},\n")
		}
	}

	tail(b, "MovementTable", p.Name, p.Len(), p.StepDuration, p.Entries)
	return b.String()
}

// QuadBody renders the frames, entries and descriptor of one table.
func QuadBody(t pathtool.MovementTable) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "\nconst QuadLocations %s_paths[] {\n", t.Name)

	for _, f := range t.Frames {
		cells := make([]string, legs.NumQuadLegs)
		for _, l := range legs.QuadLegs {
			cells[l] = shift("Q", int(l)+1, f[l])
		}

		b.WriteString("    {{" + strings.Join(cells, ", ") + "}},\n")
	}

	tail(b, "QuadMovementTable", t.Name, t.Len(), t.StepDuration, t.Entries)
	return b.String()
}

const header = "//\n// This file is generated, dont directly modify content...\n//\n"

const quadPreamble = `#pragma once

struct QuadLocations {
    Point3D p[4];
};

struct QuadMovementTable {
    const QuadLocations* table;
    int length;
    int stepDuration;
    const int* entries;
    int entriesCount;
};
`

// RenderHexapod returns the hexapod artifact: every path in an anonymous
// namespace, followed by their accessors.
func RenderHexapod(ps []pathtool.HexPath) string {
	b := &strings.Builder{}
	b.WriteString(header)
	b.WriteString("namespace {\n")

	for _, p := range ps {
		b.WriteString(HexapodBody(p))
		b.WriteString("\n")
	}

	b.WriteString("}\n\n")

	for _, p := range ps {
		accessor(b, "MovementTable", p.Name)
	}

	return b.String()
}

// RenderQuad returns the quadruped artifact: the table types, then every table
// and its accessor in the quad namespace.
func RenderQuad(ts []pathtool.MovementTable) string {
	b := &strings.Builder{}
	b.WriteString(header)
	b.WriteString(quadPreamble)
	b.WriteString("\nnamespace quad {\n")

	for _, t := range ts {
		b.WriteString(QuadBody(t))
		b.WriteString("\n")
	}

	for _, t := range ts {
		accessor(b, "QuadMovementTable", t.Name)
	}

	b.WriteString("}\n")
	return b.String()
}

// Write writes a rendered artifact to w.
func Write(w io.Writer, artifact string) error {
	n, err := io.WriteString(w, artifact)
	if err != nil {
		return fmt.Errorf("%w (while writing artifact, after %d of %d bytes)", err, n, len(artifact))
	}

	log.Debugf("wrote %d bytes", n)
	return nil
}
