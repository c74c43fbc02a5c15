package xfrm

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/igsio/volrecon"
	"github.com/igsio/volrecon/geom"
)

// configDocument is the wire shape of a <CoordinateDefinitions> XML
// document, per spec.md §6.
type configDocument struct {
	XMLName    xml.Name          `xml:"CoordinateDefinitions"`
	Transforms []configTransform `xml:"Transform"`
}

type configTransform struct {
	From       string `xml:"From,attr"`
	To         string `xml:"To,attr"`
	Matrix     string `xml:"Matrix,attr"`
	Persistent string `xml:"Persistent,attr,omitempty"`
	Status     string `xml:"Status,attr,omitempty"`
	Error      string `xml:"Error,attr,omitempty"`
	Date       string `xml:"Date,attr,omitempty"`
}

// ReadConfiguration loads original edges from an XML document shaped
// as configDocument. Every Transform element must carry Matrix (16
// space-separated doubles); a missing Matrix is a ConfigError.
// Unrecognized attributes are ignored by encoding/xml itself.
func (r *Repository) ReadConfiguration(rd io.Reader) error {
	var doc configDocument
	if err := xml.NewDecoder(rd).Decode(&doc); err != nil {
		return volrecon.NewConfigError("xfrm.ReadConfiguration", err)
	}

	for _, t := range doc.Transforms {
		if strings.TrimSpace(t.Matrix) == "" {
			return volrecon.NewConfigError("xfrm.ReadConfiguration", fmt.Errorf("transform %sTo%s is missing Matrix", t.From, t.To))
		}
		m, err := parseMatrix(t.Matrix)
		if err != nil {
			return volrecon.NewConfigError("xfrm.ReadConfiguration", err)
		}
		status := Ok
		if t.Status != "" {
			if parsed, ok := ParseStatus(t.Status); ok {
				status = parsed
			}
		}
		name := NewName(t.From, t.To)
		if err := r.SetTransform(name, m, status); err != nil {
			return err
		}
		if t.Persistent == "true" {
			_ = r.SetTransformPersistent(name, true)
		}
		if t.Error != "" {
			if f, err := strconv.ParseFloat(t.Error, 64); err == nil {
				_ = r.SetTransformError(name, f)
			}
		}
		if t.Date != "" {
			_ = r.SetTransformDate(name, t.Date)
		}
	}
	return nil
}

// WriteConfiguration persists the graph's original edges as XML.
// copyAll=false writes only edges marked Persistent; copyAll=true
// writes every original edge. Computed edges are never written (they
// are rebuilt on read).
func (r *Repository) WriteConfiguration(w io.Writer, copyAll bool) error {
	r.mu.Lock()
	doc := configDocument{}
	for from, toMap := range r.edges {
		for to, e := range toMap {
			if e.IsComputed {
				continue
			}
			if !copyAll && !e.Persistent {
				continue
			}
			doc.Transforms = append(doc.Transforms, configTransform{
				From:       from,
				To:         to,
				Matrix:     formatMatrix(e.Matrix),
				Persistent: strconv.FormatBool(e.Persistent),
				Status:     e.Status.String(),
				Error:      formatComputationError(e.ComputationError),
				Date:       e.Date,
			})
		}
	}
	r.mu.Unlock()

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return volrecon.NewConfigError("xfrm.WriteConfiguration", err)
	}
	return nil
}

func parseMatrix(s string) (geom.Mat4, error) {
	fields := strings.Fields(s)
	if len(fields) != 16 {
		return geom.Mat4{}, fmt.Errorf("xfrm: matrix has %d values, want 16", len(fields))
	}
	var m geom.Mat4
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Mat4{}, fmt.Errorf("xfrm: matrix value %q: %w", f, err)
		}
		m.M[i/4][i%4] = v
	}
	return m, nil
}

func formatMatrix(m geom.Mat4) string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != 0 || j != 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(m.M[i][j], 'g', -1, 64))
		}
	}
	return b.String()
}

func formatComputationError(v float64) string {
	if v != v { // NaN: unset
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
