// Package document reads the ISCC-NBS XML source document.
//
// The document has five sections under its root element:
//
//	<names>    three nested levels of elements with color, name and abbr attributes
//	<hues>     one element per hue boundary, with an id attribute ("1R", "4R", ...)
//	<chromas>  one element per chroma boundary, text content, last one "INF"
//	<values>   one element per value boundary, text content, last one "INF"
//	<ranges>   hue-range elements (begin, end) holding range elements
//	           (color, chroma-begin, chroma-end, value-begin, value-end)
//
// Child element names inside names, hues, chromas and values are not checked.
// Parsing only reads the document; consistency checks live in the partition
// and names packages.
package document

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/iscc-nbs-tools/internal/names"
	"github.com/ironsheep/iscc-nbs-tools/internal/partition"
)

// Document is the parsed content of an ISCC-NBS XML file.
type Document struct {
	Hues      []string
	Chromas   []string
	Values    []string
	HueRanges []HueRange

	names names.Tree
}

// HueRange is one hue-range element: a hue interval and the boxes declared
// inside it.
type HueRange struct {
	Begin  string
	End    string
	Ranges []Range
}

// Range is one range element inside a hue-range.
type Range struct {
	Color       int
	ChromaBegin string
	ChromaEnd   string
	ValueBegin  string
	ValueEnd    string
}

type xmlDocument struct {
	Names   xmlNameList  `xml:"names"`
	Hues    xmlHueList   `xml:"hues"`
	Chromas xmlTextList  `xml:"chromas"`
	Values  xmlTextList  `xml:"values"`
	Ranges  xmlRangeList `xml:"ranges"`
}

type xmlNameList struct {
	Items []xmlName `xml:",any"`
}

type xmlName struct {
	Color    string    `xml:"color,attr"`
	Name     string    `xml:"name,attr"`
	Abbr     string    `xml:"abbr,attr"`
	Children []xmlName `xml:",any"`
}

type xmlHueList struct {
	Items []struct {
		ID string `xml:"id,attr"`
	} `xml:",any"`
}

type xmlTextList struct {
	Items []struct {
		Text string `xml:",chardata"`
	} `xml:",any"`
}

type xmlRangeList struct {
	Items []struct {
		Begin  string `xml:"begin,attr"`
		End    string `xml:"end,attr"`
		Ranges []struct {
			Color       string `xml:"color,attr"`
			ChromaBegin string `xml:"chroma-begin,attr"`
			ChromaEnd   string `xml:"chroma-end,attr"`
			ValueBegin  string `xml:"value-begin,attr"`
			ValueEnd    string `xml:"value-end,attr"`
		} `xml:",any"`
	} `xml:",any"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a document from r.
func Parse(r io.Reader) (*Document, error) {
	var x xmlDocument
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&x); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	doc := &Document{}

	for _, h := range x.Hues.Items {
		if h.ID == "" {
			return nil, fmt.Errorf("hues: element without id")
		}
		doc.Hues = append(doc.Hues, h.ID)
	}
	for _, c := range x.Chromas.Items {
		doc.Chromas = append(doc.Chromas, strings.TrimSpace(c.Text))
	}
	for _, v := range x.Values.Items {
		doc.Values = append(doc.Values, strings.TrimSpace(v.Text))
	}

	switch {
	case len(doc.Hues) == 0:
		return nil, fmt.Errorf("missing or empty <hues>")
	case len(doc.Chromas) == 0:
		return nil, fmt.Errorf("missing or empty <chromas>")
	case len(doc.Values) == 0:
		return nil, fmt.Errorf("missing or empty <values>")
	}

	for _, hr := range x.Ranges.Items {
		out := HueRange{Begin: hr.Begin, End: hr.End}
		for _, r := range hr.Ranges {
			id, err := strconv.Atoi(r.Color)
			if err != nil {
				return nil, fmt.Errorf("hue-range %s-%s: invalid color %q: %w", hr.Begin, hr.End, r.Color, err)
			}
			out.Ranges = append(out.Ranges, Range{
				Color:       id,
				ChromaBegin: r.ChromaBegin,
				ChromaEnd:   r.ChromaEnd,
				ValueBegin:  r.ValueBegin,
				ValueEnd:    r.ValueEnd,
			})
		}
		doc.HueRanges = append(doc.HueRanges, out)
	}

	if err := addNames(&doc.names, 1, x.Names.Items); err != nil {
		return nil, err
	}

	return doc, nil
}

func addNames(t *names.Tree, level int, items []xmlName) error {
	if level > 3 {
		if len(items) > 0 {
			return fmt.Errorf("names: more than three levels of nesting")
		}
		return nil
	}
	for _, n := range items {
		id, err := strconv.Atoi(n.Color)
		if err != nil {
			return fmt.Errorf("names: %q has invalid color %q: %w", n.Name, n.Color, err)
		}
		t.Add(level, names.Entry{ID: id, Name: n.Name, Abbr: n.Abbr})
		if err := addNames(t, level+1, n.Children); err != nil {
			return err
		}
	}
	return nil
}

// Axes validates and returns the three partition axes.
func (d *Document) Axes() (*partition.Axes, error) {
	return partition.NewAxes(d.Hues, d.Chromas, d.Values)
}

// Declarations flattens the hue ranges into region declarations, in
// document order.
func (d *Document) Declarations() []partition.Declaration {
	var out []partition.Declaration
	for _, hr := range d.HueRanges {
		for _, r := range hr.Ranges {
			out = append(out, partition.Declaration{
				Region:      r.Color,
				HueBegin:    hr.Begin,
				HueEnd:      hr.End,
				ChromaBegin: r.ChromaBegin,
				ChromaEnd:   r.ChromaEnd,
				ValueBegin:  r.ValueBegin,
				ValueEnd:    r.ValueEnd,
			})
		}
	}
	return out
}

// Names returns the color name hierarchy.
func (d *Document) Names() *names.Tree {
	return &d.names
}
