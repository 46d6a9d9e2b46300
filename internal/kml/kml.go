// Package kml extracts placemarks from KML 2.2 documents for bulk site import.
package kml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Namespace is the KML 2.2 XML namespace.
const Namespace = "http://www.opengis.net/kml/2.2"

// ErrMalformed is returned when the input is not well-formed XML. No
// placemarks are extracted in that case.
var ErrMalformed = errors.New("malformed KML document")

// Placemark is one successfully parsed placemark: a display name and the
// first coordinate tuple found beneath it.
type Placemark struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// element is a generic XML tree node. KML geometry nesting varies
// (Point, LineString, MultiGeometry), so the document is decoded into a
// plain tree and searched rather than mapped onto fixed structs.
type element struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []element `xml:",any"`
}

// Parse decodes a KML document and returns every placemark that carries a
// usable coordinate tuple. Placemarks without coordinates, or with
// coordinates that do not parse as numbers, are skipped without aborting the
// rest of the batch. Ill-formed XML fails the whole document with
// ErrMalformed.
func Parse(data []byte) ([]Placemark, error) {
	var root element
	decoder := xml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	// Trailing garbage after the document element is a parse failure too,
	// though whitespace and comments are fine.
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		switch tok := tok.(type) {
		case xml.CharData:
			if strings.TrimSpace(string(tok)) != "" {
				return nil, fmt.Errorf("%w: unexpected content after document element", ErrMalformed)
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
		default:
			return nil, fmt.Errorf("%w: unexpected content after document element", ErrMalformed)
		}
	}

	var placemarks []Placemark
	for _, pm := range findAll(&root, "Placemark") {
		placemark, ok := parsePlacemark(pm)
		if !ok {
			continue
		}
		placemarks = append(placemarks, placemark)
	}
	return placemarks, nil
}

// parsePlacemark extracts one placemark. ok is false when the placemark has
// no usable coordinates and must be skipped.
func parsePlacemark(pm *element) (Placemark, bool) {
	name := "Imported Placemark"
	if nameEl := findChild(pm, "name"); nameEl != nil {
		if text := strings.TrimSpace(nameEl.Text); text != "" {
			name = text
		}
	}

	// First coordinates element anywhere beneath the placemark, however
	// deeply the geometry nests.
	coordEl := findFirst(pm, "coordinates")
	if coordEl == nil {
		return Placemark{}, false
	}

	lon, lat, ok := parseCoordinates(coordEl.Text)
	if !ok {
		return Placemark{}, false
	}

	return Placemark{Name: name, Latitude: lat, Longitude: lon}, true
}

// parseCoordinates takes the first whitespace-separated tuple of a KML
// coordinates string and splits it on commas into longitude,latitude with an
// optional ignored altitude.
func parseCoordinates(text string) (lon, lat float64, ok bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, 0, false
	}

	parts := strings.Split(fields[0], ",")
	if len(parts) < 2 {
		return 0, 0, false
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lon, lat, true
}

// matches reports whether an element has the given local name under the KML
// 2.2 namespace.
func matches(el *element, local string) bool {
	return el.XMLName.Space == Namespace && el.XMLName.Local == local
}

// findAll collects every matching element anywhere beneath root, depth first
// in document order. A matching element's own subtree is not searched again,
// so nested containers cannot yield a placemark twice.
func findAll(root *element, local string) []*element {
	var out []*element
	for i := range root.Children {
		child := &root.Children[i]
		if matches(child, local) {
			out = append(out, child)
			continue
		}
		out = append(out, findAll(child, local)...)
	}
	return out
}

// findFirst returns the first matching descendant in document order, or nil.
func findFirst(root *element, local string) *element {
	for i := range root.Children {
		child := &root.Children[i]
		if matches(child, local) {
			return child
		}
		if found := findFirst(child, local); found != nil {
			return found
		}
	}
	return nil
}

// findChild returns the first matching direct child, or nil.
func findChild(parent *element, local string) *element {
	for i := range parent.Children {
		if matches(&parent.Children[i], local) {
			return &parent.Children[i]
		}
	}
	return nil
}
