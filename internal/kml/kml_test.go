package kml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrapKML(body string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2"><Document>` + body + `</Document></kml>`)
}

func TestParseSinglePlacemark(t *testing.T) {
	data := wrapKML(`
		<Placemark>
			<name>Well 12</name>
			<Point><coordinates>-97.123,32.456,0</coordinates></Point>
		</Placemark>`)

	placemarks, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, placemarks, 1)

	assert.Equal(t, "Well 12", placemarks[0].Name)
	assert.InDelta(t, -97.123, placemarks[0].Longitude, 1e-9)
	assert.InDelta(t, 32.456, placemarks[0].Latitude, 1e-9)
}

func TestParseMalformedDocument(t *testing.T) {
	placemarks, err := Parse([]byte(`<kml><Placemark><name>broken`))
	require.ErrorIs(t, err, ErrMalformed)
	assert.Nil(t, placemarks)
}

func TestParseNotXMLAtAll(t *testing.T) {
	_, err := Parse([]byte("this is not a kml file"))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestParseZeroPlacemarks(t *testing.T) {
	placemarks, err := Parse(wrapKML(``))
	require.NoError(t, err)
	assert.Empty(t, placemarks)
}

func TestParseSkipsPlacemarkWithoutCoordinates(t *testing.T) {
	data := wrapKML(`
		<Placemark><name>No geometry</name></Placemark>
		<Placemark>
			<name>Has geometry</name>
			<Point><coordinates>1.5,2.5</coordinates></Point>
		</Placemark>`)

	placemarks, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, placemarks, 1)
	assert.Equal(t, "Has geometry", placemarks[0].Name)
}

func TestParseSkipsNonNumericCoordinates(t *testing.T) {
	data := wrapKML(`
		<Placemark>
			<name>Bad tuple</name>
			<Point><coordinates>east,north</coordinates></Point>
		</Placemark>
		<Placemark>
			<name>Missing latitude</name>
			<Point><coordinates>10.0</coordinates></Point>
		</Placemark>
		<Placemark>
			<name>Empty</name>
			<Point><coordinates>   </coordinates></Point>
		</Placemark>`)

	placemarks, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, placemarks)
}

func TestParseDefaultsMissingName(t *testing.T) {
	data := wrapKML(`
		<Placemark>
			<Point><coordinates>5,6</coordinates></Point>
		</Placemark>
		<Placemark>
			<name>   </name>
			<Point><coordinates>7,8</coordinates></Point>
		</Placemark>`)

	placemarks, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, placemarks, 2)
	assert.Equal(t, "Imported Placemark", placemarks[0].Name)
	assert.Equal(t, "Imported Placemark", placemarks[1].Name)
}

func TestParseTakesFirstTupleOnly(t *testing.T) {
	data := wrapKML(`
		<Placemark>
			<name>Pipeline</name>
			<LineString>
				<coordinates>
					-120.1,45.2,0 -120.2,45.3,0
					-120.3,45.4,0
				</coordinates>
			</LineString>
		</Placemark>`)

	placemarks, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, placemarks, 1)
	assert.InDelta(t, -120.1, placemarks[0].Longitude, 1e-9)
	assert.InDelta(t, 45.2, placemarks[0].Latitude, 1e-9)
}

func TestParseToleratesTrailingComma(t *testing.T) {
	data := wrapKML(`
		<Placemark>
			<name>Trailing</name>
			<Point><coordinates>-97.5,32.5,</coordinates></Point>
		</Placemark>`)

	placemarks, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, placemarks, 1)
	assert.InDelta(t, -97.5, placemarks[0].Longitude, 1e-9)
	assert.InDelta(t, 32.5, placemarks[0].Latitude, 1e-9)
}

func TestParseFindsPlacemarksInNestedFolders(t *testing.T) {
	data := wrapKML(`
		<Folder>
			<Folder>
				<Placemark>
					<name>Deep</name>
					<Point><coordinates>3,4</coordinates></Point>
				</Placemark>
			</Folder>
		</Folder>
		<Placemark>
			<name>Shallow</name>
			<Point><coordinates>1,2</coordinates></Point>
		</Placemark>`)

	placemarks, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, placemarks, 2)
	assert.Equal(t, "Deep", placemarks[0].Name)
	assert.Equal(t, "Shallow", placemarks[1].Name)
}

func TestParseIgnoresElementsOutsideKMLNamespace(t *testing.T) {
	data := []byte(`<kml><Document><Placemark>
		<name>No namespace</name>
		<Point><coordinates>1,2</coordinates></Point>
	</Placemark></Document></kml>`)

	placemarks, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, placemarks)
}
