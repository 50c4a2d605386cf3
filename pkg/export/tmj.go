package export

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/opd-ai/dlrg/pkg/dungeon"
	"github.com/opd-ai/dlrg/pkg/tilecode"
)

// TMJ Format Types, based on the Tiled Map Editor JSON specification
// (TMJ 1.10): https://doc.mapeditor.org/en/stable/reference/json-map-format/

// TMJMap represents the root TMJ map structure.
type TMJMap struct {
	Type             string        `json:"type"`
	Version          string        `json:"version"`
	TiledVersion     string        `json:"tiledversion"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	TileWidth        int           `json:"tilewidth"`
	TileHeight       int           `json:"tileheight"`
	Orientation      string        `json:"orientation"`
	RenderOrder      string        `json:"renderorder"`
	Infinite         bool          `json:"infinite"`
	NextLayerID      int           `json:"nextlayerid"`
	NextObjectID     int           `json:"nextobjectid"`
	Class            string        `json:"class,omitempty"`
	CompressionLevel int           `json:"compressionlevel"`
	Layers           []TMJLayer    `json:"layers"`
	Tilesets         []TMJTileset  `json:"tilesets"`
	Properties       []TMJProperty `json:"properties,omitempty"`
}

// TMJLayer represents any layer type (tile or object).
type TMJLayer struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"` // "tilelayer" or "objectgroup"
	Visible bool    `json:"visible"`
	Opacity float64 `json:"opacity"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Width   int     `json:"width,omitempty"`
	Height  int     `json:"height,omitempty"`
	Class   string  `json:"class,omitempty"`

	// Tile layer specific
	Data        interface{} `json:"data,omitempty"` // []uint32 or base64 string
	Encoding    string      `json:"encoding,omitempty"`
	Compression string      `json:"compression,omitempty"`

	// Object layer specific
	DrawOrder string      `json:"draworder,omitempty"`
	Objects   []TMJObject `json:"objects,omitempty"`
}

// TMJObject represents an entity placed on an object layer: a monster, an
// object, or one of the two staircases.
type TMJObject struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	GID      uint32  `json:"gid,omitempty"`
	Visible  bool    `json:"visible"`
}

// TMJTileset references a collection of tiles.
type TMJTileset struct {
	FirstGID   uint32 `json:"firstgid"`
	Name       string `json:"name,omitempty"`
	TileWidth  int    `json:"tilewidth,omitempty"`
	TileHeight int    `json:"tileheight,omitempty"`
	TileCount  int    `json:"tilecount,omitempty"`
	Columns    int    `json:"columns,omitempty"`
	Image      string `json:"image,omitempty"`
}

// TMJProperty represents a custom property.
type TMJProperty struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// NewTMJMap creates a new TMJ map with default settings.
func NewTMJMap(width, height, tileWidth, tileHeight int) *TMJMap {
	return &TMJMap{
		Type:             "map",
		Version:          "1.10",
		TiledVersion:     "1.10.2",
		Width:            width,
		Height:           height,
		TileWidth:        tileWidth,
		TileHeight:       tileHeight,
		Orientation:      "orthogonal",
		RenderOrder:      "right-down",
		NextLayerID:      1,
		NextObjectID:     1,
		CompressionLevel: -1,
		Layers:           []TMJLayer{},
		Tilesets:         []TMJTileset{},
	}
}

// AddTileLayer adds a tile layer to the map.
func (m *TMJMap) AddTileLayer(name string, data []uint32) *TMJLayer {
	layer := TMJLayer{
		ID:       m.NextLayerID,
		Name:     name,
		Type:     "tilelayer",
		Visible:  true,
		Opacity:  1.0,
		Width:    m.Width,
		Height:   m.Height,
		Data:     data,
		Encoding: "csv",
	}
	m.NextLayerID++
	m.Layers = append(m.Layers, layer)
	return &m.Layers[len(m.Layers)-1]
}

// AddObjectLayer adds an object layer to the map.
func (m *TMJMap) AddObjectLayer(name string) *TMJLayer {
	layer := TMJLayer{
		ID:        m.NextLayerID,
		Name:      name,
		Type:      "objectgroup",
		Visible:   true,
		Opacity:   1.0,
		DrawOrder: "topdown",
		Objects:   []TMJObject{},
	}
	m.NextLayerID++
	m.Layers = append(m.Layers, layer)
	return &m.Layers[len(m.Layers)-1]
}

// AddObject appends obj to an object layer, assigning it the map's next
// object id.
func (l *TMJLayer) AddObject(obj TMJObject, m *TMJMap) {
	if l.Type != "objectgroup" {
		return
	}
	obj.ID = m.NextObjectID
	m.NextObjectID++
	l.Objects = append(l.Objects, obj)
}

// AddTileset adds a tileset reference to the map.
func (m *TMJMap) AddTileset(name, imagePath string, tileWidth, tileHeight, tileCount, columns int) *TMJTileset {
	tileset := TMJTileset{
		FirstGID:   1,
		Name:       name,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		TileCount:  tileCount,
		Columns:    columns,
		Image:      imagePath,
	}
	m.Tilesets = append(m.Tilesets, tileset)
	return &m.Tilesets[len(m.Tilesets)-1]
}

// CompressLayerData compresses tile data with gzip and encodes it as
// base64, matching Tiled's "gzip"/"base64" compressed-layer encoding.
func (l *TMJLayer) CompressLayerData() error {
	if l.Type != "tilelayer" {
		return fmt.Errorf("export: cannot compress non-tile layer %q", l.Name)
	}
	data, ok := l.Data.([]uint32)
	if !ok {
		return fmt.Errorf("export: layer %q data is not []uint32", l.Name)
	}

	buf := new(bytes.Buffer)
	for _, gid := range data {
		buf.WriteByte(byte(gid))
		buf.WriteByte(byte(gid >> 8))
		buf.WriteByte(byte(gid >> 16))
		buf.WriteByte(byte(gid >> 24))
	}

	var compressed bytes.Buffer
	gzipWriter := gzip.NewWriter(&compressed)
	if _, err := gzipWriter.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := gzipWriter.Close(); err != nil {
		return err
	}

	l.Data = base64.StdEncoding.EncodeToString(compressed.Bytes())
	l.Encoding = "base64"
	l.Compression = "gzip"
	return nil
}

// ExportTMJ converts a generated dungeon into a Tiled-compatible tilemap:
// a terrain tile layer built from the tile code grid, and an object layer
// carrying the two staircases plus every monster/object tile found on the
// monster/object ASCII layer.
func ExportTMJ(d *dungeon.Dungeon, compress bool) (*TMJMap, error) {
	size := d.Grid.Size
	tm := NewTMJMap(size, size, 16, 16)
	tm.Class = "dungeon"
	tm.AddTileset("dungeon_tiles", "tilesets/dungeon.png", 16, 16, 256, 16)

	terrain := make([]uint32, size*size)
	for i, c := range d.Grid.TileCode {
		terrain[i] = uint32(c) + 1 // GID 0 means "no tile" in Tiled
	}
	terrainLayer := tm.AddTileLayer("terrain", terrain)
	if compress {
		if err := terrainLayer.CompressLayerData(); err != nil {
			return nil, err
		}
	}

	objects := tm.AddObjectLayer("entities")
	addStaircaseObject(objects, tm, "stairs_down", d.Grid.DownStairs.X, d.Grid.DownStairs.Y)
	addStaircaseObject(objects, tm, "stairs_up", d.Grid.UpStairs.X, d.Grid.UpStairs.Y)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			code := d.Grid.Code(x, y)
			if !tilecode.IsMonsterObject(code) {
				continue
			}
			objects.AddObject(TMJObject{
				Name:    fmt.Sprintf("code_%d", code),
				X:       float64(x * tm.TileWidth),
				Y:       float64(y * tm.TileHeight),
				Width:   float64(tm.TileWidth),
				Height:  float64(tm.TileHeight),
				GID:     uint32(code) + 1,
				Visible: true,
			}, tm)
		}
	}

	tm.Properties = append(tm.Properties,
		TMJProperty{Name: "level", Type: "int", Value: d.Level},
		TMJProperty{Name: "seed", Type: "int", Value: d.Seed},
	)

	return tm, nil
}

func addStaircaseObject(layer *TMJLayer, tm *TMJMap, name string, x, y int) {
	if x < 0 || y < 0 {
		return
	}
	layer.AddObject(TMJObject{
		Name:    name,
		X:       float64(x * tm.TileWidth),
		Y:       float64(y * tm.TileHeight),
		Width:   float64(tm.TileWidth),
		Height:  float64(tm.TileHeight),
		Visible: true,
	}, tm)
}

// MarshalTMJ serializes a TMJ map to indented JSON.
func MarshalTMJ(tm *TMJMap) ([]byte, error) {
	return json.MarshalIndent(tm, "", "  ")
}

// SaveTMJToFile writes a TMJ map to filepath.
func SaveTMJToFile(tm *TMJMap, filepath string) error {
	data, err := MarshalTMJ(tm)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// EncodeTMJ writes a TMJ map to w as indented JSON.
func EncodeTMJ(tm *TMJMap, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tm)
}
