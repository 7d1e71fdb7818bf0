// Package glb writes an arena plan as a binary glTF 2.0 container (.glb):
// a unit cube mesh per tile kind, one node per placement, and nothing else: no
// ground plane and no grid helper, only placed-tile geometry.
package glb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"

	"github.com/Charliewilliams270/football-stadium-creator/stadium"
)

const (
	glbMagic     = 0x46546C67 // "glTF"
	glbVersion   = 2
	chunkJSON    = 0x4E4F534A // "JSON"
	chunkBIN     = 0x004E4942 // "BIN\0"
	floatType    = 5126
	ushortType   = 5123
	arrayBuffer  = 34962
	elementArray = 34963
)

// buildOrder fixes material/mesh indices so output is stable.
var buildOrder = []stadium.TileKind{stadium.Pitch, stadium.Stand, stadium.Dugout, stadium.Flag}

// kindColor is the baseColorFactor per kind, matching the raster palette.
var kindColor = map[stadium.TileKind][4]float64{
	stadium.Pitch:  {0.18, 0.55, 0.34, 1},
	stadium.Stand:  {0.55, 0.35, 0.17, 1},
	stadium.Dugout: {0.44, 0.50, 0.56, 1},
	stadium.Flag:   {1.00, 0.84, 0.00, 1},
}

// kindHeight is the extrusion height per kind, in cell units.
var kindHeight = map[stadium.TileKind]float64{
	stadium.Pitch:  0.05,
	stadium.Stand:  0.80,
	stadium.Dugout: 0.40,
	stadium.Flag:   1.60,
}

type gltfDoc struct {
	Asset       gltfAsset        `json:"asset"`
	Scene       int              `json:"scene"`
	Scenes      []gltfScene      `json:"scenes"`
	Nodes       []gltfNode       `json:"nodes"`
	Meshes      []gltfMesh       `json:"meshes"`
	Materials   []gltfMaterial   `json:"materials"`
	Accessors   []gltfAccessor   `json:"accessors"`
	BufferViews []gltfBufferView `json:"bufferViews"`
	Buffers     []gltfBuffer     `json:"buffers"`
}

type gltfAsset struct {
	Version   string `json:"version"`
	Generator string `json:"generator"`
}

type gltfScene struct {
	Nodes []int `json:"nodes"`
}

type gltfNode struct {
	Mesh        int        `json:"mesh"`
	Translation [3]float64 `json:"translation"`
	Scale       [3]float64 `json:"scale"`
}

type gltfMesh struct {
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
	Material   int            `json:"material"`
}

type gltfMaterial struct {
	Name string  `json:"name"`
	PBR  gltfPBR `json:"pbrMetallicRoughness"`
}

type gltfPBR struct {
	BaseColorFactor [4]float64 `json:"baseColorFactor"`
	MetallicFactor  float64    `json:"metallicFactor"`
}

type gltfAccessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float64 `json:"min,omitempty"`
	Max           []float64 `json:"max,omitempty"`
}

type gltfBufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target"`
}

type gltfBuffer struct {
	ByteLength int `json:"byteLength"`
}

// unit cube: x,z in [-0.5,0.5], y in [0,1] so scaling keeps the base on the
// ground plane
var cubePositions = []float32{
	-0.5, 0, -0.5, 0.5, 0, -0.5, 0.5, 0, 0.5, -0.5, 0, 0.5,
	-0.5, 1, -0.5, 0.5, 1, -0.5, 0.5, 1, 0.5, -0.5, 1, 0.5,
}

var cubeIndices = []uint16{
	0, 2, 1, 0, 3, 2, // bottom
	4, 5, 6, 4, 6, 7, // top
	0, 1, 5, 0, 5, 4,
	1, 2, 6, 1, 6, 5,
	2, 3, 7, 2, 7, 6,
	3, 0, 4, 3, 4, 7,
}

// Export serializes the plan's placements as a GLB byte stream.
func Export(p *stadium.Plan) ([]byte, error) {
	bin := buildBinChunk()
	doc, err := buildDoc(p, len(bin))
	if err != nil {
		return nil, err
	}
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	// both chunks must be 4-byte aligned: JSON pads with spaces, BIN with
	// zeros
	jsonBytes = pad(jsonBytes, ' ')
	bin = pad(bin, 0)

	total := 12 + 8 + len(jsonBytes) + 8 + len(bin)
	out := new(bytes.Buffer)
	for _, v := range []uint32{glbMagic, glbVersion, uint32(total), uint32(len(jsonBytes)), chunkJSON} {
		binary.Write(out, binary.LittleEndian, v)
	}
	out.Write(jsonBytes)
	for _, v := range []uint32{uint32(len(bin)), chunkBIN} {
		binary.Write(out, binary.LittleEndian, v)
	}
	out.Write(bin)
	return out.Bytes(), nil
}

func buildBinChunk() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, cubePositions)
	binary.Write(buf, binary.LittleEndian, cubeIndices)
	return buf.Bytes()
}

func buildDoc(p *stadium.Plan, binLen int) (*gltfDoc, error) {
	posLen := len(cubePositions) * 4
	idxLen := len(cubeIndices) * 2

	doc := &gltfDoc{
		Asset:  gltfAsset{Version: "2.0", Generator: "football-stadium-creator"},
		Scene:  0,
		Scenes: []gltfScene{{Nodes: []int{}}},
		Accessors: []gltfAccessor{
			{BufferView: 0, ComponentType: floatType, Count: len(cubePositions) / 3, Type: "VEC3",
				Min: []float64{-0.5, 0, -0.5}, Max: []float64{0.5, 1, 0.5}},
			{BufferView: 1, ComponentType: ushortType, Count: len(cubeIndices), Type: "SCALAR"},
		},
		BufferViews: []gltfBufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: posLen, Target: arrayBuffer},
			{Buffer: 0, ByteOffset: posLen, ByteLength: idxLen, Target: elementArray},
		},
		Buffers: []gltfBuffer{{ByteLength: binLen}},
	}

	meshIndex := map[stadium.TileKind]int{}
	for _, kind := range buildOrder {
		meshIndex[kind] = len(doc.Meshes)
		doc.Materials = append(doc.Materials, gltfMaterial{
			Name: kind.String(),
			PBR:  gltfPBR{BaseColorFactor: kindColor[kind], MetallicFactor: 0},
		})
		doc.Meshes = append(doc.Meshes, gltfMesh{
			Primitives: []gltfPrimitive{{
				Attributes: map[string]int{"POSITION": 0},
				Indices:    1,
				Material:   meshIndex[kind],
			}},
		})
	}

	n := p.Dimension()
	cell := p.CellSize()
	for _, it := range p.Items() {
		mi, ok := meshIndex[it.Kind]
		if !ok {
			return nil, errors.New("glb: placement kind has no geometry")
		}
		x, z := stadium.PlacementPosition(it.IX, it.IZ, n, cell)
		h := kindHeight[it.Kind] * cell
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes))
		doc.Nodes = append(doc.Nodes, gltfNode{
			Mesh:        mi,
			Translation: [3]float64{round(x), 0, round(z)},
			Scale:       [3]float64{cell * 0.94, h, cell * 0.94},
		})
	}
	return doc, nil
}

func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func pad(b []byte, fill byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, fill)
	}
	return b
}
