package glb

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/Charliewilliams270/football-stadium-creator/stadium"
)

func exportTestPlan(t *testing.T) []byte {
	t.Helper()
	p, err := stadium.NewPlan(24, 4)
	if err != nil {
		t.Fatal(err)
	}
	p.Place(stadium.Pitch, 0, 0)
	p.Place(stadium.Stand, 1, 0)
	p.Place(stadium.Flag, 23, 23)
	out, err := Export(p)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestExportContainerLayout(t *testing.T) {
	out := exportTestPlan(t)

	if got := binary.LittleEndian.Uint32(out[0:4]); got != glbMagic {
		t.Fatalf("magic = %#x", got)
	}
	if got := binary.LittleEndian.Uint32(out[4:8]); got != glbVersion {
		t.Fatalf("version = %d", got)
	}
	if got := binary.LittleEndian.Uint32(out[8:12]); int(got) != len(out) {
		t.Fatalf("declared length %d, actual %d", got, len(out))
	}

	jsonLen := binary.LittleEndian.Uint32(out[12:16])
	if jsonLen%4 != 0 {
		t.Fatalf("JSON chunk length %d not 4-byte aligned", jsonLen)
	}
	if got := binary.LittleEndian.Uint32(out[16:20]); got != chunkJSON {
		t.Fatalf("first chunk type = %#x, want JSON", got)
	}

	binOffset := 20 + int(jsonLen)
	binLen := binary.LittleEndian.Uint32(out[binOffset : binOffset+4])
	if binLen%4 != 0 {
		t.Fatalf("BIN chunk length %d not 4-byte aligned", binLen)
	}
	if got := binary.LittleEndian.Uint32(out[binOffset+4 : binOffset+8]); got != chunkBIN {
		t.Fatalf("second chunk type = %#x, want BIN", got)
	}
	if binOffset+8+int(binLen) != len(out) {
		t.Fatal("chunks do not account for the whole stream")
	}
}

func TestExportSceneContents(t *testing.T) {
	out := exportTestPlan(t)
	jsonLen := binary.LittleEndian.Uint32(out[12:16])

	var doc gltfDoc
	if err := json.Unmarshal(out[20:20+jsonLen], &doc); err != nil {
		t.Fatalf("JSON chunk does not parse: %v", err)
	}
	if doc.Asset.Version != "2.0" {
		t.Fatalf("asset version = %q", doc.Asset.Version)
	}
	// one node per placement, nothing else (no ground plane, no helper)
	if len(doc.Nodes) != 3 {
		t.Fatalf("%d nodes, want 3", len(doc.Nodes))
	}
	if len(doc.Scenes[0].Nodes) != 3 {
		t.Fatalf("scene references %d nodes", len(doc.Scenes[0].Nodes))
	}
	if len(doc.Materials) != len(buildOrder) || len(doc.Meshes) != len(buildOrder) {
		t.Fatalf("materials/meshes = %d/%d", len(doc.Materials), len(doc.Meshes))
	}
}

func TestExportNodePlacement(t *testing.T) {
	p, _ := stadium.NewPlan(8, 4)
	p.Place(stadium.Dugout, 0, 0)
	out, err := Export(p)
	if err != nil {
		t.Fatal(err)
	}
	jsonLen := binary.LittleEndian.Uint32(out[12:16])
	var doc gltfDoc
	if err := json.Unmarshal(out[20:20+jsonLen], &doc); err != nil {
		t.Fatal(err)
	}
	wantX, wantZ := stadium.PlacementPosition(0, 0, 8, 4)
	node := doc.Nodes[0]
	if node.Translation[0] != wantX || node.Translation[2] != wantZ {
		t.Fatalf("translation = %v, want x=%v z=%v", node.Translation, wantX, wantZ)
	}
	if node.Translation[1] != 0 {
		t.Fatal("placements sit on the ground plane")
	}
}

func TestExportEmptyPlan(t *testing.T) {
	p, _ := stadium.NewPlan(8, 4)
	out, err := Export(p)
	if err != nil {
		t.Fatal(err)
	}
	jsonLen := binary.LittleEndian.Uint32(out[12:16])
	var doc gltfDoc
	if err := json.Unmarshal(out[20:20+jsonLen], &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Nodes) != 0 {
		t.Fatalf("empty plan exported %d nodes", len(doc.Nodes))
	}
}
