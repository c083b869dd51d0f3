package gfx

import (
	"errors"

	"github.com/chewxy/math32"
)

// Vertex layout shared by every mesh: 2D positions, tightly packed,
// starting at attribute slot 0.
const (
	PositionAttrib      = 0
	ComponentsPerVertex = 2
	vertexStrideBytes   = ComponentsPerVertex * 4
)

var errEmptyMesh = errors.New("gfx: mesh needs at least one vertex")
var errOddFloats = errors.New("gfx: mesh positions must come in x,y pairs")

// Mesh is an ordered sequence of 2D vertex positions held host-side until
// uploaded. After Upload the device owns the data and the host keeps only
// the returned Buffer handle.
type Mesh struct {
	positions []float32
}

// NewMesh creates a mesh from x,y position pairs.
func NewMesh(positions []float32) (*Mesh, error) {
	if len(positions) == 0 {
		return nil, errEmptyMesh
	}
	if len(positions)%ComponentsPerVertex != 0 {
		return nil, errOddFloats
	}
	m := &Mesh{positions: make([]float32, len(positions))}
	copy(m.positions, positions)
	return m, nil
}

// Triangle returns the canonical centered triangle.
func Triangle() *Mesh {
	return &Mesh{positions: []float32{
		-0.5, -0.5,
		0.0, 0.5,
		0.5, -0.5,
	}}
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.positions) / ComponentsPerVertex
}

// Positions returns a copy of the position data.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, len(m.positions))
	copy(out, m.positions)
	return out
}

// Bounds returns the axis-aligned min and max corners of the mesh.
func (m *Mesh) Bounds() (min, max [2]float32) {
	min = [2]float32{m.positions[0], m.positions[1]}
	max = min
	for i := 0; i < len(m.positions); i += ComponentsPerVertex {
		min[0] = math32.Min(min[0], m.positions[i])
		min[1] = math32.Min(min[1], m.positions[i+1])
		max[0] = math32.Max(max[0], m.positions[i])
		max[1] = math32.Max(max[1], m.positions[i+1])
	}
	return min, max
}

// Upload transfers the mesh into a device buffer and describes its layout
// to the device.
func (m *Mesh) Upload(dev Device) (Buffer, error) {
	buf, err := dev.CreateBuffer(m.positions)
	if err != nil {
		return 0, err
	}
	dev.SetVertexLayout(PositionAttrib, ComponentsPerVertex, vertexStrideBytes, 0)
	return buf, nil
}
