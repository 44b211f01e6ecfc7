package models

import (
	"Pathfinder/astar"

	"github.com/golang/protobuf/proto"
)

// StepFrame is one observation of a running search, streamed over the
// websocket as protobuf. Cells holds one layout glyph per cell, row-major.
type StepFrame struct {
	Step      int32   `protobuf:"varint,1,opt,name=step,proto3" json:"step"`
	Status    int32   `protobuf:"varint,2,opt,name=status,proto3" json:"status"`
	Dimension int32   `protobuf:"varint,3,opt,name=dimension,proto3" json:"dimension"`
	Cells     []byte  `protobuf:"bytes,4,opt,name=cells,proto3" json:"cells,omitempty"`
	Expanded  int32   `protobuf:"varint,5,opt,name=expanded,proto3" json:"expanded"`
	Path      []int32 `protobuf:"varint,6,rep,packed,name=path,proto3" json:"path,omitempty"`
}

func (m *StepFrame) Reset()         { *m = StepFrame{} }
func (m *StepFrame) String() string { return proto.CompactTextString(m) }
func (m *StepFrame) ProtoMessage()  {}

// NewStepFrame captures the grid as it stands. Path is filled once the engine
// has found the end, as flattened row*dimension+col indices.
func NewStepFrame(step int, grid *astar.Grid, engine *astar.Engine) *StepFrame {
	dim := grid.Dimension()
	frame := &StepFrame{
		Step:      int32(step),
		Status:    int32(engine.Status()),
		Dimension: int32(dim),
		Cells:     make([]byte, 0, dim*dim),
		Expanded:  int32(engine.Expanded()),
	}
	for _, row := range grid.Rows() {
		frame.Cells = append(frame.Cells, row...)
	}
	for _, n := range engine.Path() {
		frame.Path = append(frame.Path, int32(n.Row()*dim+n.Col()))
	}
	return frame
}

func (m *StepFrame) Marshal() ([]byte, error) {
	return proto.Marshal(m)
}

func DecodeStepFrame(b []byte) (*StepFrame, error) {
	frame := new(StepFrame)
	if err := proto.Unmarshal(b, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

func (m *StepFrame) SearchStatus() astar.Status { return astar.Status(m.Status) }

// Rows splits Cells back into layout rows.
func (m *StepFrame) Rows() []string {
	dim := int(m.Dimension)
	if dim <= 0 || len(m.Cells) != dim*dim {
		return nil
	}
	rows := make([]string, dim)
	for i := range rows {
		rows[i] = string(m.Cells[i*dim : (i+1)*dim])
	}
	return rows
}

// PathCells decodes the flattened path indices.
func (m *StepFrame) PathCells() []Cell {
	dim := int(m.Dimension)
	if dim <= 0 {
		return nil
	}
	cells := make([]Cell, 0, len(m.Path))
	for _, idx := range m.Path {
		cells = append(cells, Cell{int(idx) / dim, int(idx) % dim})
	}
	return cells
}

// FrameResponse is the JSON form of a StepFrame.
type FrameResponse struct {
	Step     int      `json:"step"`
	Status   string   `json:"status"`
	Expanded int      `json:"expanded"`
	Grid     []string `json:"grid"`
	Path     []Cell   `json:"path,omitempty"`
}

func (m *StepFrame) JSON() FrameResponse {
	return FrameResponse{
		Step:     int(m.Step),
		Status:   m.SearchStatus().String(),
		Expanded: int(m.Expanded),
		Grid:     m.Rows(),
		Path:     m.PathCells(),
	}
}
