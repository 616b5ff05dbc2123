package gltext

import "github.com/gogpu/gputypes"

// Shader locations of the batch vertex attributes.
const (
	PositionLocation = 0
	TexCoordLocation = 1
	ColorLocation    = 2
)

// Draw-call description of a Batch.
const (
	// IndexFormat is the format of Batch.Indices.
	IndexFormat = gputypes.IndexFormatUint32

	// Topology is the primitive topology of a Batch.
	Topology = gputypes.PrimitiveTopologyTriangleList

	// AtlasTextureFormat is the texture format of an atlas bitmap.
	AtlasTextureFormat = gputypes.TextureFormatR8Unorm
)

// VertexBufferLayouts returns the layouts of the three vertex buffers of a
// Batch, in the order Vertices, TexCoords, Colors.
func VertexBufferLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: 8,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: PositionLocation},
			},
		},
		{
			ArrayStride: 8,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: TexCoordLocation},
			},
		},
		{
			ArrayStride: 16,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: ColorLocation},
			},
		},
	}
}

// BufferSizes returns the byte sizes of the vertex, texture coordinate,
// color and index buffers of b.
func (b *Batch) BufferSizes() (vertices, texCoords, colors, indices int) {
	return 4 * len(b.Vertices), 4 * len(b.TexCoords), 4 * len(b.Colors), 4 * len(b.Indices)
}
