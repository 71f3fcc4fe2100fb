package internal

import (
	"errors"
	"fmt"

	"graphics.gd/classdb/ArrayMesh"
	"graphics.gd/classdb/Engine"
	"graphics.gd/classdb/Mesh"
	"graphics.gd/classdb/MeshInstance3D"
	"graphics.gd/classdb/RenderingDevice"
	"graphics.gd/classdb/RenderingServer"
	"graphics.gd/classdb/Resource"
	"graphics.gd/classdb/Shader"
	"graphics.gd/classdb/ShaderMaterial"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Packed"
)

// ErrNoRenderingDevice is raised when the active renderer has no GPU
// rendering device. The per-point transform has to run on the GPU to
// hold frame rate with thousands of points, there is no sequential CPU
// fallback.
var ErrNoRenderingDevice = errors.New("no rendering device, the orb needs the Forward+ or Mobile renderer")

// Orb renders the companion's presence as a field of points morphing
// between a sphere formation while idle and wavy horizontal lines while
// a reply is being generated, the whole formation slowly rotating.
//
// The point buffers are generated once in Ready and never touched
// again. All per-point motion happens in the vertex stage of
// res://shader/points.gdshader, so a frame costs two uniform writes no
// matter how many points are in the field.
type Orb struct {
	MeshInstance3D.Extension[Orb] `gd:"HaloOrb"`

	// processing is the external busy/idle signal, polled once per
	// frame by the morph controller. It may observe a flip one frame
	// late, which is fine.
	processing func() bool

	shader ShaderMaterial.Instance
	mesh   ArrayMesh.Instance
	clock  *FrameClock
}

func (orb *Orb) Ready() {
	if RenderingServer.GetRenderingDevice() == (RenderingDevice.Instance{}) {
		orb.fail(ErrNoRenderingDevice)
		return
	}
	sphere, err := SphereLayout(FieldPoints, FieldScale)
	if err != nil {
		orb.fail(fmt.Errorf("sphere layout: %w", err))
		return
	}
	wave, err := WaveLayout(FieldPoints, FieldLines, FieldLineSpacing, FieldWidth)
	if err != nil {
		orb.fail(fmt.Errorf("wave layout: %w", err))
		return
	}
	colors, err := FieldColors(FieldPoints, FieldPalette)
	if err != nil {
		orb.fail(fmt.Errorf("field colors: %w", err))
		return
	}

	orb.mesh = ArrayMesh.New()
	// The wave pose rides a float custom channel, its coordinates leave
	// the unit ball so the compressed normal channel cannot carry them.
	var arrays = [Mesh.ArrayMax]any{
		Mesh.ArrayVertex:  Packed.New(sphere...),
		Mesh.ArrayCustom0: AttributeChannel(wave),
		Mesh.ArrayColor:   Packed.New(colors...),
	}
	ArrayMesh.Expanded(orb.mesh).AddSurfaceFromArrays(Mesh.PrimitivePoints, arrays[:], nil, nil,
		Mesh.ArrayFormat(Mesh.ArrayCustomRgbFloat)<<Mesh.ArrayFormatCustom0Shift,
	)

	orb.shader = ShaderMaterial.New()
	orb.shader.SetShader(Resource.Load[Shader.Instance]("res://shader/points.gdshader"))
	orb.shader.SetShaderParameter("time", 0.0)
	orb.shader.SetShaderParameter("blend", 0.0)

	orb.AsMeshInstance3D().SetMesh(orb.mesh.AsMesh())
	orb.AsGeometryInstance3D().SetMaterialOverride(orb.shader.AsMaterial())

	orb.clock = NewFrameClock(NewMorph(orb.processing))
	orb.clock.Start(func(time, blend Float.X) {
		orb.shader.SetShaderParameter("time", time)
		orb.shader.SetShaderParameter("blend", blend)
	})
}

func (orb *Orb) Process(dt Float.X) {
	if orb.clock == nil {
		return
	}
	orb.clock.Tick(dt)
}

func (orb *Orb) ExitTree() {
	if orb.clock != nil {
		orb.clock.Stop()
	}
	if orb.mesh != (ArrayMesh.Instance{}) {
		orb.mesh.ClearSurfaces()
	}
}

// fail raises err and parks the node, nothing will be rendered.
func (orb *Orb) fail(err error) {
	Engine.Raise(err)
	orb.AsNode().SetProcess(false)
}
