package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/rtdemo/engine/assets"
	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/components"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/layout"
)

type DrawMode int32

const (
	// DrawDirect issues one draw call per command from the CPU list.
	DrawDirect DrawMode = iota
	// DrawIndirect sources every draw from the GPU command buffer.
	DrawIndirect
)

var drawModeNames = []string{"Direct", "Indirect"}

// defaultLight is placed in every scene, under the ceiling of the box.
var defaultLight = assets.Light{
	Position:  mgl32.Vec3{0, 1.5, 0},
	Color:     mgl32.Vec3{1, 1, 1},
	Intensity: 1,
	Radius:    4,
}

// StaticScene renders one imported model with all meshes merged into a
// single vertex and index buffer. Every mesh becomes one draw command.
type StaticScene struct {
	renderer *renderer.Renderer
	path     string
	camera   *components.Camera
	clock    *core.Clock

	vao             gpu.VertexArray
	vbo             gpu.Buffer
	ibo             gpu.Buffer
	resourceIndices gpu.Buffer
	materials       gpu.Buffer
	lights          gpu.Buffer
	shadowCasters   gpu.Buffer
	cameraBlock     gpu.Buffer
	commandBuffer   gpu.Buffer

	commands    []layout.DrawCommand
	opaque      []int
	transparent []int
	baseLights  []assets.Light
	lightData   []layout.PointLight
	casterData  []layout.ShadowCaster

	drawMode      int32
	animateLights bool
	lightSpeed    float32
	log           string
}

func NewStaticScene(r *renderer.Renderer, path string) *StaticScene {
	return &StaticScene{
		renderer:   r,
		path:       path,
		camera:     components.NewCamera(),
		clock:      core.NewClock(),
		lightSpeed: 0.5,
		log:        "not available",
	}
}

// SetDrawMode switches between direct and indirect submission.
func (s *StaticScene) SetDrawMode(mode DrawMode) {
	s.drawMode = int32(mode)
}

func (s *StaticScene) DrawMode() DrawMode {
	return DrawMode(s.drawMode)
}

func (s *StaticScene) Camera() *components.Camera {
	return s.camera
}

// LightCount is the number of point lights, zero while invalid.
func (s *StaticScene) LightCount() int {
	return len(s.lightData)
}

func (s *StaticScene) CommandCount() int {
	return len(s.commands)
}

func (s *StaticScene) Restore() (err error) {
	defer func() {
		if err != nil {
			s.Invalidate()
			s.log = err.Error()
			core.LogError("failed to restore scene %s: %s", s.path, err)
		}
	}()

	graph, err := s.renderer.Importer.Import(s.path, assets.Triangulate|assets.GenNormals)
	if err != nil {
		return err
	}

	vertices := make([]layout.Vertex, 0, graph.VertexCount())
	indices := make([]uint32, 0, graph.IndexCount())
	resourceIndices := make([]layout.ResourceIndex, 0, len(graph.Meshes))
	commands := make([]layout.DrawCommand, 0, len(graph.Meshes))
	var opaque, transparent []int
	for i := range graph.Meshes {
		mesh := &graph.Meshes[i]
		commands = append(commands, layout.DrawCommand{
			Count:         uint32(3 * len(mesh.Faces)),
			InstanceCount: 1,
			FirstIndex:    uint32(len(indices)),
			BaseVertex:    int32(len(vertices)),
		})
		resourceIndices = append(resourceIndices, layout.ResourceIndex{MaterialIndex: mesh.MaterialIndex})
		if int(mesh.MaterialIndex) < len(graph.Materials) && graph.Materials[mesh.MaterialIndex].Opacity < 1 {
			transparent = append(transparent, i)
		} else {
			opaque = append(opaque, i)
		}
		for v := range mesh.Positions {
			vertices = append(vertices, layout.Vertex{Position: mesh.Positions[v], Normal: mesh.Normals[v]})
		}
		for _, f := range mesh.Faces {
			indices = append(indices, f[0], f[1], f[2])
		}
	}

	materials := make([]layout.Material, len(graph.Materials))
	for i, m := range graph.Materials {
		materials[i] = layout.Material{
			Ambient:       m.Ambient,
			Diffuse:       m.Diffuse,
			Specular:      m.Specular,
			SpecularPower: m.Shininess,
		}
	}

	baseLights := append([]assets.Light{defaultLight}, graph.Lights...)
	lightData := make([]layout.PointLight, len(baseLights))
	casterData := make([]layout.ShadowCaster, len(baseLights))
	placeLights(baseLights, 0, lightData, casterData)

	dev := s.renderer.Device
	var vbo, ibo, resourceBuf, materialBuf, lightBuf, casterBuf, cameraBuf, commandBuf gpu.Buffer
	defer func() {
		vbo.Delete()
		ibo.Delete()
		resourceBuf.Delete()
		materialBuf.Delete()
		lightBuf.Delete()
		casterBuf.Delete()
		cameraBuf.Delete()
		commandBuf.Delete()
	}()

	uploads := []struct {
		name   string
		buf    *gpu.Buffer
		target gpu.Enum
		data   []byte
		size   int
		flags  gpu.Enum
	}{
		{"vertex", &vbo, gpu.ARRAY_BUFFER, gpu.Bytes(vertices), 0, 0},
		{"index", &ibo, gpu.ELEMENT_ARRAY_BUFFER, gpu.Bytes(indices), 0, 0},
		{"resource index", &resourceBuf, gpu.SHADER_STORAGE_BUFFER, gpu.Bytes(resourceIndices), 0, 0},
		{"material", &materialBuf, gpu.SHADER_STORAGE_BUFFER, gpu.Bytes(materials), 0, 0},
		{"light", &lightBuf, gpu.SHADER_STORAGE_BUFFER, gpu.Bytes(lightData), 0, gpu.DYNAMIC_STORAGE_BIT},
		{"shadow caster", &casterBuf, gpu.SHADER_STORAGE_BUFFER, gpu.Bytes(casterData), 0, gpu.DYNAMIC_STORAGE_BIT},
		{"camera", &cameraBuf, gpu.UNIFORM_BUFFER, nil, gpu.SizeOf[layout.Camera](), gpu.DYNAMIC_STORAGE_BIT},
		{"draw command", &commandBuf, gpu.DRAW_INDIRECT_BUFFER, gpu.Bytes(commands), 0, 0},
	}
	for _, u := range uploads {
		if !u.buf.Gen(dev) {
			return fmt.Errorf("%s buffer: %w", u.name, core.ErrAllocation)
		}
		size := u.size
		if size == 0 {
			size = len(u.data)
		}
		u.buf.Storage(u.target, size, u.data, u.flags)
	}
	dev.BindBuffer(gpu.ELEMENT_ARRAY_BUFFER, 0)

	stride := int32(gpu.SizeOf[layout.Vertex]())
	var vao gpu.VertexArray
	ok := gpu.NewVertexArrayBuilder().
		IndexBuffer(&ibo).
		VertexBuffer(&vbo).
		Attribute(gpu.VertexAttribute{Location: layout.AttribPosition, Size: 3, Type: gpu.FLOAT, Stride: stride, Offset: 0}).
		Attribute(gpu.VertexAttribute{Location: layout.AttribNormal, Size: 3, Type: gpu.FLOAT, Stride: stride, Offset: 12}).
		Build(dev, &vao)
	if !ok {
		return fmt.Errorf("vertex array: %w", core.ErrAllocation)
	}

	s.vao.Take(&vao)
	s.vbo.Take(&vbo)
	s.ibo.Take(&ibo)
	s.resourceIndices.Take(&resourceBuf)
	s.materials.Take(&materialBuf)
	s.lights.Take(&lightBuf)
	s.shadowCasters.Take(&casterBuf)
	s.cameraBlock.Take(&cameraBuf)
	s.commandBuffer.Take(&commandBuf)

	s.commands = commands
	s.opaque = opaque
	s.transparent = transparent
	s.baseLights = baseLights
	s.lightData = lightData
	s.casterData = casterData
	s.camera.Reset()
	s.clock.Start()
	s.log = fmt.Sprintf("%d meshes, %d vertices, %d lights", len(commands), len(vertices), len(lightData))
	core.LogInfo("restored scene %s: %s", s.path, s.log)
	return nil
}

func (s *StaticScene) Invalidate() error {
	s.vao.Delete()
	s.vbo.Delete()
	s.ibo.Delete()
	s.resourceIndices.Delete()
	s.materials.Delete()
	s.lights.Delete()
	s.shadowCasters.Delete()
	s.cameraBlock.Delete()
	s.commandBuffer.Delete()

	s.commands = nil
	s.opaque = nil
	s.transparent = nil
	s.baseLights = nil
	s.lightData = nil
	s.casterData = nil
	s.clock.Stop()
	s.log = "not available"
	return nil
}

func (s *StaticScene) Update() {
	if !s.vao.Valid() {
		return
	}
	s.clock.Update()

	s.camera.SetViewport(s.renderer.ScreenSize())
	s.cameraBlock.SubData(gpu.UNIFORM_BUFFER, 0, gpu.BytesOf(s.camera.Block()))

	if s.animateLights {
		angle := float32(s.clock.Elapsed()) * s.lightSpeed
		placeLights(s.baseLights, angle, s.lightData, s.casterData)
		s.lights.SubData(gpu.SHADER_STORAGE_BUFFER, 0, gpu.Bytes(s.lightData))
		s.shadowCasters.SubData(gpu.SHADER_STORAGE_BUFFER, 0, gpu.Bytes(s.casterData))
	}
}

func (s *StaticScene) UpdateGUI() {
	ui := s.renderer.UI
	if ui.Begin("StaticScene") {
		ui.Combo("draw mode", &s.drawMode, drawModeNames)
		ui.Checkbox("animate lights", &s.animateLights)
		ui.SliderFloat("light speed", &s.lightSpeed, 0, 4)
		if ui.DragFloat("camera yaw", &s.camera.Yaw, 0.01, -math.Pi, math.Pi) {
			s.camera.IsDirty = true
		}
		if ui.DragFloat("camera pitch", &s.camera.Pitch, 0.01, -1.5, 1.5) {
			s.camera.IsDirty = true
		}
		if ui.SliderFloat("camera distance", &s.camera.Distance, 0.5, 20) {
			s.camera.IsDirty = true
		}
		if ui.Button("reset camera") {
			s.camera.Reset()
		}
		ui.Text("%s", s.log)
	}
	ui.End()
}

func (s *StaticScene) Apply(kind ApplyType) {
	if !s.vao.Valid() {
		return
	}
	s.vao.Bind()
	switch kind {
	case Shade:
		s.cameraBlock.BindBase(gpu.UNIFORM_BUFFER, layout.UniformCamera)
		s.resourceIndices.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageResourceIndex)
		s.materials.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageMaterial)
		s.lights.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageLight)
		s.shadowCasters.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageShadowCaster)
	case NoShade:
		s.cameraBlock.BindBase(gpu.UNIFORM_BUFFER, layout.UniformCamera)
		s.resourceIndices.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageResourceIndex)
	case Light:
		s.cameraBlock.BindBase(gpu.UNIFORM_BUFFER, layout.UniformCamera)
		s.lights.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageLight)
	case Shadow:
		s.resourceIndices.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageResourceIndex)
		s.shadowCasters.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageShadowCaster)
	case LightShadow:
		s.cameraBlock.BindBase(gpu.UNIFORM_BUFFER, layout.UniformCamera)
		s.lights.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageLight)
		s.shadowCasters.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageShadowCaster)
	}
}

func (s *StaticScene) Draw(kind DrawType) {
	if !s.vao.Valid() {
		return
	}
	switch kind {
	case Opaque:
		s.drawCommands(s.opaque)
	case Transparent:
		s.drawCommands(s.transparent)
	case LightVolume:
		s.renderer.LightQuad().Bind()
		s.renderer.Device.DrawArraysInstanced(gpu.TRIANGLE_STRIP, 0, 4, int32(len(s.lightData)))
		s.vao.Bind()
	}
}

func (s *StaticScene) drawCommands(selection []int) {
	if len(selection) == 0 {
		return
	}
	dev := s.renderer.Device
	const indexSize = 4
	switch DrawMode(s.drawMode) {
	case DrawIndirect:
		s.commandBuffer.Bind(gpu.DRAW_INDIRECT_BUFFER)
		for _, i := range selection {
			dev.Uniform1ui(layout.LocationDrawID, uint32(i))
			dev.DrawElementsIndirect(gpu.TRIANGLES, gpu.UNSIGNED_INT, i*gpu.SizeOf[layout.DrawCommand]())
		}
		dev.BindBuffer(gpu.DRAW_INDIRECT_BUFFER, 0)
	default:
		for _, i := range selection {
			c := s.commands[i]
			dev.Uniform1ui(layout.LocationDrawID, uint32(i))
			dev.DrawElementsInstancedBaseVertexBaseInstance(gpu.TRIANGLES, int32(c.Count), gpu.UNSIGNED_INT,
				int(c.FirstIndex)*indexSize, int32(c.InstanceCount), c.BaseVertex, c.BaseInstance)
		}
	}
}

// placeLights rotates the lights about the vertical axis through the origin
// and derives a downward-looking shadow caster for each.
func placeLights(base []assets.Light, angle float32, lights []layout.PointLight, casters []layout.ShadowCaster) {
	rot := mgl32.Rotate3DY(angle)
	proj := mgl32.Perspective(mgl32.DegToRad(120), 1, 0.05, 10)
	for i, l := range base {
		pos := l.Position
		if i == 0 {
			// emissive lights stay with their geometry, only the default one orbits
			pos = rot.Mul3x1(pos.Add(mgl32.Vec3{0.5, 0, 0}))
		}
		lights[i] = layout.PointLight{
			PositionW: pos,
			Radius:    l.Radius,
			Color:     l.Color,
			Intensity: l.Intensity,
		}
		view := mgl32.LookAtV(pos, pos.Sub(mgl32.Vec3{0, 1, 0}), mgl32.Vec3{0, 0, -1})
		casters[i] = layout.ShadowCaster{ViewProj: proj.Mul4(view)}
	}
}
