// Package scene defines what a technique can ask of the geometry it renders
// and provides the scenes shipped with the demo.
package scene

// ApplyType selects which resources Apply binds.
//
//	Shade        camera, resource indices, materials, lights, shadow casters
//	NoShade      camera, resource indices
//	Light        camera, lights
//	Shadow       resource indices, shadow casters
//	LightShadow  camera, lights, shadow casters
type ApplyType uint8

const (
	Shade ApplyType = iota
	NoShade
	Light
	Shadow
	LightShadow
)

func (t ApplyType) String() string {
	switch t {
	case Shade:
		return "shade"
	case NoShade:
		return "no-shade"
	case Light:
		return "light"
	case Shadow:
		return "shadow"
	case LightShadow:
		return "light-shadow"
	default:
		return "unknown"
	}
}

// DrawType selects which geometry Draw submits.
type DrawType uint8

const (
	Opaque DrawType = iota
	Transparent
	// LightVolume draws one instanced quad per light.
	LightVolume
)

func (t DrawType) String() string {
	switch t {
	case Opaque:
		return "opaque"
	case Transparent:
		return "transparent"
	case LightVolume:
		return "light-volume"
	default:
		return "unknown"
	}
}

// Scene owns geometry and per-scene GPU data.
//
// Restore creates every resource; on failure nothing it created stays
// allocated. Invalidate releases everything, may be called any number of
// times and on a scene that was never restored. Update, Apply and Draw do
// nothing while the scene is not restored.
type Scene interface {
	Restore() error
	Invalidate() error
	Update()
	UpdateGUI()
	Apply(kind ApplyType)
	Draw(kind DrawType)
}
