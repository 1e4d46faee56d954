package technique_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/rtdemo/engine/assets/loaders"
	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/gui/guitest"
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu/gputest"
	"github.com/spaghettifunk/rtdemo/engine/scene/scenetest"
	"github.com/spaghettifunk/rtdemo/engine/technique"
)

type fixture struct {
	dev      *gputest.Device
	ui       *guitest.UI
	renderer *renderer.Renderer
	scene    *scenetest.Scene
}

func shaderSource(name string) string {
	return "#version 460\n// " + name + "\n"
}

func newFixture(t *testing.T, shaders []string) *fixture {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, name := range shaders {
		fsys["shaders/"+name] = &fstest.MapFile{Data: []byte(shaderSource(name))}
	}
	sl := loaders.NewShaderLoader(fsys)
	sl.SetRoot("shaders")

	dev := gputest.New()
	ui := guitest.New()
	return &fixture{
		dev:      dev,
		ui:       ui,
		renderer: renderer.New(dev, sl, nil, ui, 1280, 720),
		scene:    scenetest.New(dev),
	}
}

type testCase struct {
	name    string
	shaders []string
	create  func(r *renderer.Renderer) technique.Technique
}

var techniques = []testCase{
	{
		name:    "ForwardShading",
		shaders: []string{"forward_shading.vert", "forward_shading.frag"},
		create:  func(r *renderer.Renderer) technique.Technique { return technique.NewForwardShading(r) },
	},
	{
		name: "DeferredShading",
		shaders: []string{
			"deferred_shading_p0.vert", "deferred_shading_p0.frag",
			"deferred_shading_p1.vert", "deferred_shading_p1.frag",
		},
		create: func(r *renderer.Renderer) technique.Technique { return technique.NewDeferredShading(r) },
	},
	{
		name:    "ShadowMapping",
		shaders: []string{"shadow_mapping_p0.vert", "shadow_mapping_p1.vert", "shadow_mapping_p1.frag"},
		create:  func(r *renderer.Renderer) technique.Technique { return technique.NewShadowMapping(r) },
	},
	{
		name: "TiledForwardShading",
		shaders: []string{
			"tiled_forward_shading_p0.vert", "tiled_forward_shading_p0.frag",
			"tiled_forward_shading_p1.comp",
			"tiled_forward_shading_p2.vert", "tiled_forward_shading_p2.frag",
		},
		create: func(r *renderer.Renderer) technique.Technique { return technique.NewTiledForwardShading(r) },
	},
	{
		name: "VolumetricFog",
		shaders: []string{
			"volumetric_fog/p0.comp", "volumetric_fog/p1.comp",
			"volumetric_fog/p2.vert", "volumetric_fog/p2.frag",
		},
		create: func(r *renderer.Renderer) technique.Technique { return technique.NewVolumetricFog(r) },
	},
}

func allocations(dev *gputest.Device) int {
	n := 0
	for _, op := range dev.Ops() {
		if strings.HasPrefix(op, "Gen") {
			n++
		}
	}
	return n
}

func TestRestoreAndInvalidate(t *testing.T) {
	for _, tc := range techniques {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.shaders)
			tech := tc.create(f.renderer)

			require.NoError(t, tech.Invalidate())
			require.NoError(t, tech.Restore())
			assert.Positive(t, f.dev.Live())
			assert.Zero(t, f.dev.LiveOf(gputest.KindShader))

			require.NoError(t, tech.Invalidate())
			require.NoError(t, tech.Invalidate())
			assert.Zero(t, f.dev.Live())

			require.NoError(t, tech.Restore())
			assert.Positive(t, f.dev.Live())
		})
	}
}

func TestRestoreFailsOnEveryShader(t *testing.T) {
	for _, tc := range techniques {
		for _, shader := range tc.shaders {
			t.Run(tc.name+"/"+shader, func(t *testing.T) {
				f := newFixture(t, tc.shaders)
				f.dev.FailCompile = gputest.FailSourcesContaining(shaderSource(shader))
				tech := tc.create(f.renderer)

				err := tech.Restore()
				require.ErrorIs(t, err, core.ErrShaderCompile)
				assert.Contains(t, err.Error(), shader)
				assert.Zero(t, f.dev.Live())

				f.dev.Reset()
				tech.Update()
				tech.Apply(f.scene)
				assert.Empty(t, f.dev.Calls())
			})
		}
	}
}

func TestRestoreFailsOnEveryAllocation(t *testing.T) {
	for _, tc := range techniques {
		t.Run(tc.name, func(t *testing.T) {
			probe := newFixture(t, tc.shaders)
			require.NoError(t, tc.create(probe.renderer).Restore())
			total := allocations(probe.dev)
			require.Positive(t, total)

			for n := 1; n <= total; n++ {
				f := newFixture(t, tc.shaders)
				f.dev.FailAllocAt = n
				tech := tc.create(f.renderer)

				assert.Error(t, tech.Restore(), "allocation %d", n)
				assert.Zero(t, f.dev.Live(), "allocation %d", n)
			}
		})
	}
}

func TestRestoreFailsOnLink(t *testing.T) {
	for _, tc := range techniques {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.shaders)
			f.dev.FailLink = true
			tech := tc.create(f.renderer)

			assert.ErrorIs(t, tech.Restore(), core.ErrProgramLink)
			assert.Zero(t, f.dev.Live())
		})
	}
}

func TestRestoreFailsOnMissingShader(t *testing.T) {
	for _, tc := range techniques {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.shaders[1:])
			assert.Error(t, tc.create(f.renderer).Restore())
			assert.Zero(t, f.dev.Live())
		})
	}
}

func TestApplyBeforeRestoreIsNoop(t *testing.T) {
	for _, tc := range techniques {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.shaders)
			tech := tc.create(f.renderer)
			tech.Update()
			tech.Apply(f.scene)
			assert.Empty(t, f.dev.Calls())
			assert.Empty(t, f.scene.Applied)
		})
	}
}

func TestUpdateGUIBalancesWindows(t *testing.T) {
	for _, tc := range techniques {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.shaders)
			tech := tc.create(f.renderer)
			tech.UpdateGUI()
			assert.Zero(t, f.ui.Open())
			assert.Contains(t, f.ui.Texts, "not available")

			require.NoError(t, tech.Restore())
			f.ui.Reset()
			tech.UpdateGUI()
			assert.Contains(t, f.ui.Texts, "succeeded")
		})
	}
}
