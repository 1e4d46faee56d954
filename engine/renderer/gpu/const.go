package gpu

// Enum carries OpenGL enumerant values. The names and values mirror the
// GL registry so the opengl device can pass them through unchanged.
type Enum uint32

const (
	NONE Enum = 0
	ZERO Enum = 0
	ONE  Enum = 1

	// shader stages
	VERTEX_SHADER   Enum = 0x8B31
	FRAGMENT_SHADER Enum = 0x8B30
	COMPUTE_SHADER  Enum = 0x91B9

	// buffer targets
	ARRAY_BUFFER          Enum = 0x8892
	ELEMENT_ARRAY_BUFFER  Enum = 0x8893
	UNIFORM_BUFFER        Enum = 0x8A11
	SHADER_STORAGE_BUFFER Enum = 0x90D2
	DRAW_INDIRECT_BUFFER  Enum = 0x8F3F

	// buffer storage flags and usage
	MAP_READ_BIT        Enum = 0x0001
	MAP_WRITE_BIT       Enum = 0x0002
	DYNAMIC_STORAGE_BIT Enum = 0x0100
	STREAM_DRAW         Enum = 0x88E0
	STATIC_DRAW         Enum = 0x88E4
	DYNAMIC_DRAW        Enum = 0x88E8

	// component types
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406

	// texture targets
	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_3D                  Enum = 0x806F
	TEXTURE_2D_ARRAY            Enum = 0x8C1A
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE0                    Enum = 0x84C0

	// pixel formats
	RED                Enum = 0x1903
	RGBA               Enum = 0x1908
	RGBA8              Enum = 0x8058
	RGBA16F            Enum = 0x881A
	RGBA32F            Enum = 0x8814
	R32UI              Enum = 0x8236
	DEPTH_COMPONENT16  Enum = 0x81A5
	DEPTH_COMPONENT32F Enum = 0x8CAC
	DEPTH24_STENCIL8   Enum = 0x88F0

	// image access
	READ_ONLY  Enum = 0x88B8
	WRITE_ONLY Enum = 0x88B9
	READ_WRITE Enum = 0x88BA

	// sampler parameters
	TEXTURE_MAG_FILTER     Enum = 0x2800
	TEXTURE_MIN_FILTER     Enum = 0x2801
	TEXTURE_WRAP_S         Enum = 0x2802
	TEXTURE_WRAP_T         Enum = 0x2803
	TEXTURE_WRAP_R         Enum = 0x8072
	TEXTURE_MIN_LOD        Enum = 0x813A
	TEXTURE_MAX_LOD        Enum = 0x813B
	TEXTURE_LOD_BIAS       Enum = 0x8501
	TEXTURE_BORDER_COLOR   Enum = 0x1004
	TEXTURE_COMPARE_MODE   Enum = 0x884C
	TEXTURE_COMPARE_FUNC   Enum = 0x884D
	COMPARE_REF_TO_TEXTURE Enum = 0x884E

	// filters and wrap modes
	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703
	REPEAT                 Enum = 0x2901
	CLAMP_TO_EDGE          Enum = 0x812F
	CLAMP_TO_BORDER        Enum = 0x812D
	MIRRORED_REPEAT        Enum = 0x8370

	// framebuffers
	FRAMEBUFFER              Enum = 0x8D40
	READ_FRAMEBUFFER         Enum = 0x8CA8
	DRAW_FRAMEBUFFER         Enum = 0x8CA9
	COLOR_ATTACHMENT0        Enum = 0x8CE0
	DEPTH_ATTACHMENT         Enum = 0x8D00
	STENCIL_ATTACHMENT       Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT Enum = 0x821A
	FRAMEBUFFER_COMPLETE     Enum = 0x8CD5
	BACK_LEFT                Enum = 0x0402

	// capabilities
	CULL_FACE             Enum = 0x0B44
	DEPTH_TEST            Enum = 0x0B71
	STENCIL_TEST          Enum = 0x0B90
	BLEND                 Enum = 0x0BE2
	SCISSOR_TEST          Enum = 0x0C11
	DEPTH_CLAMP           Enum = 0x864F
	RASTERIZER_DISCARD    Enum = 0x8C89
	POLYGON_OFFSET_POINT  Enum = 0x2A01
	POLYGON_OFFSET_LINE   Enum = 0x2A02
	POLYGON_OFFSET_FILL   Enum = 0x8037
	DEPTH_BOUNDS_TEST_EXT Enum = 0x8890

	// polygon modes, faces, winding
	POINT          Enum = 0x1B00
	LINE           Enum = 0x1B01
	FILL           Enum = 0x1B02
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	CW             Enum = 0x0900
	CCW            Enum = 0x0901

	// compare functions
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	// stencil operations
	KEEP      Enum = 0x1E00
	REPLACE   Enum = 0x1E01
	INCR      Enum = 0x1E02
	DECR      Enum = 0x1E03
	INVERT    Enum = 0x150A
	INCR_WRAP Enum = 0x8507
	DECR_WRAP Enum = 0x8508

	// blend factors and equations
	SRC_COLOR             Enum = 0x0300
	ONE_MINUS_SRC_COLOR   Enum = 0x0301
	SRC_ALPHA             Enum = 0x0302
	ONE_MINUS_SRC_ALPHA   Enum = 0x0303
	DST_ALPHA             Enum = 0x0304
	ONE_MINUS_DST_ALPHA   Enum = 0x0305
	DST_COLOR             Enum = 0x0306
	ONE_MINUS_DST_COLOR   Enum = 0x0307
	FUNC_ADD              Enum = 0x8006
	MIN                   Enum = 0x8007
	MAX                   Enum = 0x8008
	FUNC_SUBTRACT         Enum = 0x800A
	FUNC_REVERSE_SUBTRACT Enum = 0x800B

	// primitives
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005

	// clear bits
	DEPTH_BUFFER_BIT   Enum = 0x00000100
	STENCIL_BUFFER_BIT Enum = 0x00000400
	COLOR_BUFFER_BIT   Enum = 0x00004000

	// memory barriers
	VERTEX_ATTRIB_ARRAY_BARRIER_BIT Enum = 0x00000001
	ELEMENT_ARRAY_BARRIER_BIT       Enum = 0x00000002
	UNIFORM_BARRIER_BIT             Enum = 0x00000004
	TEXTURE_FETCH_BARRIER_BIT       Enum = 0x00000008
	SHADER_IMAGE_ACCESS_BARRIER_BIT Enum = 0x00000020
	COMMAND_BARRIER_BIT             Enum = 0x00000040
	FRAMEBUFFER_BARRIER_BIT         Enum = 0x00000400
	SHADER_STORAGE_BARRIER_BIT      Enum = 0x00002000
	ALL_BARRIER_BITS                Enum = 0xFFFFFFFF
)

// MaxColorAttachments is the number of colour slots the blend state and the
// framebuffer builder track.
const MaxColorAttachments = 8

// InfoLogLength bounds shader and program diagnostics.
const InfoLogLength = 1024
