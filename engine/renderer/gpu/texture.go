package gpu

type textureKind struct{}

func (textureKind) gen(dev Device) uint32     { return dev.GenTexture() }
func (textureKind) del(dev Device, id uint32) { dev.DeleteTexture(id) }

type Texture struct {
	Object[textureKind]
}

func (t *Texture) Bind(target Enum) {
	if t.Valid() {
		t.dev.BindTexture(target, t.id)
	}
}

// Active binds the texture to the given texture unit.
func (t *Texture) Active(unit uint32, target Enum) {
	if t.Valid() {
		t.dev.ActiveTexture(unit)
		t.dev.BindTexture(target, t.id)
	}
}

// BindImage exposes level 0 of the texture, all layers, as an image unit.
func (t *Texture) BindImage(unit uint32, access, format Enum) {
	if t.Valid() {
		t.dev.BindImageTexture(unit, t.id, 0, true, 0, access, format)
	}
}

func (t *Texture) Storage2D(target Enum, levels int32, format Enum, width, height int32) {
	if !t.Valid() {
		return
	}
	t.dev.BindTexture(target, t.id)
	t.dev.TexStorage2D(target, levels, format, width, height)
}

// Storage3D allocates a volume or a 2D array, depending on target.
func (t *Texture) Storage3D(target Enum, levels int32, format Enum, width, height, depth int32) {
	if !t.Valid() {
		return
	}
	t.dev.BindTexture(target, t.id)
	t.dev.TexStorage3D(target, levels, format, width, height, depth)
}

func (t *Texture) SubImage2D(level, x, y, width, height int32, format, typ Enum, pixels []byte) {
	if !t.Valid() {
		return
	}
	t.dev.BindTexture(TEXTURE_2D, t.id)
	t.dev.TexSubImage2D(TEXTURE_2D, level, x, y, width, height, format, typ, pixels)
}
