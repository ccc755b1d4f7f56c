package gfx

// Option configures a texture or renderer at construction time.
type Option func(*options)

// options holds all configuration via the extensions map.
// All options use the OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for construction options.
//
// Example:
//
//	// Define an option key
//	var OptGlow = gfx.NewOptKey("glow", float32(0))
//
//	// Set it
//	sheet, err := gfx.NewSpriteSheet(d, slot, size, cell, gfx.WithOpt(OptGlow, 0.5))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ShaderSources is a vertex+fragment source pair.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// FilterValue holds minification and magnification filters.
type FilterValue struct {
	Min, Mag TextureFilter
}

// --- Renderer Options ---
var (
	OptShaders     = NewOptKey("shaders", ShaderSources{})
	OptAlphaBlend  = NewOptKey("alphaBlend", true)
	OptGlyphMap    = NewOptKey[*GlyphMap]("glyphMap", nil)
	OptTextureSlot = NewOptKey[uint32]("textureSlot", 1)
)

// --- Texture Options ---
var (
	OptFilter = NewOptKey("filter", FilterValue{Min: LinearMipmapLinear, Mag: Linear})
	OptFlipY  = NewOptKey("flipY", false)
)

// WithShaders replaces a renderer's built-in shader pair. The replacement
// must declare the same attribute slots and uniforms as the built-in one.
func WithShaders(vertex, fragment string) Option {
	return WithOpt(OptShaders, ShaderSources{Vertex: vertex, Fragment: fragment})
}

// WithAlphaBlend controls whether glyph draws enable src-alpha blending.
func WithAlphaBlend(enabled bool) Option { return WithOpt(OptAlphaBlend, enabled) }

// WithGlyphMap sets the byte-to-glyph table used by DrawText.
func WithGlyphMap(m *GlyphMap) Option { return WithOpt(OptGlyphMap, m) }

// WithTextureSlot sets the texture slot a TextureAtlas samples from.
func WithTextureSlot(index uint32) Option { return WithOpt(OptTextureSlot, index) }

// WithFilter sets the texture sampling filters.
func WithFilter(min, mag TextureFilter) Option {
	return WithOpt(OptFilter, FilterValue{Min: min, Mag: mag})
}

// WithFlipY flips image rows on upload, for callers whose pixel data is
// bottom row first.
func WithFlipY() Option { return WithOpt(OptFlipY, true) }

// shaderSources returns the configured shader pair, falling back to def.
func shaderSources(o options, def ShaderSources) ShaderSources {
	if !HasOpt(o, OptShaders) {
		return def
	}
	return GetOpt(o, OptShaders)
}
