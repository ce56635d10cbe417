package catalog

import "strings"

const (
	DefaultExtension  = ".webp"
	DefaultDarkMarker = "-dark"
)

// Naming captures the filename conventions of an icon package: which
// extension marks an asset and which marker distinguishes dark variants.
type Naming struct {
	Extension  string
	DarkMarker string
}

// DefaultNaming matches the @lobehub/icons-static-webp layout.
func DefaultNaming() Naming {
	return Naming{Extension: DefaultExtension, DarkMarker: DefaultDarkMarker}
}

func (n Naming) withDefaults() Naming {
	if n.Extension == "" {
		n.Extension = DefaultExtension
	}
	if n.DarkMarker == "" {
		n.DarkMarker = DefaultDarkMarker
	}
	return n
}

// IsAsset reports whether name carries the icon extension.
func (n Naming) IsAsset(name string) bool {
	n = n.withDefaults()
	return len(name) > len(n.Extension) && strings.HasSuffix(name, n.Extension)
}

// IsDarkVariant reports whether id already follows the dark naming scheme.
func (n Naming) IsDarkVariant(id IconID) bool {
	n = n.withDefaults()
	return strings.HasSuffix(string(id), n.DarkMarker+n.Extension)
}

// DarkVariant inserts the dark marker before the extension:
// "openai.webp" becomes "openai-dark.webp".
func (n Naming) DarkVariant(id IconID) IconID {
	n = n.withDefaults()
	base := strings.TrimSuffix(string(id), n.Extension)
	return IconID(base + n.DarkMarker + n.Extension)
}

// DeriveDark maps every light entry to its dark counterpart, preserving order.
func (n Naming) DeriveDark(light []IconID) []IconID {
	out := make([]IconID, len(light))
	for i, id := range light {
		out[i] = n.DarkVariant(id)
	}
	return out
}

// Label is the display name of an icon: its id with the extension removed.
func (n Naming) Label(id IconID) string {
	n = n.withDefaults()
	return strings.Replace(string(id), n.Extension, "", 1)
}
