package hyperspace

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Role names a semantic palette entry supplied by the host theme.
type Role uint8

const (
	RoleError     Role = iota // warm accent ("error"/orange)
	RolePrimary               // primary blue
	RoleSecondary             // secondary blue
	RoleTertiary              // tertiary blue
)

// RoleResolver maps a semantic role to an index in an ordered palette.
type RoleResolver interface {
	ResolveRole(r Role) (int, bool)
}

// Palette is an ordered list of stroke colors plus a role table.
type Palette struct {
	colors []colorful.Color
	roles  map[Role]int
}

// NewPalette parses hex colors ("#rrggbb" or "#rgb") and attaches roles.
// Every role must point at a valid index.
func NewPalette(hex []string, roles map[Role]int) (*Palette, error) {
	p := &Palette{
		colors: make([]colorful.Color, 0, len(hex)),
		roles:  make(map[Role]int, len(roles)),
	}
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("parse palette color %q: %w", h, err)
		}
		p.colors = append(p.colors, c)
	}
	for r, i := range roles {
		if i < 0 || i >= len(p.colors) {
			return nil, fmt.Errorf("palette role %d: index %d out of range [0,%d)", r, i, len(p.colors))
		}
		p.roles[r] = i
	}
	return p, nil
}

// MustPalette is like NewPalette but panics on error.
func MustPalette(hex []string, roles map[Role]int) *Palette {
	p, err := NewPalette(hex, roles)
	if err != nil {
		panic(err)
	}
	return p
}

var standardRoles = map[Role]int{
	RoleError:     0,
	RolePrimary:   1,
	RoleSecondary: 2,
	RoleTertiary:  3,
}

var (
	darkPalette = MustPalette([]string{
		"#ff8a4c", "#5aa9ff", "#7f8cff", "#4fd1e8", "#c3d4ff",
	}, standardRoles)
	lightPalette = MustPalette([]string{
		"#e8590c", "#1c6fd6", "#4c5fd7", "#0f9fb8", "#6b7fa8",
	}, standardRoles)
)

// DefaultPalette returns the built-in theme palette for the given mode.
func DefaultPalette(dark bool) *Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.colors)
}

// ResolveRole implements RoleResolver.
func (p *Palette) ResolveRole(r Role) (int, bool) {
	if p == nil {
		return 0, false
	}
	i, ok := p.roles[r]
	return i, ok
}

// at returns color i, or white when the palette is empty.
func (p *Palette) at(i int) colorful.Color {
	if p.Len() == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	n := len(p.colors)
	return p.colors[((i%n)+n)%n]
}
