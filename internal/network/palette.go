package network

import (
	"image/color"

	"github.com/olivierh59500/neural-field-go/internal/surface"
)

// Palette, opacity is applied per draw call
var (
	NodeColor   = color.NRGBA{R: 99, G: 102, B: 241, A: 255}
	LinkColor   = color.NRGBA{R: 139, G: 92, B: 246, A: 255}
	GrabColor   = color.NRGBA{R: 168, G: 85, B: 247, A: 255}
	HandFill    = surface.RGBA(99, 102, 241, 0.7)
	HandStroke  = surface.RGBA(79, 70, 229, 0.9)
	HandJoint   = surface.RGBA(255, 255, 255, 0.6)
	PacketColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	Background = []surface.Stop{
		{Offset: 0, Color: surface.RGBA(248, 250, 252, 0.8)},
		{Offset: 1, Color: surface.RGBA(243, 244, 246, 0.9)},
	}
)
