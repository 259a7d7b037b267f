// seehuhn.de/go/icongen - procedural app icon generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package icon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// The CleanLoop palette.
var (
	PrimaryGreen = mustParseHex("#4CAF50")
	DarkGreen    = mustParseHex("#2E7D32")
	White        = mustParseHex("#FFFFFF")
	LightGreen   = mustParseHex("#81C784")
)

// ParseHex converts a colour of the form "#RRGGBB" or "#RRGGBBAA" into
// a non-premultiplied colour.  The leading "#" is optional.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func mustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// over composites c with the given alpha over the opaque colour bg.
// Rounding follows 8-bit source-over compositing.
func over(bg, c color.NRGBA, alpha uint8) color.NRGBA {
	mix := func(b, f uint8) uint8 {
		a := uint32(alpha)
		return uint8((uint32(f)*a + uint32(b)*(255-a) + 127) / 255)
	}
	return color.NRGBA{
		R: mix(bg.R, c.R),
		G: mix(bg.G, c.G),
		B: mix(bg.B, c.B),
		A: 0xFF,
	}
}
