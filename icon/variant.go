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

// Package icon renders the CleanLoop house pictogram into app icon,
// adaptive icon and splash screen assets.
package icon

import (
	"errors"
	"fmt"
)

// MinSize is the smallest canvas for which the house is guaranteed to be
// recognisable.
const MinSize = 16

// Background selects how the canvas is prepared before the house is drawn.
type Background int

const (
	// Transparent leaves every pixel outside the house fully transparent.
	Transparent Background = iota

	// Gradient fills the canvas with PrimaryGreen, lightened towards the
	// top edge.
	Gradient
)

func (b Background) String() string {
	switch b {
	case Transparent:
		return "transparent"
	case Gradient:
		return "gradient"
	default:
		return fmt.Sprintf("Background(%d)", int(b))
	}
}

// Variant describes one rendered asset.
type Variant struct {
	// Name is the base name of the output files, without extension.
	Name string

	// Size is the width and height of the square canvas in pixels.
	Size int

	// Padding is the free margin around the house, as a fraction of Size.
	Padding float64

	Background Background

	// Details enables the door and the two windows.
	Details bool
}

// The assets written by a default run.
var (
	AppIcon = Variant{
		Name:       "app_icon",
		Size:       1024,
		Padding:    0.10,
		Background: Gradient,
		Details:    true,
	}

	// AdaptiveForeground keeps the house inside the central safe zone, so
	// that it survives the masks which launchers apply to adaptive icons.
	AdaptiveForeground = Variant{
		Name:       "app_icon_foreground",
		Size:       1024,
		Padding:    0.25,
		Background: Transparent,
		Details:    true,
	}

	Splash = Variant{
		Name:       "splash_icon",
		Size:       512,
		Padding:    0.10,
		Background: Transparent,
	}
)

// Variants returns the assets of a default run, in output order.
func Variants() []Variant {
	return []Variant{AppIcon, AdaptiveForeground, Splash}
}

// PaddedAppIcon returns the app icon with a wider margin around the house.
func PaddedAppIcon(size int) Variant {
	v := AppIcon
	v.Name = "app_icon_padded"
	v.Size = size
	v.Padding = 0.15
	return v
}

// FileName returns the name of the PNG file for v.
func (v Variant) FileName() string {
	return v.Name + ".png"
}

// Validate checks that v can be rendered.
func (v Variant) Validate() error {
	if v.Name == "" {
		return errors.New("missing variant name")
	}
	if v.Size < MinSize {
		return fmt.Errorf("%s: size %d is below %d", v.Name, v.Size, MinSize)
	}
	if v.Padding < 0 || v.Padding >= 0.5 {
		return fmt.Errorf("%s: padding %g not in [0, 0.5)", v.Name, v.Padding)
	}
	if v.Background != Transparent && v.Background != Gradient {
		return fmt.Errorf("%s: unknown background %s", v.Name, v.Background)
	}
	return nil
}
