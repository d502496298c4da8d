// Package stage builds the synthwave scene: the sun disc, the tiled terrain
// planes and the two cameras that split them into separate render branches.
package stage

import (
	"fmt"

	"synthwave/internal/config"
	"synthwave/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Shader program names, resolved by the render pass
const (
	ProgramSun     = "sun"
	ProgramTerrain = "terrain"
)

// Uniform names shared with the GLSL sources
const (
	UniformTime          = "time"
	UniformRadius        = "radius"
	UniformColor1        = "color1"
	UniformColor2        = "color2"
	UniformPos           = "pos"
	UniformCells         = "cells"
	UniformOffset        = "offset"
	UniformMountainRange = "mountainRange"
	UniformColorRoad     = "colorRoad"
	UniformColorMountain = "colorMountain"
)

// Stage owns the scene graph and camera pair for one pipeline
type Stage struct {
	Variant config.Variant
	Scene   *scene.Scene
	Sun     *scene.Mesh
	Planes  []*scene.Mesh
	Cameras *CameraPair
}

// Build assembles the scene for a variant at the given surface size
func Build(v config.Variant, palette config.Palette, width, height int) (*Stage, error) {
	colors, err := palette.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve palette: %w", err)
	}

	s := &Stage{
		Variant: v,
		Scene:   scene.New(),
		Cameras: NewCameraPair(v, width, height),
	}

	s.Sun = newSun(colors)
	s.Scene.Add(s.Sun)

	base := newPlane(v, colors)
	s.Planes = append(s.Planes, base)
	for i := 1; i < config.PlaneCount; i++ {
		p := base.Clone()
		p.Name = fmt.Sprintf("plane-%d", i)
		p.Position[2] = -float32(i) * config.PlaneLength
		if v.PlaneOffset {
			p.Material.Uniforms.SetFloat(UniformOffset, float32(i))
		}
		s.Planes = append(s.Planes, p)
	}
	s.Scene.Add(s.Planes...)

	return s, nil
}

func newSun(c config.Colors) *scene.Mesh {
	u := scene.NewUniforms()
	u.SetFloat(UniformTime, 0)
	u.SetFloat(UniformRadius, config.SunRadius)
	u.SetVec3(UniformColor1, c.SunTop.Vec3())
	u.SetVec3(UniformColor2, c.SunBottom.Vec3())

	return &scene.Mesh{
		Name:     "sun",
		Geometry: scene.NewCircle(config.SunRadius, config.SunSegments),
		Material: &scene.Material{Program: ProgramSun, Uniforms: u},
		Layers:   scene.LayerMask(config.LayerSun),
		Position: mgl32.Vec3{0, config.SunY, config.SunZ},
	}
}

func newPlane(v config.Variant, c config.Colors) *scene.Mesh {
	u := scene.NewUniforms()
	u.SetFloat(UniformPos, 0)
	u.SetFloat(UniformTime, 0)
	u.SetFloat(UniformCells, config.Cells)
	if v.PlaneOffset {
		u.SetFloat(UniformOffset, 0)
	}
	u.SetFloat(UniformMountainRange, config.MountainRange)
	u.SetVec4(UniformColorRoad, c.Road)
	u.SetVec4(UniformColorMountain, c.Mountain)

	return &scene.Mesh{
		Name:     "plane-0",
		Geometry: scene.NewPlane(config.PlaneWidth, config.PlaneLength, config.PlaneSegments, config.PlaneSegments),
		Material: &scene.Material{Program: ProgramTerrain, Uniforms: u},
		Layers:   scene.LayerMask(config.LayerTerrain),
		Rotation: mgl32.Vec3{-config.HalfPi, 0, 0},
	}
}
