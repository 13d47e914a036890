package main

import "math"

// Handedness selects the camera's coordinate convention, per spec §3/§4.8.
// Grounded on the original CameraSystem enum.
type Handedness int

const (
	RightHanded Handedness = iota
	LeftHanded
)

// Camera is an orthonormal basis (right/up/forward/origin) plus a
// handedness-dependent projection matrix, per spec §3/§4.8. Grounded on
// PerspectiveCamera, with the SDL-driven interactive controls
// (Zoom/Translate/RotateCamera from mouse+keyboard) left out: spec §2
// explicitly excludes the interactive part of the camera.
type Camera struct {
	Basis      Mat4
	Projection Mat4

	aspectRatio float64
	fovTan      float64
	near        float64
	far         float64
	handedness  Handedness
}

// NewCamera builds a camera at position looking along forward, with the
// basis's up axis derived from world-up via cross products, matching the
// original's look-at construction.
func NewCamera(position Vec3, forward Vec3, aspectRatio, fovDegrees, near, far float64) *Camera {
	c := &Camera{
		aspectRatio: aspectRatio,
		fovTan:      math.Tan(fovDegrees * math.Pi / 180 / 2),
		near:        near,
		far:         far,
		handedness:  RightHanded,
	}
	c.lookAt(position, forward)
	c.updateProjection()
	return c
}

func (c *Camera) lookAt(position, forward Vec3) {
	worldUp := Vec3{0, 1, 0}
	right := Cross3(worldUp, forward).Normalize()
	up := Cross3(forward, right)
	c.Basis = BasisFromColumns(right, up, forward, position)
}

// View returns the view matrix, the inverse of the orthonormal basis.
func (c *Camera) View() Mat4 {
	return c.Basis.InverseRigid()
}

// Position is the origin column of the basis matrix.
func (c *Camera) Position() Vec3 {
	return Vec3{c.Basis.M[3], c.Basis.M[7], c.Basis.M[11]}
}

// updateProjection rebuilds the projection matrix from aspect/fovTan/near/far
// and the current handedness, per spec §4.8.
func (c *Camera) updateProjection() {
	m := IdentityMat4()
	m.M[0] = 1 / (c.aspectRatio * c.fovTan)
	m.M[5] = 1 / c.fovTan

	if c.handedness == RightHanded {
		m.M[10] = c.far / (c.near - c.far)
		m.M[11] = (c.far * c.near) / (c.near - c.far)
		m.M[14] = -1
		m.M[15] = 0
	} else {
		m.M[10] = c.far / (c.far - c.near)
		m.M[11] = -(c.far * c.near) / (c.far - c.near)
		m.M[14] = 1
		m.M[15] = 0
	}

	c.Projection = m
}

// SetHandedness switches the camera's coordinate convention, applying the
// z-flip matrix on both sides of the basis and rebuilding the projection
// matrix, per spec §4.8. Grounded on PerspectiveCamera::SetCameraSystem.
func (c *Camera) SetHandedness(h Handedness) {
	if h == c.handedness {
		return
	}
	c.handedness = h

	flip := IdentityMat4()
	flip.M[10] = -1

	c.Basis = flip.Multiply(c.Basis).Multiply(flip)
	c.updateProjection()
}

func (c *Camera) Handedness() Handedness {
	return c.handedness
}

// WorldViewProjection composes the camera's view and projection matrices
// with a mesh world matrix, in the order applied to a column vector:
// clip = Projection * View * World * position.
func (c *Camera) WorldViewProjection(world Mat4) Mat4 {
	return c.Projection.Multiply(c.View()).Multiply(world)
}
