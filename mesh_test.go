package main

import "testing"

func TestMeshSetPoseTranslatesOrigin(t *testing.T) {
	m := NewMesh(nil, nil, nil)
	m.SetPose(Vec3{X: 1, Y: 2, Z: 3}, IdentityQuaternion())

	got := m.World.TransformPoint(Vec3{})
	want := Vec3{X: 1, Y: 2, Z: 3}
	if got != want {
		t.Fatalf("expected identity rotation plus translation to move the origin to %+v, got %+v", want, got)
	}
}

func TestMeshSetPoseAppliesRotationBeforeTranslation(t *testing.T) {
	m := NewMesh(nil, nil, nil)
	quarterTurnAroundY := QuaternionFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, 3.14159265/2)
	m.SetPose(Vec3{X: 5, Y: 0, Z: 0}, quarterTurnAroundY)

	got := m.World.TransformPoint(Vec3{X: 1, Y: 0, Z: 0})
	if got.Y != 0 {
		t.Fatalf("expected rotation about Y to leave Y unchanged, got %+v", got)
	}
	if got.X < 4.9 || got.X > 5.1 {
		t.Fatalf("expected translation of 5 on X to dominate after a small rotated offset, got %+v", got)
	}
}
