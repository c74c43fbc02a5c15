package xfrm

import (
	"testing"

	"github.com/igsio/volrecon/geom"
)

func TestSetAndGetTransformDirect(t *testing.T) {
	r := New()
	m := geom.Translate4(1, 2, 3)
	if err := r.SetTransform(NewName("Image", "Probe"), m, Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}

	got, status, err := r.GetTransform(NewName("Image", "Probe"))
	if err != nil {
		t.Fatalf("GetTransform() error = %v", err)
	}
	if status != Ok {
		t.Errorf("GetTransform() status = %v, want Ok", status)
	}
	if got != m {
		t.Errorf("GetTransform() matrix = %+v, want %+v", got, m)
	}
}

func TestSetTransformUpdatePreservesPersistentDateAndError(t *testing.T) {
	r := New()
	name := NewName("Image", "Probe")
	m1 := geom.Translate4(1, 0, 0)
	if err := r.SetTransform(name, m1, Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}
	if err := r.SetTransformPersistent(name, true); err != nil {
		t.Fatalf("SetTransformPersistent() error = %v", err)
	}
	if err := r.SetTransformDate(name, "2020-01-01T00:00:00Z"); err != nil {
		t.Fatalf("SetTransformDate() error = %v", err)
	}
	if err := r.SetTransformError(name, 0.5); err != nil {
		t.Fatalf("SetTransformError() error = %v", err)
	}

	m2 := geom.Translate4(2, 0, 0)
	if err := r.SetTransform(name, m2, Missing); err != nil {
		t.Fatalf("SetTransform() update error = %v", err)
	}

	got, status, err := r.GetTransform(name)
	if err != nil {
		t.Fatalf("GetTransform() error = %v", err)
	}
	if status != Missing {
		t.Errorf("GetTransform() status = %v, want Missing", status)
	}
	if got != m2 {
		t.Errorf("GetTransform() matrix = %+v, want %+v", got, m2)
	}

	e := r.edgeLocked(name.From, name.To)
	if e == nil {
		t.Fatalf("edgeLocked(%s) = nil", name)
	}
	if !e.Persistent {
		t.Error("Persistent was reset by the SetTransform update, want preserved true")
	}
	if e.Date != "2020-01-01T00:00:00Z" {
		t.Errorf("Date = %q, want preserved %q", e.Date, "2020-01-01T00:00:00Z")
	}
	if e.ComputationError != 0.5 {
		t.Errorf("ComputationError = %v, want preserved 0.5", e.ComputationError)
	}

	inv := r.edgeLocked(name.To, name.From)
	if inv == nil {
		t.Fatalf("edgeLocked(%s) = nil", name.Reversed())
	}
	wantInv, _ := m2.Invert()
	if inv.Matrix != wantInv {
		t.Errorf("reverse edge matrix = %+v, want %+v", inv.Matrix, wantInv)
	}
	if inv.Status != Missing {
		t.Errorf("reverse edge status = %v, want Missing", inv.Status)
	}
}

func TestGetTransformAutomaticInverse(t *testing.T) {
	r := New()
	m := geom.Translate4(1, 2, 3)
	if err := r.SetTransform(NewName("Image", "Probe"), m, Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}

	inv, _, err := r.GetTransform(NewName("Probe", "Image"))
	if err != nil {
		t.Fatalf("GetTransform() error = %v", err)
	}
	want, _ := m.Invert()
	if inv != want {
		t.Errorf("GetTransform(reverse) = %+v, want inverse %+v", inv, want)
	}
}

func TestGetTransformIdentitySameFrame(t *testing.T) {
	r := New()
	m, status, err := r.GetTransform(NewName("Image", "Image"))
	if err != nil {
		t.Fatalf("GetTransform() error = %v", err)
	}
	if m != geom.Identity4() || status != Ok {
		t.Errorf("GetTransform(F,F) = %+v/%v, want identity/Ok", m, status)
	}
}

func TestGetTransformChainsThroughIntermediate(t *testing.T) {
	r := New()
	if err := r.SetTransform(NewName("Image", "Probe"), geom.Translate4(1, 0, 0), Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}
	if err := r.SetTransform(NewName("Probe", "Reference"), geom.Translate4(0, 1, 0), Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}

	m, status, err := r.GetTransform(NewName("Image", "Reference"))
	if err != nil {
		t.Fatalf("GetTransform() error = %v", err)
	}
	if status != Ok {
		t.Errorf("GetTransform(chain) status = %v, want Ok", status)
	}
	p := geom.Apply4x4(m, geom.Vec3{})
	if p.X != 1 || p.Y != 1 || p.Z != 0 {
		t.Errorf("chained transform moved origin to %+v, want (1,1,0)", p)
	}
}

func TestGetTransformChainComposesWorstStatus(t *testing.T) {
	r := New()
	if err := r.SetTransform(NewName("Image", "Probe"), geom.Identity4(), Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}
	if err := r.SetTransform(NewName("Probe", "Reference"), geom.Identity4(), OutOfView); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}

	_, status, err := r.GetTransform(NewName("Image", "Reference"))
	if err != nil {
		t.Fatalf("GetTransform() error = %v", err)
	}
	if status != OutOfView {
		t.Errorf("GetTransform(chain) status = %v, want OutOfView (worst along path)", status)
	}
}

func TestGetTransformNoPathFails(t *testing.T) {
	r := New()
	if err := r.SetTransform(NewName("Image", "Probe"), geom.Identity4(), Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}
	_, status, err := r.GetTransform(NewName("Image", "Tracker"))
	if err == nil {
		t.Fatal("GetTransform() with no path should fail")
	}
	if status != PathNotFound {
		t.Errorf("GetTransform() status = %v, want PathNotFound", status)
	}
}

func TestSetTransformRejectsSameFrame(t *testing.T) {
	r := New()
	if err := r.SetTransform(NewName("Image", "Image"), geom.Identity4(), Ok); err == nil {
		t.Error("SetTransform(F,F) should fail")
	}
}

func TestSetTransformRejectsCycle(t *testing.T) {
	r := New()
	if err := r.SetTransform(NewName("A", "B"), geom.Identity4(), Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}
	if err := r.SetTransform(NewName("B", "C"), geom.Identity4(), Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}
	if err := r.SetTransform(NewName("C", "A"), geom.Identity4(), Ok); err == nil {
		t.Error("SetTransform() introducing a cycle should fail")
	}
}

func TestSetTransformStatusRejectedOnComputedEdge(t *testing.T) {
	r := New()
	if err := r.SetTransform(NewName("Image", "Probe"), geom.Identity4(), Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}
	if err := r.SetTransformStatus(NewName("Probe", "Image"), Invalid); err == nil {
		t.Error("SetTransformStatus() on a computed edge should fail")
	}
}

func TestDeleteTransformRemovesBothDirections(t *testing.T) {
	r := New()
	name := NewName("Image", "Probe")
	if err := r.SetTransform(name, geom.Identity4(), Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}
	if err := r.DeleteTransform(name); err != nil {
		t.Fatalf("DeleteTransform() error = %v", err)
	}
	if _, _, err := r.GetTransform(name); err == nil {
		t.Error("GetTransform() after delete should fail")
	}
	if _, _, err := r.GetTransform(name.Reversed()); err == nil {
		t.Error("GetTransform(reverse) after delete should fail")
	}
}

func TestClearWipesGraph(t *testing.T) {
	r := New()
	if err := r.SetTransform(NewName("Image", "Probe"), geom.Identity4(), Ok); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}
	r.Clear()
	if _, _, err := r.GetTransform(NewName("Image", "Probe")); err == nil {
		t.Error("GetTransform() after Clear should fail")
	}
}
