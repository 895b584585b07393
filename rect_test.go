package lupix

import "testing"
import "image"

func TestRectSize(t *testing.T) {
	rect := IntsToRect(1, 2, 4, 8)
	if rect.Width() != NewPx(3) { t.Fatal("bad Width") }
	if rect.Height() != NewPx(6) { t.Fatal("bad Height") }
	width, height := rect.Size()
	if width != rect.Width() || height != rect.Height() { t.Fatal("bad Size") }
	if rect.Empty() { t.Fatal("rect shouldn't be empty") }
	if !IntsToRect(3, 3, 3, 9).Empty() { t.Fatal("zero width rect should be empty") }
}

func TestRectImageRect(t *testing.T) {
	rect := PxToRect(NewPx(0)+1, NewPx(0), NewPx(2)-1, NewPx(3))
	imageRect := rect.ImageRect()
	if imageRect != image.Rect(0, 0, 2, 3) {
		t.Fatalf("expected (0,0)-(2,3) to contain the rect, got %s", imageRect)
	}
	back := FromImageRect(image.Rect(1, 2, 4, 8))
	if back != IntsToRect(1, 2, 4, 8) { t.Fatal("bad FromImageRect") }
}

func TestRectPadAdd(t *testing.T) {
	rect := IntsToRect(2, 2, 4, 4)
	padded := rect.PadPx(NewPx(1), NewPx(2))
	if padded != IntsToRect(1, 0, 5, 6) { t.Fatal("bad PadPx") }

	moved := rect.AddPx(NewPx(3), NewPx(-2))
	if moved != IntsToRect(5, 0, 7, 2) { t.Fatal("bad AddPx") }
	if rect.AddPoint(IntsToPoint(1, 1)) != IntsToRect(3, 3, 5, 5) { t.Fatal("bad AddPoint") }
	if rect.AddImagePoint(image.Pt(1, 1)) != IntsToRect(3, 3, 5, 5) { t.Fatal("bad AddImagePoint") }
}

func TestRectUnionIntersect(t *testing.T) {
	a := IntsToRect(0, 0, 4, 4)
	b := IntsToRect(2, 2, 6, 6)
	if a.Union(b) != IntsToRect(0, 0, 6, 6) { t.Fatal("bad Union") }
	if a.Intersect(b) != IntsToRect(2, 2, 4, 4) { t.Fatal("bad Intersect") }
	if !a.Intersect(IntsToRect(5, 5, 6, 6)).Empty() {
		t.Fatal("disjoint intersection should be empty")
	}
}

func TestRectContains(t *testing.T) {
	rect := IntsToRect(0, 0, 2, 2)
	if !rect.Contains(IntsToPoint(0, 0)) { t.Fatal("min corner should be contained") }
	if rect.Contains(IntsToPoint(2, 2)) { t.Fatal("max corner shouldn't be contained") }
	if !rect.HasZeroOrigin() { t.Fatal("bad HasZeroOrigin") }
	if IntsToRect(1, 0, 2, 2).HasZeroOrigin() { t.Fatal("bad HasZeroOrigin for shifted rect") }
}

func TestRectLp(t *testing.T) {
	rect := LpToRect(0, 0, NewLp(10), NewLp(20), NewFraction(2, 1))
	if rect != IntsToRect(0, 0, 20, 40) { t.Fatal("bad LpToRect") }
}
