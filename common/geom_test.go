package common

import "testing"

func TestPositionPixel(t *testing.T) {
	cases := []struct {
		name   string
		x, y   int
		px, py int
	}{
		{"origin", 0, 0, 0, 0},
		{"col4_row0", 4, 0, 256, 0},
		{"col2_row3", 2, 3, 128, 192},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPosition(c.x, c.y)
			px, py := p.Pixel()
			if px != c.px || py != c.py {
				t.Fatalf("expected (%d,%d), got (%d,%d)", c.px, c.py, px, py)
			}
			if p.X() != c.x || p.Y() != c.y {
				t.Fatalf("grid coords changed: got (%d,%d)", p.X(), p.Y())
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 64, Height: 64}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 32, Y: 32, Width: 64, Height: 64}, true},
		{"contained", Rect{X: 10, Y: 10, Width: 4, Height: 4}, true},
		{"touch_right_edge", Rect{X: 64, Y: 0, Width: 64, Height: 64}, false},
		{"touch_bottom_edge", Rect{X: 0, Y: 64, Width: 64, Height: 16}, false},
		{"one_pixel_overlap", Rect{X: 63, Y: 63, Width: 10, Height: 10}, true},
		{"apart", Rect{X: 200, Y: 200, Width: 10, Height: 10}, false},
		{"empty", Rect{X: 10, Y: 10, Width: 0, Height: 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("Intersects is not symmetric for %+v", c.other)
			}
		})
	}
}

func TestCellRect(t *testing.T) {
	r := CellRect(NewPosition(3, 2), 64, 16)
	want := Rect{X: 192, Y: 128, Width: 64, Height: 16}
	if r != want {
		t.Fatalf("expected %+v, got %+v", want, r)
	}
	if moved := r.Translate(-16, 8); moved.X != 176 || moved.Y != 136 || r.X != 192 {
		t.Fatalf("unexpected translate result %+v (orig %+v)", moved, r)
	}
}
