package workspace

import "github.com/google/uuid"

// View is a horizontal band of the workspace hosting one editing
// surface. The band's last row is the banner row; the rows above it are
// the text area.
type View struct {
	id     uuid.UUID
	x      int
	y      int
	width  int
	height int
}

// ID returns the view's stable identity.
func (v *View) ID() uuid.UUID {
	return v.id
}

// Origin returns the top-left cell of the view.
func (v *View) Origin() (x, y int) {
	return v.x, v.y
}

// Size returns the view dimensions including the banner row.
func (v *View) Size() (width, height int) {
	return v.width, v.height
}

// TextHeight returns the number of text rows, excluding the banner.
func (v *View) TextHeight() int {
	return v.height - 1
}

// BannerRow returns the screen row of the view's banner.
func (v *View) BannerRow() int {
	return v.y + v.height - 1
}
