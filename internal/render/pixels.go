package render

import "image/color"

// Palette maps cell states to display colors.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Grid  color.RGBA
}

// DefaultPalette returns light cells on a dark board with a slightly lighter
// grid.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 240, G: 240, B: 240, A: 255},
		Dead:  color.RGBA{R: 30, G: 30, B: 30, A: 255},
		Grid:  color.RGBA{R: 50, G: 50, B: 50, A: 255},
	}
}

// PixelSize returns the image dimensions for a rows×cols board at scale
// pixels per cell.
func PixelSize(rows, cols, scale int) (w, h int) {
	return cols * scale, rows * scale
}

// FillCells rasterizes row-major 0/1 cells into RGBA pixels in buf. Each cell
// covers scale×scale pixels; when scale > 1 its last row and column are drawn
// in the grid color. buf must hold 4*w*h bytes for the PixelSize of the board.
func FillCells(buf []byte, cells []uint8, rows, cols, scale int, p Palette) {
	if scale <= 0 {
		scale = 1
	}
	w, h := PixelSize(rows, cols, scale)
	if len(cells) != rows*cols || len(buf) < 4*w*h {
		return
	}
	for py := 0; py < h; py++ {
		r := py / scale
		gapY := scale > 1 && py%scale == scale-1
		for px := 0; px < w; px++ {
			c := px / scale
			col := p.Dead
			switch {
			case gapY || (scale > 1 && px%scale == scale-1):
				col = p.Grid
			case cells[r*cols+c] != 0:
				col = p.Alive
			}
			base := (py*w + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
