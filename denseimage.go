package topomorph

// DenseImage is a flat-array Image adapter over a row-major []int, the
// default concrete Image a caller can reach for without writing their own
// adapter (grounded on matrix.Dense's flat-storage constructor idiom).
type DenseImage struct {
	w, h, d int
	values  []int
}

// NewDenseImage allocates a zero-valued DenseImage of the given extent.
func NewDenseImage(w, h, d int) *DenseImage {
	return &DenseImage{w: w, h: h, d: d, values: make([]int, w*h*d)}
}

func newDenseImage(w, h, d int) *DenseImage {
	return NewDenseImage(w, h, d)
}

func (img *DenseImage) index(x, y, z int) int {
	return z*img.w*img.h + y*img.w + x
}

// Dims returns img's width, height, and depth.
func (img *DenseImage) Dims() (w, h, d int) {
	return img.w, img.h, img.d
}

// At returns the value at (x,y,z).
func (img *DenseImage) At(x, y, z int) int {
	return img.values[img.index(x, y, z)]
}

// Set assigns the value at (x,y,z).
func (img *DenseImage) Set(x, y, z int, v int) {
	img.values[img.index(x, y, z)] = v
}
