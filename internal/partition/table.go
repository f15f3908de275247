package partition

// table is the dense occupancy table of the partition: one region id per
// (hue, chroma, value) cell, 0 meaning unclaimed. It is logically a 3D
// array stored in one contiguous slice.
type table struct {
	hues, chromas, values int
	cells                 []int
}

func newTable(a *Axes) *table {
	h, c, v := a.HueCells(), a.ChromaCells(), a.ValueCells()
	return &table{
		hues:    h,
		chromas: c,
		values:  v,
		cells:   make([]int, h*c*v),
	}
}

// index returns the offset of cell (h, c, v), or false if any coordinate is
// outside its axis.
func (t *table) index(h, c, v int) (int, bool) {
	if h < 0 || h >= t.hues {
		return 0, false
	}
	if c < 0 || c >= t.chromas {
		return 0, false
	}
	if v < 0 || v >= t.values {
		return 0, false
	}
	return h*t.chromas*t.values + c*t.values + v, true
}
