package renderer

// Band is a contiguous range of image rows [Y0, Y1)
type Band struct {
	Index int
	Y0    int
	Y1    int
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// PartitionRows splits height rows into count bands of height/count rows;
// the last band also takes the remainder. count is clamped to [1, height].
func PartitionRows(height, count int) []Band {
	if height <= 0 {
		return nil
	}
	if count < 1 {
		count = 1
	}
	if count > height {
		count = height
	}

	rows := height / count
	bands := make([]Band, count)
	for i := range bands {
		bands[i] = Band{Index: i, Y0: i * rows, Y1: (i + 1) * rows}
	}
	bands[count-1].Y1 = height
	return bands
}
