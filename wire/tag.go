package wire

// TagWidth returns the byte width (1, 2, or 4) of the enum variant tag
// for a sum type with the given number of variants, per spec.md §4.2:
// <256 variants take 1 byte, <65536 take 2, everything else takes 4.
func TagWidth(cardinality int) int {
	switch {
	case cardinality < 0x100:
		return 1
	case cardinality < 0x10000:
		return 2
	default:
		return 4
	}
}

// PutTag writes an enum variant index using the narrowest width that
// fits cardinality variants.
func (w *Writer) PutTag(idx int, cardinality int) error {
	switch TagWidth(cardinality) {
	case 1:
		return w.PutUint8(uint8(idx))
	case 2:
		return w.PutUint16(uint16(idx))
	default:
		return w.PutUint32(uint32(idx))
	}
}

// GetTag reads an enum variant index written with the width dictated by
// cardinality variants.
func (r *Reader) GetTag(cardinality int) (int, error) {
	switch TagWidth(cardinality) {
	case 1:
		v, err := r.GetUint8()
		return int(v), err
	case 2:
		v, err := r.GetUint16()
		return int(v), err
	default:
		v, err := r.GetUint32()
		return int(v), err
	}
}
