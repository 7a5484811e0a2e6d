package transfile

// reverse flips b in place. Applied to one element-size window at a time it
// converts between big- and little-endian representations of that element.
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
