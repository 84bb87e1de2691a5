package scatter

// lcg is a minimal linear congruential generator (glibc constants, 31-bit
// state). It is deliberately primitive: the sequence must stay bit-for-bit
// stable forever, because published capacity numbers are only comparable
// when every run benchmarks the same instances.
type lcg struct {
	state uint64
}

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed}
}

// next returns the next value in [0, 1).
func (r *lcg) next() float64 {
	r.state = (r.state*1103515245 + 12345) % (1 << 31)

	return float64(r.state) / float64(uint64(1)<<31)
}
