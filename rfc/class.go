package rfc

// ClassMean returns the representative value of class k: the midpoint of
// its half-open interval [offset+k*width, offset+(k+1)*width).
func (c ClassParams) ClassMean(k int) float64 {
	return c.Width*(0.5+float64(k)) + c.Offset
}

// ClassUpperBound returns the upper boundary of class k, the value the
// level-crossing histogram's index k counts crossings of.
func (c ClassParams) ClassUpperBound(k int) float64 {
	return c.Offset + float64(k+1)*c.Width
}
