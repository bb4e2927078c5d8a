package utils

// CeilDiv returns ceil(n / d) for n >= 0 and d > 0.
func CeilDiv(n, d int) int {
	if d <= 0 {
		panic("utils: CeilDiv by non-positive divisor")
	}
	return (n + d - 1) / d
}
