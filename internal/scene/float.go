package scene

import "github.com/chewxy/math32"

var (
	posInf = math32.Inf(1)
	negInf = math32.Inf(-1)
)

func sqrt(v float32) float32 { return math32.Sqrt(v) }
