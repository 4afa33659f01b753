package entity

// Axis is one of the four directions along which runs are tracked.
type Axis uint8

const (
	AxisHorizontal   Axis = iota // -
	AxisVertical                 // |
	AxisDiagonalUp               // /
	AxisDiagonalDown             // \
)

var axisNames = [...]string{
	AxisHorizontal:   "horizontal",
	AxisVertical:     "vertical",
	AxisDiagonalUp:   "diagonal-up",
	AxisDiagonalDown: "diagonal-down",
}

// Axes returns every axis in declaration order.
func Axes() [4]Axis {
	return [4]Axis{AxisHorizontal, AxisVertical, AxisDiagonalUp, AxisDiagonalDown}
}

func (that Axis) String() string {
	if int(that) < len(axisNames) {
		return axisNames[that]
	}
	return "unknown"
}
