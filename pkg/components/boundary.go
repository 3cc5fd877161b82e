package components

// BoundaryEdge 边界所在的场地边缘
type BoundaryEdge int

const (
	EdgeLeft BoundaryEdge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e BoundaryEdge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// IsSide 是否为左右边界
func (e BoundaryEdge) IsSide() bool {
	return e == EdgeLeft || e == EdgeRight
}

// BoundaryComponent 标记不可见的场地边界触发区域
type BoundaryComponent struct {
	Edge BoundaryEdge
}
