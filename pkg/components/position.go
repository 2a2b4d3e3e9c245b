package components

// PositionComponent 存储实体包围盒左上角的屏幕坐标
type PositionComponent struct {
	X float64
	Y float64
}

// SizeComponent 存储实体包围盒尺寸（像素）
// 布局可能变化，系统在每次指针事件时重新读取
type SizeComponent struct {
	Width  float64
	Height float64
}

// Contains 判断点 (px, py) 是否落在以 pos 为原点的包围盒内（含边界）
func (s *SizeComponent) Contains(pos *PositionComponent, px, py float64) bool {
	return px >= pos.X && px <= pos.X+s.Width &&
		py >= pos.Y && py <= pos.Y+s.Height
}
