package utils

// Rect 轴对齐矩形（AABB），左上角为 (X, Y)
// 世界坐标和屏幕坐标都使用此类型，单位为像素
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect 创建矩形
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right 返回右边缘X坐标
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom 返回下边缘Y坐标
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX 返回中心X坐标
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// Overlaps 判断两个矩形是否重叠
//
// 四条边都使用严格不等式：仅边缘接触不算重叠。
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

// Contains 判断点是否落在矩形内（含左上边缘，不含右下边缘）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate 返回平移后的矩形
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Clamp 将 v 限制在 [min, max] 范围内
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
