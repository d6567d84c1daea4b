package components

// PositionComponent 实体在世界坐标中的位置（左上角，像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体速度（像素/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
