package components

import "github.com/decker502/carrothop/pkg/utils"

// CollisionComponent 定义实体的碰撞盒
//
// 碰撞盒独立于精灵的可视范围：偏移量相对于 PositionComponent（左上角）。
// 玩家的碰撞盒比精灵窄，避免透明边缘参与碰撞。
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 相对实体位置的X偏移（像素），正值向右
	OffsetY float64 // 相对实体位置的Y偏移（像素），正值向下
}

// Bounds 返回碰撞盒在世界坐标中的矩形
func (c *CollisionComponent) Bounds(pos *PositionComponent) utils.Rect {
	return utils.NewRect(pos.X+c.OffsetX, pos.Y+c.OffsetY, c.Width, c.Height)
}
