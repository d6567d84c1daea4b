package components

// PlatformComponent 标记实体为实心平台
// 平台的碰撞范围由 CollisionComponent 给出
type PlatformComponent struct {
	TileSize float64 // 绘制时平铺的贴图尺寸（像素）
}
