package components

// CollectibleKind 可收集物品类型
type CollectibleKind string

const (
	// CollectibleCarrot 胡萝卜
	CollectibleCarrot CollectibleKind = "carrot"
)

// CollectibleComponent 可收集物品
//
// collected 只能从 false 变为 true；收集后的实体不再更新、绘制或参与碰撞。
type CollectibleComponent struct {
	Kind      CollectibleKind
	collected bool
}

// Collect 标记为已收集，重复调用无副作用
// 返回本次调用是否发生了状态变化
func (c *CollectibleComponent) Collect() bool {
	if c.collected {
		return false
	}
	c.collected = true
	return true
}

// IsCollected 返回是否已被收集
func (c *CollectibleComponent) IsCollected() bool {
	return c.collected
}
