package app

import "time"

// FrameClock 计算两次 Update 之间真实经过的时间
//
// ebiten 的 TPS 只是目标值，两次 Update 的真实间隔可能远大于 1/60 秒。
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock 创建时钟；now 为 nil 时使用 time.Now
func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Tick 返回距上一次 Tick 的秒数；第一次调用返回 0
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset 丢弃上一次的时间戳，下一次 Tick 返回 0
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
