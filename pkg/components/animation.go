package components

// DefaultFrameDuration 默认每帧持续时间（秒）
const DefaultFrameDuration = 0.2

// AnimationComponent 管理 spritesheet 帧动画
type AnimationComponent struct {
	TotalFrames   int     // 一个循环的帧数
	FrameDuration float64 // 每帧持续时间（秒）
	CurrentFrame  int     // 当前帧索引(0-based)
	ElapsedTime   float64 // 当前帧已累计时间（秒）
}

// Advance 累加时间并在超过阈值时前进一帧
//
// 每次调用最多前进一帧，扣除阈值后的余量保留到下一次调用。
// deltaTime 远大于阈值时动画会落后于真实时间，这是有意接受的。
// 返回本次是否换帧。
func (a *AnimationComponent) Advance(deltaTime float64) bool {
	if a.TotalFrames <= 0 {
		return false
	}
	a.ElapsedTime += deltaTime
	if a.ElapsedTime <= a.FrameDuration {
		return false
	}
	a.CurrentFrame = (a.CurrentFrame + 1) % a.TotalFrames
	a.ElapsedTime -= a.FrameDuration
	return true
}

// Reset 回到第0帧
func (a *AnimationComponent) Reset() {
	a.CurrentFrame = 0
	a.ElapsedTime = 0
}
