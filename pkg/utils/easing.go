package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的进度
// 超出范围的输入会先被限制到 [0, 1]

// EaseOutCubic 三次方缓出：开始快，结束慢
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	return 1 - math.Pow(1-t, 3)
}

// EaseOutBack 回弹缓出：先冲过终点一点再回落
// f(t) = 1 + c3(t-1)³ + c1(t-1)²
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	t = Clamp(t, 0, 1)
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
