package components

// PlayerAnimRow 玩家 spritesheet 的行
type PlayerAnimRow int

const (
	PlayerRowIdle PlayerAnimRow = iota
	PlayerRowRun
	PlayerRowJump
)

// PlayerComponent 玩家状态
type PlayerComponent struct {
	OnGround   bool
	FacingLeft bool
	Row        PlayerAnimRow // 当前动画行
}
