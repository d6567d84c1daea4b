package config

// 布局配置常量
// 所有坐标使用"世界坐标系"（相对于关卡左上角），屏幕坐标 = 世界坐标 - 摄像机位置

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 640

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 360

	// GameTitle 窗口标题
	GameTitle = "BugsBuzzy - Carrot Hop"

	// CarrotSize 胡萝卜的尺寸（像素，正方形）
	CarrotSize = 16.0

	// CarrotFrames 胡萝卜动画帧数
	CarrotFrames = 4

	// CarrotFrameDuration 胡萝卜每帧持续时间（秒）
	CarrotFrameDuration = 0.2

	// PlayerFrameDuration 玩家每帧持续时间（秒）
	PlayerFrameDuration = 0.12

	// PlayerFrames 玩家每行动画帧数
	PlayerFrames = 4

	// MaxPhysicsStep 物理积分的最大子步长（秒）
	MaxPhysicsStep = 1.0 / 120.0

	// MaxPhysicsTimePerFrame 单帧最多模拟的物理时间（秒）
	// 窗口长时间挂起后恢复时，不会一次性模拟数分钟的物理
	MaxPhysicsTimePerFrame = 0.25

	// DefaultLevelID 没有存档时的起始关卡
	DefaultLevelID = "1-1"

	// PhysicsConfigPath 物理配置文件路径
	PhysicsConfigPath = "data/physics.yaml"

	// ResourceConfigPath 资源清单路径
	ResourceConfigPath = "config/resources.yaml"
)
