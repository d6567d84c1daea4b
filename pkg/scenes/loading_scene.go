package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/carrothop/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MinLoadingDisplayTime 加载界面至少显示的时间（秒），避免一闪而过
const MinLoadingDisplayTime = 0.5

// LoadingScene represents the loading screen shown when the game starts.
// It polls the resource manager's image futures, draws a progress bar and
// switches to the first level once every image has finished (or failed).
type LoadingScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	levelID         string

	progress    float64 // Loading progress (0.0 - 1.0)
	elapsedTime float64 // Elapsed time since scene start
	finished    bool    // Level switch attempted
	failed      bool    // Level could not be created
}

// NewLoadingScene creates a loading scene and starts loading every image in the manifest.
func NewLoadingScene(rm *game.ResourceManager, sm *game.SceneManager, levelID string) *LoadingScene {
	rm.LoadImagesAsync()
	return &LoadingScene{
		resourceManager: rm,
		sceneManager:    sm,
		levelID:         levelID,
	}
}

// Update updates progress and switches scenes when loading completes.
func (s *LoadingScene) Update(deltaTime float64) {
	if s.finished {
		return
	}
	s.elapsedTime += deltaTime

	done, total := s.resourceManager.Progress()
	if total == 0 {
		s.progress = 1
	} else {
		s.progress = float64(done) / float64(total)
	}

	if s.progress < 1 || s.elapsedTime < MinLoadingDisplayTime {
		return
	}

	s.finished = true
	if failed := s.resourceManager.FailedImages(); len(failed) > 0 {
		// 加载失败的图片对应实体不会绘制，游戏照常进行
		log.Printf("[LoadingScene] Warning: %d images failed to load: %v", len(failed), failed)
	}
	log.Printf("[LoadingScene] Loading complete after %.2fs, starting level %s", s.elapsedTime, s.levelID)
	if !s.sceneManager.LoadLevel(s.levelID) {
		s.failed = true
	}
}

// Progress returns the loading progress between 0 and 1.
func (s *LoadingScene) Progress() float64 {
	return s.progress
}

// Failed reports whether the first level could not be started.
func (s *LoadingScene) Failed() bool {
	return s.failed
}

// Draw renders the loading screen.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 30, B: 20, A: 255})

	const barWidth, barHeight = 320.0, 16.0
	x := float32((WindowWidth - barWidth) / 2)
	y := float32(WindowHeight/2 + 10)

	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, color.RGBA{R: 90, G: 60, B: 30, A: 255}, false)
	vector.DrawFilledRect(screen, x, y, float32(barWidth*s.progress), barHeight, color.RGBA{R: 240, G: 140, B: 30, A: 255}, false)

	msg := fmt.Sprintf("Loading... %d%%", int(s.progress*100))
	if s.failed {
		msg = fmt.Sprintf("Failed to start level %s", s.levelID)
	}
	ebitenutil.DebugPrintAt(screen, msg, (WindowWidth-len(msg)*debugCharWidth)/2, int(y)-24)
}
