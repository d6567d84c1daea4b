// levelcheck 校验关卡、资源清单与物理配置
//
// 默认检查嵌入的资源；--dir 指定目录时检查磁盘上的资源（编辑关卡时使用）。
//
//	go run ./cmd/levelcheck
//	go run ./cmd/levelcheck --dir assets
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/decker502/carrothop/assets"
	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/game"
)

func main() {
	dir := flag.String("dir", "", "资源目录（默认使用嵌入资源）")
	flag.Parse()

	var fsys fs.FS = assets.FS
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}

	if failures := run(fsys, os.Stdout); failures > 0 {
		fmt.Printf("❌ 共 %d 项检查失败\n", failures)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有检查通过\n")
}

// run 执行全部检查，返回失败项数量
func run(fsys fs.FS, w io.Writer) int {
	failures := 0
	fail := func(format string, args ...any) {
		failures++
		fmt.Fprintf(w, "❌ "+format+"\n", args...)
	}

	checkLevels(fsys, w, fail)
	checkManifest(fsys, w, fail)

	if data, err := fs.ReadFile(fsys, config.PhysicsConfigPath); err != nil {
		fail("读取物理配置失败: %v", err)
	} else if _, err := config.ParsePhysicsConfig(data); err != nil {
		fail("物理配置无效: %v", err)
	} else {
		fmt.Fprintf(w, "✅ %s\n", config.PhysicsConfigPath)
	}

	return failures
}

func checkLevels(fsys fs.FS, w io.Writer, fail func(string, ...any)) {
	files, err := fs.Glob(fsys, config.LevelsDir+"/*.yaml")
	if err != nil || len(files) == 0 {
		fail("%s 下没有关卡文件", config.LevelsDir)
		return
	}

	levels := make(map[string]*config.LevelConfig, len(files))
	for _, f := range files {
		data, err := fs.ReadFile(fsys, f)
		if err != nil {
			fail("读取 %s 失败: %v", f, err)
			continue
		}
		level, err := config.ParseLevelConfig(data)
		if err != nil {
			fail("%s: %v", f, err)
			continue
		}
		if want := strings.TrimSuffix(path.Base(f), ".yaml"); level.ID != want {
			fail("%s 声明的关卡ID为 %q", f, level.ID)
			continue
		}
		levels[level.ID] = level
		fmt.Fprintf(w, "✅ %s: %s（%d 根胡萝卜，%d 个平台）\n", level.ID, level.Name, len(level.Carrots), len(level.Platforms))
	}

	if _, ok := levels[config.DefaultLevelID]; !ok {
		fail("缺少起始关卡 %s", config.DefaultLevelID)
	}
	for id, level := range levels {
		if level.NextLevel != "" && levels[level.NextLevel] == nil {
			fail("关卡 %s 的下一关 %s 不存在", id, level.NextLevel)
		}
	}
}

func checkManifest(fsys fs.FS, w io.Writer, fail func(string, ...any)) {
	data, err := fs.ReadFile(fsys, config.ResourceConfigPath)
	if err != nil {
		fail("读取资源清单失败: %v", err)
		return
	}
	manifest, err := game.ParseResourceConfig(data)
	if err != nil {
		fail("资源清单无效: %v", err)
		return
	}

	declared := make(map[string]bool)
	count := 0
	check := func(id, p string) {
		declared[id] = true
		count++
		full := p
		if manifest.BasePath != "" {
			full = path.Join(manifest.BasePath, p)
		}
		if _, err := fs.Stat(fsys, full); err != nil {
			fail("资源 %s 文件缺失: %s", id, full)
		}
	}
	for _, group := range manifest.Groups {
		for _, img := range group.Images {
			check(img.ID, img.Path)
		}
		for _, snd := range group.Sounds {
			check(snd.ID, snd.Path)
		}
	}

	for _, id := range []string{
		game.ImagePlayer, game.ImageCarrot, game.ImagePlatform, game.ImageBackground, game.ImageCoin,
		game.SoundCollect, game.SoundCoin, game.SoundJump,
	} {
		if !declared[id] {
			fail("资源清单缺少 %s", id)
		}
	}
	fmt.Fprintf(w, "✅ %s: %d 项资源\n", config.ResourceConfigPath, count)
}
