package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"path"
	"sort"
	"strings"

	audecoder "github.com/decker502/carrothop/internal/audio"
	"github.com/decker502/carrothop/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager is responsible for centralized management of game resources.
//
// Images are declared in the YAML manifest and loaded asynchronously: each one
// is exposed as an *ImageAsset future so the frame loop never blocks on IO.
// Sound effects are decoded on first use and cached.
//
// Thread Safety Note:
// The manager itself is used from the game goroutine only. Background
// goroutines touch nothing but the ImageAsset they resolve.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000))
//	if err := rm.LoadResourceConfig("config/resources.yaml"); err != nil {
//	    return err
//	}
//	rm.LoadImagesAsync()
//	carrot := rm.Image(ImageCarrot) // poll carrot.Ready() each frame
type ResourceManager struct {
	audioContext *audio.Context
	config       *ResourceConfig

	imageDefs map[string]ImageResource // Resource ID -> image definition
	soundDefs map[string]SoundResource // Resource ID -> sound definition
	images    map[string]*ImageAsset   // Resource ID -> future
	sounds    map[string]*audio.Player // Resource ID -> cached player

	readFile func(path string) ([]byte, error)
}

// NewResourceManager creates a ResourceManager reading from the embedded FS.
// audioContext may be nil, in which case sound loading always fails.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext: audioContext,
		imageDefs:    make(map[string]ImageResource),
		soundDefs:    make(map[string]SoundResource),
		images:       make(map[string]*ImageAsset),
		sounds:       make(map[string]*audio.Player),
		readFile:     embedded.ReadFile,
	}
}

// LoadResourceConfig reads and parses the YAML manifest at configPath.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := rm.readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	config, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("resource config %s: %w", configPath, err)
	}
	rm.SetResourceConfig(config)
	return nil
}

// SetResourceConfig installs an already parsed manifest.
func (rm *ResourceManager) SetResourceConfig(config *ResourceConfig) {
	rm.config = config
	rm.imageDefs = make(map[string]ImageResource)
	rm.soundDefs = make(map[string]SoundResource)

	for _, group := range config.Groups {
		for _, img := range group.Images {
			img.Path = config.fullPath(img.Path)
			rm.imageDefs[img.ID] = img
		}
		for _, snd := range group.Sounds {
			snd.Path = config.fullPath(snd.Path)
			rm.soundDefs[snd.ID] = snd
		}
	}
	log.Printf("[ResourceManager] Manifest loaded: %d images, %d sounds", len(rm.imageDefs), len(rm.soundDefs))
}

// LoadImagesAsync starts decoding every image in the manifest.
// Images already requested are not loaded twice.
func (rm *ResourceManager) LoadImagesAsync() {
	for _, id := range rm.ImageIDs() {
		rm.Image(id)
	}
}

// Image returns the future for an image resource, starting its load on first use.
// Unknown IDs yield an asset that never becomes ready.
func (rm *ResourceManager) Image(resourceID string) *ImageAsset {
	if asset, ok := rm.images[resourceID]; ok {
		return asset
	}

	def, ok := rm.imageDefs[resourceID]
	if !ok {
		log.Printf("[ResourceManager] Unknown image resource: %s", resourceID)
		asset := NewFailedImageAsset("", fmt.Errorf("unknown image resource %s", resourceID))
		rm.images[resourceID] = asset
		return asset
	}

	asset := newImageAsset(def.Path)
	rm.images[resourceID] = asset
	go func(readFile func(string) ([]byte, error)) {
		img, err := decodeImage(readFile, def.Path)
		if err != nil {
			log.Printf("[ResourceManager] Failed to load image %s: %v", resourceID, err)
		}
		asset.resolve(img, err)
	}(rm.readFile)
	return asset
}

// ImageDef returns the manifest entry for an image resource.
func (rm *ResourceManager) ImageDef(resourceID string) (ImageResource, bool) {
	def, ok := rm.imageDefs[resourceID]
	return def, ok
}

// ImageIDs returns all image resource IDs in the manifest, sorted.
func (rm *ResourceManager) ImageIDs() []string {
	ids := make([]string, 0, len(rm.imageDefs))
	for id := range rm.imageDefs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Progress reports how many requested images have finished loading
// (successfully or not) out of the total requested.
func (rm *ResourceManager) Progress() (done, total int) {
	for _, asset := range rm.images {
		total++
		if asset.Done() {
			done++
		}
	}
	return done, total
}

// FailedImages returns the IDs of images whose load failed, sorted.
func (rm *ResourceManager) FailedImages() []string {
	var failed []string
	for id, asset := range rm.images {
		if asset.Err() != nil {
			failed = append(failed, id)
		}
	}
	sort.Strings(failed)
	return failed
}

func decodeImage(readFile func(string) ([]byte, error), path string) (image.Image, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadSoundEffect returns a cached player for a sound resource, decoding it on first use.
// WAV and Sun .au files are supported.
func (rm *ResourceManager) LoadSoundEffect(resourceID string) (*audio.Player, error) {
	if player, ok := rm.sounds[resourceID]; ok {
		return player, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context")
	}

	def, ok := rm.soundDefs[resourceID]
	if !ok {
		return nil, fmt.Errorf("unknown sound resource %s", resourceID)
	}

	data, err := rm.readFile(def.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect %s: %w", def.Path, err)
	}

	stream, err := decodeSound(def.Path, data, rm.audioContext.SampleRate())
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", def.Path, err)
	}

	rm.sounds[resourceID] = player
	return player, nil
}

// decodeSound 按扩展名解码音效，输出为 sampleRate 下的 16 位立体声流
func decodeSound(soundPath string, data []byte, sampleRate int) (io.ReadSeeker, error) {
	switch ext := strings.ToLower(path.Ext(soundPath)); ext {
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", soundPath, err)
		}
		return stream, nil
	case ".au":
		stream, err := audecoder.DecodeAU(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU sound effect %s: %w", soundPath, err)
		}
		if stream.SampleRate() == sampleRate {
			return stream, nil
		}
		return audio.Resample(stream, stream.Length(), stream.SampleRate(), sampleRate), nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .au)", soundPath)
	}
}
