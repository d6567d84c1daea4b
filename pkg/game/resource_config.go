package game

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// Resource IDs used by the game. They must be declared in config/resources.yaml.
const (
	ImagePlayer     = "IMAGE_PLAYER"
	ImageCarrot     = "IMAGE_CARROT"
	ImagePlatform   = "IMAGE_PLATFORM"
	ImageBackground = "IMAGE_BACKGROUND"
	ImageCoin       = "IMAGE_COIN"

	SoundCollect = "SOUND_COLLECT"
	SoundCoin    = "SOUND_COIN"
	SoundJump    = "SOUND_JUMP"
)

// ResourceConfig represents the resource manifest loaded from YAML.
// It defines the structure of config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: ""
//	groups:
//	  init:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Prefix joined to every resource path
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a collection of resources that are loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource describes a single image or sprite sheet.
//
// Sprite sheets are cut into a grid of FrameWidth x FrameHeight cells.
// Frames is the number of columns in one animation row.
//
// Example:
//
//	- id: IMAGE_CARROT
//	  path: images/carrot.png
//	  frameWidth: 16
//	  frameHeight: 16
//	  frames: 4
type ImageResource struct {
	ID          string `yaml:"id"`
	Path        string `yaml:"path"`
	FrameWidth  int    `yaml:"frameWidth,omitempty"`
	FrameHeight int    `yaml:"frameHeight,omitempty"`
	Frames      int    `yaml:"frames,omitempty"`
}

// SoundResource describes a single sound effect (WAV or Sun .au).
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// ParseResourceConfig parses and validates a resource manifest.
//
// Validation rules:
//   - every resource has a non-empty ID and path
//   - IDs are unique across all groups
//   - sprite sheet frame sizes are not negative
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	seen := make(map[string]string)
	check := func(group, id, p string) error {
		if id == "" || p == "" {
			return fmt.Errorf("group %s: resource with empty id or path", group)
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("duplicate resource id %s (groups %s and %s)", id, prev, group)
		}
		seen[id] = group
		return nil
	}

	for name, group := range config.Groups {
		for _, img := range group.Images {
			if err := check(name, img.ID, img.Path); err != nil {
				return nil, err
			}
			if img.FrameWidth < 0 || img.FrameHeight < 0 || img.Frames < 0 {
				return nil, fmt.Errorf("image %s: negative frame geometry", img.ID)
			}
		}
		for _, snd := range group.Sounds {
			if err := check(name, snd.ID, snd.Path); err != nil {
				return nil, err
			}
		}
	}

	return &config, nil
}

// fullPath joins the manifest's base path with a resource's relative path.
func (c *ResourceConfig) fullPath(relativePath string) string {
	if c.BasePath == "" {
		return relativePath
	}
	return path.Join(c.BasePath, relativePath)
}
