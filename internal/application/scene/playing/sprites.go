package playing

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteKeys lists the images looked up in the sprite directory as <key>.png
var SpriteKeys = []string{
	"player-small", "player-large",
	"goomba-brown", "goomba-black",
	"turtle-walking", "turtle-stomped", "turtle-shell",
	"coin", "mushroom", "life-mushroom", "star",
	"ground",
}

// Sprites holds the images that loaded successfully. Missing keys draw as rectangles.
type Sprites struct {
	images map[string]*ebiten.Image
}

// LoadSprites loads every SpriteKeys image found in dir. Missing files are logged once at debug
// and a summary warning is emitted when nothing loaded.
func LoadSprites(dir string, logger *log.Logger) *Sprites {
	s := &Sprites{images: make(map[string]*ebiten.Image)}
	for _, key := range SpriteKeys {
		path := filepath.Join(dir, key+".png")
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			logger.Debug("sprite missing", "path", path, "error", err)
			continue
		}
		s.images[key] = img
	}

	if len(s.images) == 0 {
		logger.Warn("no sprites found, drawing rectangles", "dir", dir)
	}
	return s
}

// Get returns the first image present among keys
func (s *Sprites) Get(keys ...string) (*ebiten.Image, bool) {
	if s == nil {
		return nil, false
	}
	for _, k := range keys {
		if img, ok := s.images[k]; ok {
			return img, true
		}
	}
	return nil, false
}

// Len returns the number of loaded images
func (s *Sprites) Len() int {
	if s == nil {
		return 0
	}
	return len(s.images)
}
