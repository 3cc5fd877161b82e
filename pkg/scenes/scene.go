package scenes

import (
	"math/rand"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Services bundles the long-lived collaborators shared by every scene.
// It is built once at startup and passed by reference; scenes never reach
// for package-level state.
type Services struct {
	Config   *config.GameplayConfig
	State    *game.GameState
	Scenes   *game.SceneManager
	Audio    *game.AudioManager
	Settings *game.SettingsManager
	Strings  *game.UIStrings
	Input    *utils.Input
	Font     text.Face
	Rand     *rand.Rand
}

// DefaultFontFace returns the bitmap face used for all in-game text.
func DefaultFontFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// inputs returns the input adapters as interfaces, or nils when no input is wired.
func (s *Services) inputs() (systems.InputProvider, systems.PointerInput) {
	if s.Input == nil {
		return nil, nil
	}
	return s.Input, s.Input
}

// screenSize returns the logical screen size as floats.
func (s *Services) screenSize() (float64, float64) {
	return float64(s.Config.Window.Width), float64(s.Config.Window.Height)
}
