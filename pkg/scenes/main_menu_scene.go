package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const menuGroup = "menu"

var (
	menuBackgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	menuTitleColor      = color.RGBA{R: 120, G: 255, B: 140, A: 255}
	menuHintColor       = color.RGBA{R: 160, G: 160, B: 180, A: 255}
)

// MainMenuScene represents the main menu screen of the game.
// It offers start and sound toggle buttons, plus quit on desktop.
type MainMenuScene struct {
	services *Services

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	soundButton        ecs.EntityID
}

// NewMainMenuScene creates and returns a new MainMenuScene instance.
//
// Parameters:
//   - svc: shared services (scene manager, game state, settings, strings, input).
//
// Returns:
//   - A pointer to the newly created MainMenuScene.
func NewMainMenuScene(svc *Services) *MainMenuScene {
	scene := &MainMenuScene{
		services:      svc,
		entityManager: ecs.NewEntityManager(),
	}
	_, pointer := svc.inputs()
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager, pointer)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager, svc.Font)

	labels := []string{svc.Strings.Get(game.StrStart), scene.soundLabel()}
	callbacks := []func(){scene.onStartClicked, scene.onSoundClicked}
	// Mobile platforms own the app lifecycle, so there is no quit button there.
	if !utils.IsMobile() {
		labels = append(labels, svc.Strings.Get(game.StrQuit))
		callbacks = append(callbacks, scene.onQuitClicked)
	}

	width, height := svc.screenSize()
	ids := entities.NewButtonColumn(scene.entityManager, width/2, height/2, menuGroup, true, labels, callbacks)
	scene.soundButton = ids[1]

	log.Printf("[MainMenuScene] Created with %d buttons", len(ids))
	return scene
}

// Update handles pointer interaction with the menu buttons.
func (m *MainMenuScene) Update(deltaTime float64) {
	m.buttonSystem.Update(deltaTime)
}

// Draw renders the title, the controls hint and the buttons.
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackgroundColor)

	width, height := m.services.screenSize()
	drawCenteredText(screen, m.services.Font, m.services.Strings.Get(game.StrTitle), width/2, height/3, menuTitleColor)
	drawCenteredText(screen, m.services.Font, m.services.Strings.Get(game.StrControlsHint), width/2, height-40, menuHintColor)

	m.buttonRenderSystem.Draw(screen)
}

func (m *MainMenuScene) onStartClicked() {
	m.services.Audio.PlaySound(game.SoundButtonClick)
	m.services.State.ResetForNewGame()
	m.services.State.ResetScore()
	m.services.Scenes.LoadLevel(1)
}

func (m *MainMenuScene) onSoundClicked() {
	settings := m.services.Settings
	if settings == nil {
		return
	}
	enabled := settings.ToggleSound()
	if err := settings.Save(); err != nil {
		log.Printf("[MainMenuScene] Warning: failed to save settings: %v", err)
	}
	log.Printf("[MainMenuScene] Sound enabled: %v", enabled)
	m.services.Audio.PlaySound(game.SoundButtonClick)

	if button, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, m.soundButton); ok {
		button.Text = m.soundLabel()
	}
}

func (m *MainMenuScene) onQuitClicked() {
	m.services.Scenes.RequestQuit()
}

func (m *MainMenuScene) soundLabel() string {
	if m.services.Settings != nil && !m.services.Settings.GetSettings().SoundEnabled {
		return m.services.Strings.Get(game.StrSoundOff)
	}
	return m.services.Strings.Get(game.StrSoundOn)
}

// drawCenteredText draws a single line centered on (x, y).
func drawCenteredText(screen *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
