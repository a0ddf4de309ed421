package binding

import (
	"context"
	"log/slog"
)

// MenuPaneName is the name of the main menu pane.
const MenuPaneName = "menu"

// Menu swaps game panes in and out of the container.
type Menu struct {
	registry  *Registry
	container Container
	active    GamePane
}

func NewMenu(registry *Registry, container Container) *Menu {
	return &Menu{
		registry:  registry,
		container: container,
	}
}

func (m *Menu) Name() string {
	return MenuPaneName
}

func (m *Menu) Registry() *Registry {
	return m.registry
}

// Active returns the visible pane.
func (m *Menu) Active() Pane {
	if m.active == nil {
		return m
	}
	return m.active
}

// ActiveGame returns the visible game pane, nil while the menu is shown.
func (m *Menu) ActiveGame() GamePane {
	return m.active
}

// OnGameSelected builds the selected game's pane and shows it. Unknown
// selections are ignored.
func (m *Menu) OnGameSelected(index int) {
	entry, ok := m.registry.Lookup(index)
	if !ok {
		slog.WarnContext(context.Background(), "unknown game selection", "selection.index", index)
		return
	}

	pane := entry.NewPane()
	m.container.Show(pane)
	pane.Render()
	m.active = pane
	slog.Info("game selected", "game.id", entry.ID, "pane.name", pane.Name())
}

// OnReturnToMenuRequested puts the menu back in the container.
func (m *Menu) OnReturnToMenuRequested() {
	m.active = nil
	m.container.Show(m)
}
