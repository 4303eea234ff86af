package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"zombie-terminate/internal/app"
	"zombie-terminate/internal/config"
	"zombie-terminate/internal/defs"
	"zombie-terminate/internal/input"
)

// Dashboard is the menu screen: difficulty, persistent upgrades, play and
// quit. Buttons are rebuilt from the snapshot each frame so labels and
// disabled states follow the progression.
type Dashboard struct {
	face    font.Face
	buttons []*Button
}

func NewDashboard(face font.Face) *Dashboard {
	return &Dashboard{face: face}
}

type buttonSpec struct {
	text     string
	action   input.Action
	disabled bool
	selected bool
}

// Layout rebuilds the buttons for s.
func (d *Dashboard) Layout(s app.Snapshot) {
	specs := []buttonSpec{
		{text: "Play", action: input.Start, disabled: !s.Difficulty.IsSet()},
		{text: "Easy", action: input.DifficultyEasy, selected: s.Difficulty == defs.DifficultyEasy},
		{text: "Medium", action: input.DifficultyMedium, selected: s.Difficulty == defs.DifficultyMedium},
		{text: "Hard", action: input.DifficultyHard, selected: s.Difficulty == defs.DifficultyHard},
		{
			text:     fmt.Sprintf("Upgrade Weapon ($%d) Lv %d", s.WeaponUpgradeCost, s.WeaponUpgradeLevel),
			action:   input.UpgradeWeapon,
			disabled: s.TotalMoney < s.WeaponUpgradeCost,
		},
		{
			text:     fmt.Sprintf("Upgrade Ammo ($%d) Lv %d", s.AmmoUpgradeCost, s.MaxAmmoLevel),
			action:   input.UpgradeAmmo,
			disabled: s.TotalMoney < s.AmmoUpgradeCost,
		},
		unlockSpec("Shotgun", s.ShotgunCost, s.UnlockedShotgun, s.TotalMoney, input.UnlockShotgun),
		unlockSpec("Rifle", s.RifleCost, s.UnlockedRifle, s.TotalMoney, input.UnlockRifle),
		{text: "Quit", action: input.Quit},
	}

	x := (config.ScreenWidth - config.DashboardButtonWidth) / 2
	y := config.ScreenHeight/2 - len(specs)*(config.DashboardButtonHeight+config.DashboardButtonGap)/2 + 40
	d.buttons = d.buttons[:0]
	for _, sp := range specs {
		d.buttons = append(d.buttons, &Button{
			Rect:     image.Rect(x, y, x+config.DashboardButtonWidth, y+config.DashboardButtonHeight),
			Text:     sp.text,
			Action:   sp.action,
			Disabled: sp.disabled,
			Selected: sp.selected,
		})
		y += config.DashboardButtonHeight + config.DashboardButtonGap
	}
}

// unlockSpec builds a one-time purchase button; owned items stay disabled.
func unlockSpec(name string, cost int, owned bool, money int, action input.Action) buttonSpec {
	text := fmt.Sprintf("Unlock %s ($%d)", name, cost)
	if owned {
		text = name + " Owned"
	}
	return buttonSpec{text: text, action: action, disabled: owned || money < cost}
}

// Click returns the action of the enabled button under (x, y).
func (d *Dashboard) Click(x, y int) (input.Action, bool) {
	for _, b := range d.buttons {
		if b.Contains(x, y) && !b.Disabled {
			return b.Action, true
		}
	}
	return 0, false
}

func (d *Dashboard) Draw(screen *ebiten.Image, s app.Snapshot, mouseX, mouseY int) {
	cx := config.ScreenWidth / 2
	drawTextCentered(screen, d.face, config.WindowTitle, cx, 60, config.TextLightColor)
	drawTextCentered(screen, d.face, s.DashboardLine(), cx, 90, config.TextLightColor)
	drawTextCentered(screen, d.face, "Difficulty: "+s.Difficulty.String(), cx, 110, config.TextLightColor)

	for _, b := range d.buttons {
		b.Draw(screen, d.face, b.Contains(mouseX, mouseY))
	}
}
