package app

import (
	"fmt"

	"zombie-terminate/internal/component"
)

// HUDLines returns the text overlay for the in-run screen.
func (s Snapshot) HUDLines() []string {
	lines := []string{
		fmt.Sprintf("Money: $%d", s.Money),
		fmt.Sprintf("Wave: %d", s.Wave),
	}
	if s.HasPlayer {
		lines = append(lines,
			fmt.Sprintf("Health: %.0f/%.0f", s.Health, s.MaxHealth),
			fmt.Sprintf("Ammo: %d/%d", s.Ammo, s.MaxAmmo),
			fmt.Sprintf("Weapon: %s (%.2fs)", s.Weapon, s.FireRate),
		)
	}
	lines = append(lines, fmt.Sprintf("[B] Fire rate upgrade: $%d", s.FireRateCost))
	return lines
}

// DashboardLine is the progress line shown on the dashboard.
func (s Snapshot) DashboardLine() string {
	return fmt.Sprintf("Level: %d | Money: $%d", s.Level, s.TotalMoney)
}

// Banner returns the centered message for states that pause the world.
func (s Snapshot) Banner() (title, hint string) {
	switch s.Session {
	case component.Paused:
		return "PAUSED", "P to resume, Esc for menu"
	case component.GameOver:
		return "GAME OVER", fmt.Sprintf("Earned $%d. Space to continue", s.Money)
	case component.Win:
		return "YOU WIN!", fmt.Sprintf("Earned $%d. Space to continue", s.Money)
	}
	return "", ""
}
