package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skovand/dragon-cave/pkg/geom"
	"github.com/skovand/dragon-cave/pkg/level"
	"github.com/skovand/dragon-cave/pkg/sim"
)

// The cave is drawn as a character grid. A terminal cell is roughly
// twice as tall as it is wide, so a column covers half the world units
// a row does to keep the aspect close to square.
const (
	minViewRows = 10
	hudRows     = 4
)

type cell struct {
	ch rune
	st lipgloss.Style
}

// camera returns the left edge of the visible world slice. The caver is
// kept a third of the view from the left edge, clamped to the level.
func cameraX(playerX, viewW, levelW float64) float64 {
	cam := playerX - viewW/3
	if cam < 0 {
		cam = 0
	}
	limit := levelW - viewW
	if limit <= 0 {
		return 0
	}
	if cam > limit {
		cam = limit
	}
	return cam
}

func (m GameUI) renderPlaying() string {
	w := m.world
	if w == nil {
		return ""
	}

	rows := m.height - hudRows - 2
	if rows < minViewRows {
		rows = minViewRows
	}
	cols := m.width - 1
	if cols < 20 {
		cols = 20
	}

	scaleY := float64(level.WorldHeight) / float64(rows)
	scaleX := scaleY / 2
	viewW := float64(cols) * scaleX
	camX := cameraX(w.Player.Pos.X, viewW, w.Level.Width)

	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
		for j := range grid[i] {
			grid[i][j] = cell{ch: ' '}
		}
	}

	fill := func(r geom.Rect, ch rune, st lipgloss.Style) {
		c0 := int((r.Left() - camX) / scaleX)
		c1 := int((r.Right() - camX) / scaleX)
		r0 := int(r.Top() / scaleY)
		r1 := int(r.Bottom() / scaleY)
		if r1 <= r0 {
			r1 = r0 + 1
		}
		if c1 <= c0 {
			c1 = c0 + 1
		}
		for row := r0; row < r1; row++ {
			if row < 0 || row >= rows {
				continue
			}
			for col := c0; col < c1; col++ {
				if col < 0 || col >= cols {
					continue
				}
				grid[row][col] = cell{ch: ch, st: st}
			}
		}
	}

	for _, p := range w.Level.Platforms {
		fill(p.Rect(), '▒', caveStyle)
	}
	for _, o := range w.Level.Obstacles {
		fill(geom.RectAt(o.X, o.Y, sim.ObstacleSize, sim.ObstacleSize), '█', rockStyle)
	}
	fill(geom.RectAt(w.Level.Exit.X, w.Level.Exit.Y, sim.ExitW, sim.ExitH), '║', exitStyle)

	for _, t := range w.Treasures {
		fill(geom.RectAt(t.X, t.Y, sim.TreasureSize, sim.TreasureSize), '$', treasureStyle)
	}
	if w.BigTreasure != nil {
		fill(*w.BigTreasure, '◆', treasureStyle)
	}
	for _, r := range w.Rocks {
		fill(r.Rect(), 'o', rockStyle)
	}
	for _, f := range w.Fireballs {
		fill(f.Rect(), '*', dragonStyle)
	}
	for _, d := range w.Dragons {
		st := dragonStyle
		if d.State == sim.DragonSleeping {
			st = dragonSleepStyle
		}
		fill(d.Rect(), 'D', st)
	}
	fill(w.Player.Rect(), '@', caverStyle)

	var b strings.Builder
	b.WriteString(m.renderHUD())
	for _, row := range grid {
		var line strings.Builder
		for _, c := range row {
			if c.ch == ' ' {
				line.WriteRune(' ')
			} else {
				line.WriteString(c.st.Render(string(c.ch)))
			}
		}
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (m GameUI) renderHUD() string {
	w := m.world
	lvl := m.levels[m.sess.LevelIndex]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
		titleStyle.Render(fmt.Sprintf("Level %d/%d: %s",
			m.sess.LevelIndex+1, len(m.levels), titleCaser.String(lvl.Name))),
		treasureStyle.Render(fmt.Sprintf("$ %d left", w.RemainingTreasures())),
		hudStyle.Render(fmt.Sprintf("Level %d", m.sess.LevelScore)),
		hudStyle.Render(fmt.Sprintf("Total %d", m.sess.TotalScore)),
	))

	var states []string
	for i, d := range w.Dragons {
		label := fmt.Sprintf("Dragon %d: %s", i+1, titleCaser.String(dragonStateLabel(d.State)))
		if d.State == sim.DragonSleeping {
			states = append(states, dragonSleepStyle.Render(label))
		} else {
			states = append(states, dragonStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(states, hudDimStyle.Render("  |  ")) + "\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	} else {
		b.WriteString(hudDimStyle.Render("←/→ move  ↑ jump  x rock  q quit") + "\n")
	}
	b.WriteString(hudDimStyle.Render(strings.Repeat("─", max(10, min(m.width-1, 80)))) + "\n")
	return b.String()
}

func dragonStateLabel(s sim.DragonState) string {
	switch s {
	case sim.DragonSleeping:
		return "zzzz"
	case sim.DragonWaking:
		return "waking"
	case sim.DragonChasing:
		return "hunting you"
	case sim.DragonDistracted:
		return "distracted"
	}
	return string(s)
}
