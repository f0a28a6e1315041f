// Package tui renders a card in the terminal and forwards clicks and key
// presses to the session.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/message"

	"svw.info/bingo/internal/domain"
	"svw.info/bingo/internal/i18n"
	"svw.info/bingo/internal/usecase"
)

const (
	cellW   = 7
	cellH   = 3
	originX = 2
	originY = 2
)

var (
	styleBase        = tcell.StyleDefault.Background(tcell.NewRGBColor(34, 45, 65)).Foreground(tcell.ColorWhite)
	styleCell        = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(34, 45, 65)).Bold(true)
	styleMarked      = tcell.StyleDefault.Background(tcell.NewRGBColor(211, 211, 211)).Foreground(tcell.ColorGray)
	styleBingo       = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 224, 176)).Foreground(tcell.NewRGBColor(34, 45, 65)).Bold(true)
	styleReachBorder = tcell.StyleDefault.Background(tcell.NewRGBColor(34, 45, 65)).Foreground(tcell.NewRGBColor(255, 165, 0))
	styleDimBorder   = tcell.StyleDefault.Background(tcell.NewRGBColor(34, 45, 65)).Foreground(tcell.NewRGBColor(211, 211, 211))
	styleHint        = tcell.StyleDefault.Background(tcell.NewRGBColor(34, 45, 65)).Foreground(tcell.NewRGBColor(127, 211, 255))
	styleDialog      = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 140, 0)).Foreground(tcell.ColorWhite).Bold(true)
)

// Game is the terminal front-end for one session.
type Game struct {
	screen  tcell.Screen
	uc      *usecase.Service
	printer *message.Printer
	sound   Sounder
	log     *slog.Logger

	snap      usecase.Snapshot
	cursorRow int
	cursorCol int
	dialogs   []string
	hint      map[domain.CellCoord]bool
	status    string
}

// New wires a game to an initialised screen.
func New(screen tcell.Screen, uc *usecase.Service, p *message.Printer, sound Sounder, log *slog.Logger) *Game {
	if sound == nil {
		sound = Silent{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Game{screen: screen, uc: uc, printer: p, sound: sound, log: log, cursorRow: domain.FreeRow, cursorCol: domain.FreeCol}
}

// Deal replaces the card and board with a fresh one.
func (g *Game) Deal(ctx context.Context) error {
	snap, st, err := g.uc.NewCard(ctx)
	if err != nil {
		return err
	}
	g.snap = snap
	g.dialogs = nil
	g.hint = nil
	g.status = g.printer.Sprintf(i18n.KeyCards, snap.Issued)
	g.log.Debug("dealt", "attempts", st.Attempts, "fingerprint", snap.Fingerprint.Short())
	return nil
}

// Run deals the first card and processes events until the player quits or
// ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.screen.EnableMouse()
	g.screen.SetStyle(styleBase)
	if err := g.Deal(ctx); err != nil {
		return err
	}
	g.draw()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := g.HandleEvent(ctx, ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			g.draw()
		}
	}
}

// HandleEvent applies one input event and reports whether to quit.
func (g *Game) HandleEvent(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true, nil
		}
		if len(g.dialogs) > 0 {
			g.dialogs = g.dialogs[1:]
			return false, nil
		}
		return false, g.handleKey(ctx, ev)

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false, nil
		}
		if len(g.dialogs) > 0 {
			g.dialogs = g.dialogs[1:]
			return false, nil
		}
		x, y := ev.Position()
		if row, col, ok := cellAt(x, y); ok {
			g.cursorRow, g.cursorCol = row, col
			return false, g.mark(ctx, row, col)
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return false, nil
}

func (g *Game) handleKey(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyUp:
		g.cursorRow = (g.cursorRow + domain.Size - 1) % domain.Size
	case tcell.KeyDown:
		g.cursorRow = (g.cursorRow + 1) % domain.Size
	case tcell.KeyLeft:
		g.cursorCol = (g.cursorCol + domain.Size - 1) % domain.Size
	case tcell.KeyRight:
		g.cursorCol = (g.cursorCol + 1) % domain.Size
	case tcell.KeyEnter:
		return g.mark(ctx, g.cursorRow, g.cursorCol)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return g.mark(ctx, g.cursorRow, g.cursorCol)
		case 'n':
			return g.Deal(ctx)
		case 'h':
			return g.showHint(ctx)
		}
	}
	return nil
}

func (g *Game) mark(ctx context.Context, row, col int) error {
	if g.snap.View.Cells[row][col].Marked {
		// Marked cells behave like disabled buttons.
		return nil
	}
	events, snap, err := g.uc.Mark(ctx, row, col)
	if err != nil {
		return err
	}
	g.snap = snap
	g.hint = nil
	for _, ev := range events {
		if ev.Kind == domain.EventBingo {
			g.sound.Bingo()
			g.dialogs = append(g.dialogs, g.printer.Sprintf(i18n.KeyBingo))
		} else {
			g.sound.Reach()
			g.dialogs = append(g.dialogs, g.printer.Sprintf(i18n.KeyReach))
		}
	}
	return nil
}

func (g *Game) showHint(ctx context.Context) error {
	h, ok, err := g.uc.Hint(ctx)
	if err != nil && !errors.Is(err, usecase.ErrNoCard) {
		return err
	}
	g.hint = map[domain.CellCoord]bool{}
	if !ok {
		g.status = ""
		return nil
	}
	for _, c := range h.Cells {
		g.hint[c] = true
	}
	g.status = g.printer.Sprintf(i18n.KeyHint, len(h.Cells))
	return nil
}

// cellAt maps a screen position to a card cell.
func cellAt(x, y int) (row, col int, ok bool) {
	if x < originX || y < originY+1 {
		return 0, 0, false
	}
	col = (x - originX) / cellW
	row = (y - originY - 1) / cellH
	if !domain.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

func (g *Game) draw() {
	g.screen.Clear()
	for i, r := range "BINGO" {
		g.text(originX+i*cellW+cellW/2-1, originY, string(r), styleBase.Bold(true))
	}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			g.drawCell(r, c)
		}
	}
	y := originY + 1 + domain.Size*cellH + 1
	g.text(originX, y, g.status, styleBase)
	g.text(originX, y+1, g.printer.Sprintf(i18n.KeyHelp), styleBase.Dim(true))
	if len(g.dialogs) > 0 {
		g.drawDialog(g.dialogs[0])
	}
	g.screen.Show()
}

func (g *Game) drawCell(r, c int) {
	cell := g.snap.View.Cells[r][c]
	x0 := originX + c*cellW
	y0 := originY + 1 + r*cellH

	framed, border := true, styleBase
	switch {
	case g.hint[domain.CellCoord{Row: r, Col: c}]:
		border = styleHint
	case cell.ReachOpen:
		border = styleReachBorder
	case cell.ReachMarked:
		border = styleDimBorder
	default:
		framed = false
	}
	fill := styleCell
	switch {
	case cell.Bingo:
		fill = styleBingo
	case cell.Marked:
		fill = styleMarked
	}

	// Border on the outer columns and rows, value centred.
	for dy := 0; dy < cellH; dy++ {
		for dx := 0; dx < cellW-1; dx++ {
			ch, st := ' ', fill
			if dx == 0 || dx == cellW-2 {
				ch, st = ' ', border
				if framed {
					ch = '│'
				}
			}
			g.screen.SetContent(x0+dx, y0+dy, ch, nil, st)
		}
	}
	label := strconv.Itoa(cell.Value)
	if domain.IsFree(r, c) {
		label = g.printer.Sprintf(i18n.KeyFree)
	}
	lx := x0 + (cellW-1-runewidth.StringWidth(label))/2
	g.text(lx, y0+1, label, fill)
	if r == g.cursorRow && c == g.cursorCol {
		g.screen.SetContent(x0+1, y0+1, '▶', nil, fill)
	}
}

func (g *Game) drawDialog(msg string) {
	w := runewidth.StringWidth(msg) + 6
	x0 := originX + (domain.Size*cellW-w)/2
	y0 := originY + 1 + domain.Size*cellH/2 - 1
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < w; dx++ {
			g.screen.SetContent(x0+dx, y0+dy, ' ', nil, styleDialog)
		}
	}
	g.text(x0+3, y0+1, msg, styleDialog)
}

func (g *Game) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}
