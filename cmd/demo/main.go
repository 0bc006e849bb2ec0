// Command demo drives a vtscreen.Screen directly through its API -
// never by parsing escape sequences - and renders the result with
// tcell. It exists to exercise Draw against a real terminal backend
// and is not part of the library surface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/vtscreen/vtscreen"
)

func main() {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("tcell.NewScreen: %v", err)
	}
	if err := tcellScreen.Init(); err != nil {
		log.Fatalf("tcell Init: %v", err)
	}
	defer tcellScreen.Fini()

	defStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	tcellScreen.SetStyle(defStyle)

	cc := vtscreen.DefaultCursorColor
	tcellScreen.SetCursorStyle(tcell.CursorStyleSteadyBlock, tcell.NewRGBColor(int32(cc.R), int32(cc.G), int32(cc.B)))

	w, h := tcellScreen.Size()
	scr, err := vtscreen.New(w, h,
		vtscreen.WithScrollbackMax(1000),
		vtscreen.WithLog(func(file string, line int, fn, subsystem string, sev vtscreen.Severity, format string, args ...any) {
			fmt.Fprintf(os.Stderr, "%s:%d %s[%s] sev=%d %s\n", file, line, fn, subsystem, sev, fmt.Sprintf(format, args...))
		}),
	)
	if err != nil {
		log.Fatalf("vtscreen.New: %v", err)
	}
	// tcell draws its own cursor block (styled above in
	// DefaultCursorColor) at the position we report each frame, so the
	// core shouldn't also invert the cursor cell while drawing.
	scr.SetFlags(vtscreen.FlagHideCursor)

	banner := "vtscreen demo - type to write, arrows to move, Ctrl+U clears, Esc quits"
	for _, r := range banner {
		scr.WriteRune(r, vtscreen.DefaultAttr)
	}
	scr.MoveTo(0, 1)

	render(scr, tcellScreen)

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- tcellScreen.PollEvent()
		}
	}()

	for ev := range eventChan {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if handleKey(scr, ev) {
				return
			}
		case *tcell.EventResize:
			nw, nh := tcellScreen.Size()
			_ = scr.Resize(nw, nh)
			tcellScreen.Sync()
		}
		render(scr, tcellScreen)
	}
}

// handleKey drives the Screen's operations layer directly from a
// decoded tcell key event and reports whether the demo should exit.
func handleKey(scr *vtscreen.Screen, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyCtrlU:
		scr.EraseScreen(false)
		scr.MoveTo(0, 0)
	case tcell.KeyEnter:
		scr.MoveTo(0, scr.GetCursorY()+1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		scr.MoveLeft(1)
		scr.EraseCursor()
	case tcell.KeyUp:
		scr.MoveUp(1, true)
	case tcell.KeyDown:
		scr.MoveDown(1, true)
	case tcell.KeyLeft:
		scr.MoveLeft(1)
	case tcell.KeyRight:
		scr.MoveRight(1)
	case tcell.KeyRune:
		scr.WriteRune(ev.Rune(), vtscreen.DefaultAttr)
	}
	return false
}

// render walks the Screen's visible content via Draw and blits it
// into the tcell backend; this is the only place vtscreen cell data
// is translated into pixels/glyphs on screen.
func render(scr *vtscreen.Screen, out tcell.Screen) {
	scr.Draw(
		func(user any) error { out.Clear(); return nil },
		func(user any, x, y int, ch vtscreen.SymbolID, width int, attr vtscreen.Attr) error {
			if ch == 0 {
				return nil
			}
			style := styleFromAttr(attr)
			out.SetContent(x, y, rune(ch), nil, style)
			return nil
		},
		func(user any) { out.Show() },
		nil,
	)
	out.ShowCursor(scr.GetCursorX(), scr.GetCursorY())
}

func styleFromAttr(attr vtscreen.Attr) tcell.Style {
	fr, fg, fb := attr.ResolveFg()
	br, bg, bb := attr.ResolveBg()
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fr), int32(fg), int32(fb))).
		Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb))).
		Bold(attr.Bold).
		Underline(attr.Underline).
		Reverse(attr.Inverse)
	return style
}
