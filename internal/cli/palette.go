package cli

import "github.com/fatih/color"

// palette holds the console colors for each kind of message.
type palette struct {
	banner   *color.Color
	option   *color.Color
	prompt   *color.Color
	heading  *color.Color
	success  *color.Color
	warn     *color.Color
	err      *color.Color
	fatal    *color.Color
	muted    *color.Color
	farewell *color.Color
}

// newPalette returns the menu palette. With enabled false every color
// prints plain text; otherwise fatih/color's terminal detection applies.
func newPalette(enabled bool) palette {
	p := palette{
		banner:   color.New(color.FgCyan),
		option:   color.New(color.FgHiWhite),
		prompt:   color.New(color.FgWhite),
		heading:  color.New(color.FgHiYellow),
		success:  color.New(color.FgGreen),
		warn:     color.New(color.FgYellow),
		err:      color.New(color.FgHiRed),
		fatal:    color.New(color.FgRed),
		muted:    color.New(color.FgHiBlack),
		farewell: color.New(color.FgHiMagenta),
	}
	if !enabled {
		for _, c := range p.all() {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) all() []*color.Color {
	return []*color.Color{
		p.banner, p.option, p.prompt, p.heading, p.success,
		p.warn, p.err, p.fatal, p.muted, p.farewell,
	}
}
