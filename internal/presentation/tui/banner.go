package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"             _                 _   ", "#34d399"},
	{"    __ _  __| |_   _____ _ __ | |_ ", "#10b981"},
	{"   / _` |/ _` \\ \\ / / _ \\ '_ \\| __|", "#f87171"},
	{"  | (_| | (_| |\\ V /  __/ | | | |_ ", "#ef4444"},
	{"   \\__,_|\\__,_| \\_/ \\___|_| |_|\\__|", "#fbbf24"},
}

// PrintBanner writes the advent banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Christmas palette, top to bottom
	fmt.Fprintln(out)
	for _, l := range bannerLines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(out, out.String("   v"+version).Faint())
	fmt.Fprintln(out)
}
