package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	DebugMode                 bool
	WindowWidth, WindowHeight int
	StadiumName               string
	OutputDir                 string
	theFonts                  *RegularFonts
)

func init() {
	flag.BoolVar(&DebugMode, "debug", false, "turn debug graphics on")
	flag.IntVar(&WindowWidth, "width", 1920/2, "width of window in pixels")
	flag.IntVar(&WindowHeight, "height", 1080/2, "height of window in pixels")
	flag.StringVar(&StadiumName, "name", "New Stadium", "stadium name used in exports")
	flag.StringVar(&OutputDir, "out", ".", "directory exported files are written to")
}

func main() {
	flag.Parse()

	if DebugMode {
		for i, a := range os.Args {
			fmt.Println(i, a)
		}
	}

	theFonts = NewRegularFonts()

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Stadium Creator")
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
