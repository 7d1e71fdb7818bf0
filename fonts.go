package main

import (
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// RegularFonts bundles the three face sizes the UI uses.
type RegularFonts struct {
	small, normal, large font.Face
}

// NewRegularFonts builds faces from the bundled Go Regular truetype data.
func NewRegularFonts() *RegularFonts {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	return &RegularFonts{
		small:  truetype.NewFace(f, &truetype.Options{Size: 12}),
		normal: truetype.NewFace(f, &truetype.Options{Size: 18}),
		large:  truetype.NewFace(f, &truetype.Options{Size: 40}),
	}
}
