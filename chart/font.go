// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/go-fonts/liberation/liberationserifbold"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
)

// boldFont is Liberation Serif Bold registered as a regular-weight
// face of its own typeface variant. vgpdf registers each face under
// an empty style but selects it with style "B" when the weight is
// bold, so a bold weight cannot be drawn into a PDF.
var boldFont = font.Font{Typeface: "Liberation", Variant: "SerifBold"}

func init() {
	face, err := opentype.Parse(liberationserifbold.TTF)
	if err != nil {
		panic(err)
	}
	font.DefaultCache.Add(font.Collection{{Font: boldFont, Face: face}})
}
