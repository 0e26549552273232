package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/nim/game"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Game Number: 10000, Move 100`

	blockSize = 12 // side of a drawn block, in pixels
	blockGap  = 4
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Encoder draws one frame per move: the pile as a row of blocks, the last move, the name of the game,
// the game number and, once the pile is empty, the winner.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	io.Writer
	face font.Face

	maxH, maxW  int // maxHeight and maxWidth
	padH, padW  int // padding so everything don't start at the topleft
	initialized bool
}

// NewGifEncoder with height and width
func NewGifEncoder(h, w int) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		out: &gif.GIF{LoopCount: -1},
	}
}

func lineHeight() int { return int(math.Ceil(fontsize * lineheight * dpi / 72)) }

// Encode a game
func (enc *Encoder) Encode(ms game.MetaState) error {
	g := ms.State()
	if g == nil {
		return errors.New("Cannot encode a nil game")
	}
	gameNum := ms.GameNumber()
	gameName := ms.Name()

	if !enc.initialized {
		// lazy init of specifications
		enc.face = truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		enc.Drawer.Src = image.Black
		enc.Drawer.Face = enc.face

		// the widest frame is the first one: the full pile
		blocks := minInt(g.Start(), game.MaxDrawn)
		blocksW := blocks * (blockSize + blockGap)
		maxW := maxInt(blocksW, font.MeasureString(enc.Face, dummyLongString).Ceil())
		maxW = maxInt(maxW, font.MeasureString(enc.Face, gameName).Ceil())
		dy := lineHeight()
		w := maxW + 2*enc.padW
		h := blockSize + 4*dy + 2*enc.padH // 4 lines of text: last move, game name, game number and winner

		w = minInt(w, enc.maxW)
		h = minInt(h, enc.maxH)

		if w == enc.maxW {
			enc.padW = 0
		}
		if h == enc.maxH {
			enc.padH = 0
		}

		enc.H = h
		enc.W = w
		enc.initialized = true
	}

	bg := image.White
	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), bg, image.Point{}, draw.Src)

	// the pile
	y := enc.padH
	for i := 0; i < minInt(g.Remaining(), game.MaxDrawn); i++ {
		x := enc.padW + i*(blockSize+blockGap)
		draw.Draw(im, image.Rect(x, y, x+blockSize, y+blockSize), image.Black, image.Point{}, draw.Src)
	}
	y += blockSize

	dy := lineHeight()
	y += dy
	enc.Dst = im
	enc.Dot = fixed.P(enc.padW, y)
	if last := g.LastMove(); last.Player != game.None {
		enc.DrawString(fmt.Sprintf("%v removes %d. %d left", last.Player, last.Take, g.Remaining()))
	} else {
		enc.DrawString(fmt.Sprintf("%d blocks", g.Remaining()))
	}
	y += dy

	enc.Dot = fixed.P(enc.padW, y)
	enc.DrawString(gameName)
	y += dy

	enc.Dot = fixed.P(enc.padW, y)
	enc.DrawString(fmt.Sprintf("Game Number: %d, Move %d", gameNum, g.MoveNumber()))
	y += dy

	var delay int
	if ok, winner := g.Ended(); ok {
		delay = 300
		enc.Dot = fixed.P(enc.padW, y)
		enc.DrawString(fmt.Sprintf("Winner: %v", winner))
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Frames returns the number of frames encoded so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if enc.Writer == nil {
		return errors.New("No writer to flush the gif into")
	}
	if len(enc.out.Image) == 0 {
		return errors.New("No frames to flush")
	}
	return errors.WithStack(gif.EncodeAll(enc.Writer, enc.out))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
