// Package pdfsurface implements a drawing surface that writes one PDF page
// per cleared frame, by wrapping github.com/jung-kurt/gofpdf.
package pdfsurface

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"simcanvas/internal/canvas"
	"simcanvas/pkg/render"
)

// assert interface conformance
var _ canvas.Surface = (*Surface)(nil)

const fontSize = 10 // pt

// Surface maps one surface pixel to one PDF point. Clear starts a new page,
// so a Module rendering N frames produces N pages.
type Surface struct {
	pdf    *gofpdf.Fpdf
	width  int
	height int
}

func New(width, height int) *Surface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", fontSize)
	return &Surface{pdf: pdf, width: width, height: height}
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

// Clear starts a fresh page.
func (s *Surface) Clear() {
	s.pdf.AddPage()
	s.pdf.SetFont("Helvetica", "", fontSize)
}

func (s *Surface) ensurePage() {
	if s.pdf.PageNo() == 0 {
		s.Clear()
	}
}

func (s *Surface) fill(c color.Color) {
	n := render.Straight(c)
	s.pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
	s.pdf.SetAlpha(float64(n.A)/0xff, "")
}

func (s *Surface) stroke(c color.Color, lineWidth float64) {
	n := render.Straight(c)
	s.pdf.SetDrawColor(int(n.R), int(n.G), int(n.B))
	s.pdf.SetAlpha(float64(n.A)/0xff, "")
	s.pdf.SetLineWidth(lineWidth)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.ensurePage()
	s.fill(c)
	s.pdf.Rect(x, y, w, h, "F")
}

func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	s.ensurePage()
	s.stroke(c, lineWidth)
	s.pdf.Rect(x, y, w, h, "D")
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	s.ensurePage()
	s.fill(c)
	s.pdf.Circle(cx, cy, r, "F")
}

func (s *Surface) StrokeCircle(cx, cy, r, lineWidth float64, c color.Color) {
	if r <= 0 {
		return
	}
	s.ensurePage()
	s.stroke(c, lineWidth)
	s.pdf.Circle(cx, cy, r, "D")
}

func (s *Surface) DrawText(cx, cy float64, str string, c color.Color) {
	s.ensurePage()
	n := render.Straight(c)
	s.pdf.SetTextColor(int(n.R), int(n.G), int(n.B))
	s.pdf.SetAlpha(float64(n.A)/0xff, "")
	w := s.pdf.GetStringWidth(str)
	// Text is placed on its baseline; shift by roughly half the cap height.
	s.pdf.Text(cx-w/2, cy+fontSize*0.35, str)
}

// Pages reports how many pages have been started.
func (s *Surface) Pages() int { return s.pdf.PageCount() }

// Err returns the first error recorded by the PDF writer, if any.
func (s *Surface) Err() error { return s.pdf.Error() }

// Output writes the document to w. The surface must not be drawn on
// afterwards.
func (s *Surface) Output(w io.Writer) error {
	s.ensurePage()
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("pdfsurface: write: %w", err)
	}
	return nil
}

// Save writes the document to path.
func (s *Surface) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdfsurface: create %s: %w", path, err)
	}
	if err := s.Output(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Host hands out PDF surfaces.
type Host struct{}

func (Host) NewSurface(width, height int) (canvas.Surface, error) {
	return New(width, height), nil
}
