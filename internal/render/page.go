package render

// PageGeometry is the printable page both export paths paginate to.
type PageGeometry struct {
	WidthMM  float64
	HeightMM float64
	MarginMM float64
}

// A4 with a 10 mm margin on every side.
var A4 = PageGeometry{WidthMM: 210, HeightMM: 297, MarginMM: 10}

const mmPerInch = 25.4

func (g PageGeometry) ContentWidthMM() float64  { return g.WidthMM - 2*g.MarginMM }
func (g PageGeometry) ContentHeightMM() float64 { return g.HeightMM - 2*g.MarginMM }

func (g PageGeometry) WidthIn() float64  { return g.WidthMM / mmPerInch }
func (g PageGeometry) HeightIn() float64 { return g.HeightMM / mmPerInch }
func (g PageGeometry) MarginIn() float64 { return g.MarginMM / mmPerInch }
