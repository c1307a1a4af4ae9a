package layout

import "github.com/rs/zerolog"

// boundsEpsilon absorbs float error when fractional column widths add up to
// exactly the window bound. It is relative to the bound, since summing
// columns loses precision in proportion to the window size.
const boundsEpsilon = 1e-9

// measureFunc returns the item type and unclamped extent for index.
type measureFunc func(index int) (string, Dimension)

// packer is the incremental wrap algorithm shared by Flow and Grid. The main
// axis is the unbounded scroll direction, the cross axis is bounded by the
// window.
type packer struct {
	Base

	window     Dimension
	horizontal bool
	total      Dimension
	log        zerolog.Logger
}

// ContentDimension implements Manager.
func (p *packer) ContentDimension() Dimension {
	return p.total
}

// Horizontal reports whether the main axis is x.
func (p *packer) Horizontal() bool {
	return p.horizontal
}

// split converts an (x, y) pair into (main, cross).
func (p *packer) split(x, y float64) (main, cross float64) {
	if p.horizontal {
		return x, y
	}
	return y, x
}

// join converts a (main, cross) pair back into (x, y).
func (p *packer) join(main, cross float64) (x, y float64) {
	if p.horizontal {
		return main, cross
	}
	return cross, main
}

func (p *packer) windowCross() float64 {
	_, cross := p.split(p.window.Width, p.window.Height)
	return cross
}

func (p *packer) setMainTotal(v float64) {
	if p.horizontal {
		p.total.Width = v
	} else {
		p.total.Height = v
	}
}

func (p *packer) addMainTotal(v float64) {
	if p.horizontal {
		p.total.Width += v
	} else {
		p.total.Height += v
	}
}

// restartIndex walks back from startIndex-1 to the first item of its row or
// column. The running row extent is not persisted, so packing can only resume
// at a row boundary.
func (p *packer) restartIndex(startIndex int) int {
	records := p.store.Records()
	startIndex = min(startIndex, len(records))

	for i := startIndex - 1; i >= 0; i-- {
		_, cross := p.split(records[i].X, records[i].Y)
		if cross == 0 {
			return i
		}
	}
	return 0
}

func (p *packer) relayout(startIndex, itemCount int, measure measureFunc) {
	itemCount = max(itemCount, 0)
	start := p.restartIndex(startIndex)

	var mainPos, crossPos, rowExtent float64
	if rec, ok := p.store.At(start); ok {
		mainPos, crossPos = p.split(rec.X, rec.Y)
	}
	p.setMainTotal(mainPos)

	windowCross := p.windowCross()
	slack := max(windowCross, 1) * boundsEpsilon
	for i := start; i < itemCount; i++ {
		itemType, dim := measure(i)
		dim = dim.nonNegative()

		mainExt, crossExt := p.split(dim.Width, dim.Height)
		crossExt = min(crossExt, windowCross)

		for crossPos > 0 && crossPos+crossExt > windowCross+slack {
			mainPos += rowExtent
			crossPos = 0
			p.addMainTotal(rowExtent)
			rowExtent = 0
		}

		rowExtent = max(rowExtent, mainExt)

		x, y := p.join(mainPos, crossPos)
		w, h := p.join(mainExt, crossExt)
		p.store.put(i, x, y, w, h, itemType)

		crossPos += crossExt
	}

	p.store.truncate(itemCount)

	if p.horizontal {
		p.total.Height = p.window.Height
	} else {
		p.total.Width = p.window.Width
	}
	p.addMainTotal(rowExtent)

	p.log.Debug().
		Int("start", startIndex).
		Int("restart", start).
		Int("count", itemCount).
		Float64("content_width", p.total.Width).
		Float64("content_height", p.total.Height).
		Msg("relayout")
}
