package processor

import (
	"math"

	"github.com/phamqv/image-bundler/internal/models"
)

// targetSize computes the output dimensions for an image of the given
// size under a normalized request. No sizing mode set means the
// dimensions stay as they are.
func targetSize(origWidth, origHeight int, req *models.TransformRequest) (int, int) {
	if req.Percentage > 0 {
		return scaleSize(origWidth, origHeight, req.Percentage/100)
	}
	if req.Width > 0 || req.Height > 0 {
		return fitSize(origWidth, origHeight, req.Width, req.Height)
	}
	return origWidth, origHeight
}

// fitSize fits (ow, oh) inside the (tw, th) box preserving the aspect
// ratio: both dimensions scale by the factor of whichever target
// constrains more. A zero target dimension means unconstrained.
func fitSize(ow, oh, tw, th int) (int, int) {
	var scale float64
	switch {
	case tw > 0 && th > 0:
		scale = math.Min(float64(tw)/float64(ow), float64(th)/float64(oh))
	case tw > 0:
		scale = float64(tw) / float64(ow)
	case th > 0:
		scale = float64(th) / float64(oh)
	default:
		return ow, oh
	}
	return scaleSize(ow, oh, scale)
}

func scaleSize(ow, oh int, scale float64) (int, int) {
	w := int(math.Round(float64(ow) * scale))
	h := int(math.Round(float64(oh) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
