package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/cardshowcase/pkg/components"
)

// RenderGlowGradient 光栅化光晕层的径向渐变
//
// 与 CSS radial-gradient(circle at X% Y%, ...) 一致：
// 半径取中心到最远角的距离，FadeStopPercent 处透明度降为 0。
// 输出为预乘 alpha 的白色。
func RenderGlowGradient(w, h int, paint components.GlowPaint) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}

	cx := float64(w) * paint.CenterXPercent / 100
	cy := float64(h) * paint.CenterYPercent / 100

	farthest := 0.0
	for _, corner := range [][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}} {
		farthest = math.Max(farthest, math.Hypot(corner[0]-cx, corner[1]-cy))
	}
	stop := farthest * paint.FadeStopPercent / 100
	if stop <= 0 {
		return img
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			a := paint.InnerAlpha * (1 - d/stop)
			if a <= 0 {
				continue
			}
			v := uint8(math.Round(math.Min(a, 1) * 255))
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return img
}

// GlowCacheKey 光晕缓存键：中心按 1% 量化，避免每帧重新光栅化
type GlowCacheKey struct {
	W, H   int
	CX, CY int
	Alpha  int
	Stop   int
}

// NewGlowCacheKey 由尺寸和光晕参数构造缓存键
func NewGlowCacheKey(w, h int, paint components.GlowPaint) GlowCacheKey {
	return GlowCacheKey{
		W:     w,
		H:     h,
		CX:    int(math.Round(paint.CenterXPercent)),
		CY:    int(math.Round(paint.CenterYPercent)),
		Alpha: int(math.Round(paint.InnerAlpha * 1000)),
		Stop:  int(math.Round(paint.FadeStopPercent)),
	}
}

// QuantizedPaint 返回与缓存键一致的光晕参数
func (k GlowCacheKey) QuantizedPaint() components.GlowPaint {
	return components.GlowPaint{
		CenterXPercent:  float64(k.CX),
		CenterYPercent:  float64(k.CY),
		InnerAlpha:      float64(k.Alpha) / 1000,
		FadeStopPercent: float64(k.Stop),
	}
}
