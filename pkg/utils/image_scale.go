package utils

import (
	"image"

	"golang.org/x/image/draw"
)

// FitSize 在保持宽高比的前提下，计算 src 缩放到 maxW x maxH 内的尺寸
func FitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	ratio := min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w := max(int(float64(srcW)*ratio+0.5), 1)
	h := max(int(float64(srcH)*ratio+0.5), 1)
	return w, h
}

// ScaleToFit 将卡图缩放到网格单元内（Catmull-Rom 重采样）
// 尺寸非法时返回 nil
func ScaleToFit(src image.Image, maxW, maxH int) *image.RGBA {
	b := src.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if w == 0 || h == 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
