package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TiltGeoM 将卡图的 3D 倾斜投影为 2D 仿射变换（绕卡图中心）
//
// Ebiten 只有仿射变换，这里用以下近似：
//   - 绕 Y 轴旋转 → 水平方向按 cos 收缩
//   - 绕 X 轴旋转 → 垂直方向按 cos 收缩
//   - 两轴同时旋转 → 按 sin(rx)·sin(ry) 产生水平错切
//   - 透视：倾斜越大整体越远，按 p / (p + depth) 缩小
//
// 参数：
//   - rotateXDeg, rotateYDeg: 旋转角度（度）
//   - scale: 统一缩放
//   - w, h: 卡图尺寸
//   - perspective: 透视距离（像素）
func TiltGeoM(rotateXDeg, rotateYDeg, scale, w, h, perspective float64) ebiten.GeoM {
	rx := rotateXDeg * math.Pi / 180
	ry := rotateYDeg * math.Pi / 180

	depth := (w*math.Abs(math.Sin(ry)) + h*math.Abs(math.Sin(rx))) / 4
	persp := 1.0
	if perspective > 0 {
		persp = perspective / (perspective + depth)
	}

	var g ebiten.GeoM
	g.Translate(-w/2, -h/2)
	g.Skew(math.Atan(math.Sin(rx)*math.Sin(ry)), 0)
	g.Scale(scale*math.Cos(ry)*persp, scale*math.Cos(rx)*persp)
	g.Translate(w/2, h/2)
	return g
}
