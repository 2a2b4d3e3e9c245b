package components

import "fmt"

// GlowPaint 光晕层的径向渐变参数
// 中心为白色 InnerAlpha，到 FadeStopPercent 半径处完全透明
type GlowPaint struct {
	CenterXPercent  float64
	CenterYPercent  float64
	InnerAlpha      float64
	FadeStopPercent float64
}

// CSS 返回等价的 radial-gradient 描述（用于日志和探针工具）
func (p GlowPaint) CSS() string {
	return fmt.Sprintf("radial-gradient(circle at %g%% %g%%, rgba(255,255,255,%g), transparent %g%%)",
		p.CenterXPercent, p.CenterYPercent, p.InnerAlpha, p.FadeStopPercent)
}

// GlowComponent 光晕层
type GlowComponent struct {
	Paint GlowPaint
}
