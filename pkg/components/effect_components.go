package components

// EntranceComponent 卡牌网格入场动画状态（透明度 + 垂直位移）
type EntranceComponent struct {
	Opacity    float64
	TranslateY float64
}

// Property 读取属性当前值
func (e *EntranceComponent) Property(name string) (float64, bool) {
	switch name {
	case PropOpacity:
		return e.Opacity, true
	case PropTranslateY:
		return e.TranslateY, true
	}
	return 0, false
}

// SetProperty 写入属性值
func (e *EntranceComponent) SetProperty(name string, value float64) {
	switch name {
	case PropOpacity:
		e.Opacity = value
	case PropTranslateY:
		e.TranslateY = value
	}
}

// GridMemberComponent 标记属于卡牌网格的表面（受入场动画影响）
type GridMemberComponent struct{}

// UnderlineComponent 文字下划线展开动画
type UnderlineComponent struct {
	// Label 下划线所在的文字
	Label string
	// WidthPercent 下划线宽度占文字宽度的百分比（0 - 100）
	WidthPercent float64
}

// Property 读取属性当前值
func (u *UnderlineComponent) Property(name string) (float64, bool) {
	if name == PropWidthPercent {
		return u.WidthPercent, true
	}
	return 0, false
}

// SetProperty 写入属性值
func (u *UnderlineComponent) SetProperty(name string, value float64) {
	if name == PropWidthPercent {
		u.WidthPercent = value
	}
}
