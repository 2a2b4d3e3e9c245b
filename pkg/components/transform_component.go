package components

// 可动画属性名
const (
	PropRotateX      = "rotateX"
	PropRotateY      = "rotateY"
	PropScale        = "scale"
	PropOpacity      = "opacity"
	PropTranslateY   = "translateY"
	PropWidthPercent = "widthPercent"
)

// TransformComponent 卡图的 3D 变换状态
//
// 指针本身作为动画目标的身份，AnimationDriver 直接读写其属性。
type TransformComponent struct {
	// RotateX 绕 X 轴旋转（度），正值表示上沿远离观察者
	RotateX float64
	// RotateY 绕 Y 轴旋转（度）
	RotateY float64
	// Scale 统一缩放因子（1.0 = 原始大小）
	Scale float64
}

// NewTransformComponent 创建处于中性姿态的变换组件
func NewTransformComponent() *TransformComponent {
	return &TransformComponent{Scale: 1}
}

// Property 读取属性当前值
func (t *TransformComponent) Property(name string) (float64, bool) {
	switch name {
	case PropRotateX:
		return t.RotateX, true
	case PropRotateY:
		return t.RotateY, true
	case PropScale:
		return t.Scale, true
	}
	return 0, false
}

// SetProperty 写入属性值
func (t *TransformComponent) SetProperty(name string, value float64) {
	switch name {
	case PropRotateX:
		t.RotateX = value
	case PropRotateY:
		t.RotateY = value
	case PropScale:
		t.Scale = value
	}
}

// IsNeutral 是否处于中性姿态
func (t *TransformComponent) IsNeutral() bool {
	return t.RotateX == 0 && t.RotateY == 0 && t.Scale == 1
}
