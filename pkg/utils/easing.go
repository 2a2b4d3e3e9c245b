package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使卡牌倾斜看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值，满足 f(0)=0、f(1)=1。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（卡牌跟随指针倾斜）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（网格入场动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutExpo 指数缓出
// 特点：开始非常快，结束非常慢（下划线展开）
// 公式：f(t) = 1 - 2^(-10t)，t=1 时精确返回 1
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// EaseOutElastic 返回弹性缓出函数（阻尼正弦过冲）
//
// 参数：
//   - amplitude: 振幅，>= 1
//   - period: 周期，> 0
//
// 公式（out = 1 - in(1-t)）：
//
//	in(t) = -a · 2^(10(t-1)) · sin(((t-1) - s) · 2π/p)
//	s     = p/(2π) · asin(1/a)
//
// 参数合法性由调用方（AnimationDriver）在调用时校验。
func EaseOutElastic(amplitude, period float64) func(float64) float64 {
	s := period / (2 * math.Pi) * math.Asin(1/amplitude)
	easeIn := func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return -amplitude * math.Pow(2, 10*(t-1)) * math.Sin(((t-1)-s)*(2*math.Pi)/period)
	}
	return func(t float64) float64 {
		return 1 - easeIn(1-t)
	}
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
