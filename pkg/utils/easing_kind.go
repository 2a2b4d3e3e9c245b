package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrConfiguration 配置/编程错误的哨兵错误
// 调用方可以用 errors.Is(err, utils.ErrConfiguration) 判断
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError 在调用时立即暴露的配置错误（缓动类型、时长、目标等）
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// Unwrap 使 errors.Is(err, ErrConfiguration) 成立
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// EasingKind 缓动曲线名称
type EasingKind string

const (
	EaseKindLinear     EasingKind = "ease-linear"
	EaseKindOutQuad    EasingKind = "ease-out-quadratic"
	EaseKindOutCubic   EasingKind = "ease-out-cubic"
	EaseKindOutExpo    EasingKind = "ease-out-expo"
	EaseKindOutElastic EasingKind = "ease-out-elastic"
)

// Easing 缓动曲线描述
// Amplitude / Period 仅对 ease-out-elastic 生效
type Easing struct {
	Kind      EasingKind
	Amplitude float64
	Period    float64
}

// OutQuad 二次方缓出
func OutQuad() Easing { return Easing{Kind: EaseKindOutQuad} }

// OutCubic 三次方缓出
func OutCubic() Easing { return Easing{Kind: EaseKindOutCubic} }

// OutExpo 指数缓出
func OutExpo() Easing { return Easing{Kind: EaseKindOutExpo} }

// OutElastic 弹性缓出
func OutElastic(amplitude, period float64) Easing {
	return Easing{Kind: EaseKindOutElastic, Amplitude: amplitude, Period: period}
}

// Func 返回缓动函数；参数非法时返回 *ConfigurationError
func (e Easing) Func() (func(float64) float64, error) {
	switch e.Kind {
	case EaseKindLinear:
		return EaseLinear, nil
	case EaseKindOutQuad:
		return EaseOutQuad, nil
	case EaseKindOutCubic:
		return EaseOutCubic, nil
	case EaseKindOutExpo:
		return EaseOutExpo, nil
	case EaseKindOutElastic:
		if math.IsNaN(e.Amplitude) || math.IsInf(e.Amplitude, 0) || e.Amplitude < 1 {
			return nil, &ConfigurationError{Field: "easing.amplitude", Reason: fmt.Sprintf("must be finite and >= 1, got %v", e.Amplitude)}
		}
		if math.IsNaN(e.Period) || e.Period <= 0 || math.IsInf(e.Period, 0) {
			return nil, &ConfigurationError{Field: "easing.period", Reason: fmt.Sprintf("must be > 0, got %v", e.Period)}
		}
		return EaseOutElastic(e.Amplitude, e.Period), nil
	}
	return nil, &ConfigurationError{Field: "easing", Reason: fmt.Sprintf("unknown kind %q", e.Kind)}
}

// String 返回可被 ParseEasing 解析的形式
func (e Easing) String() string {
	if e.Kind == EaseKindOutElastic {
		return fmt.Sprintf("%s(%g, %g)", e.Kind, e.Amplitude, e.Period)
	}
	return string(e.Kind)
}

// ParseEasing 解析配置中的缓动字符串
//
// 支持的格式：
//
//	ease-out-quadratic
//	ease-out-elastic          (默认振幅 1，周期 0.5)
//	ease-out-elastic(1, .5)
func ParseEasing(s string) (Easing, error) {
	s = strings.TrimSpace(s)
	name, args, hasArgs := strings.Cut(s, "(")

	e := Easing{Kind: EasingKind(strings.TrimSpace(name))}
	if e.Kind == EaseKindOutElastic {
		e.Amplitude, e.Period = 1, 0.5
	}

	if hasArgs {
		if e.Kind != EaseKindOutElastic {
			return Easing{}, &ConfigurationError{Field: "easing", Reason: fmt.Sprintf("%q takes no parameters", e.Kind)}
		}
		args, ok := strings.CutSuffix(strings.TrimSpace(args), ")")
		if !ok {
			return Easing{}, &ConfigurationError{Field: "easing", Reason: fmt.Sprintf("missing ')' in %q", s)}
		}
		parts := strings.Split(args, ",")
		if len(parts) != 2 {
			return Easing{}, &ConfigurationError{Field: "easing", Reason: fmt.Sprintf("elastic takes (amplitude, period), got %q", s)}
		}
		var err error
		if e.Amplitude, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
			return Easing{}, &ConfigurationError{Field: "easing.amplitude", Reason: err.Error()}
		}
		if e.Period, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
			return Easing{}, &ConfigurationError{Field: "easing.period", Reason: err.Error()}
		}
	}

	if _, err := e.Func(); err != nil {
		return Easing{}, err
	}
	return e, nil
}
