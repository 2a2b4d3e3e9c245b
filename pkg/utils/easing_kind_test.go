package utils

import (
	"errors"
	"math"
	"testing"
)

func TestParseEasing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Easing
	}{
		{"二次方", "ease-out-quadratic", OutQuad()},
		{"三次方", "ease-out-cubic", OutCubic()},
		{"指数", " ease-out-expo ", OutExpo()},
		{"弹性带参数", "ease-out-elastic(1, .5)", OutElastic(1, 0.5)},
		{"弹性默认参数", "ease-out-elastic", OutElastic(1, 0.5)},
		{"弹性自定义", "ease-out-elastic(2,0.3)", OutElastic(2, 0.3)},
		{"线性", "ease-linear", Easing{Kind: EaseKindLinear}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEasing(tt.input)
			if err != nil {
				t.Fatalf("ParseEasing(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseEasing(%q) = %+v, 期望 %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseEasingErrors(t *testing.T) {
	inputs := []string{
		"",
		"ease-in-bounce",
		"ease-out-quadratic(1, 2)",
		"ease-out-elastic(1, .5",
		"ease-out-elastic(1)",
		"ease-out-elastic(x, .5)",
		"ease-out-elastic(0.5, .5)", // 振幅 < 1
		"ease-out-elastic(1, 0)",    // 周期 <= 0
		"ease-out-elastic(inf, .5)", // 振幅无穷
		"ease-out-elastic(1, inf)",  // 周期无穷
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseEasing(in)
			if err == nil {
				t.Fatalf("ParseEasing(%q) 应该返回错误", in)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("错误应该是 ErrConfiguration, got %v", err)
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("错误应该是 *ConfigurationError, got %T", err)
			}
		})
	}
}

func TestEasingStringRoundTrip(t *testing.T) {
	for _, e := range []Easing{OutQuad(), OutCubic(), OutExpo(), OutElastic(1, 0.5)} {
		parsed, err := ParseEasing(e.String())
		if err != nil {
			t.Fatalf("ParseEasing(%q) error: %v", e.String(), err)
		}
		if parsed != e {
			t.Errorf("round trip %q: got %+v", e.String(), parsed)
		}
	}
}

func TestEasingFuncRejectsInvalidElastic(t *testing.T) {
	if _, err := OutElastic(0.9, 0.5).Func(); err == nil {
		t.Error("amplitude < 1 应该被拒绝")
	}
	if _, err := OutElastic(1, -1).Func(); err == nil {
		t.Error("period <= 0 应该被拒绝")
	}
	if _, err := OutElastic(math.Inf(1), 0.5).Func(); err == nil {
		t.Error("amplitude = +Inf 应该被拒绝")
	}
	if _, err := OutElastic(math.NaN(), 0.5).Func(); err == nil {
		t.Error("amplitude = NaN 应该被拒绝")
	}
	if _, err := (Easing{Kind: "bogus"}).Func(); err == nil {
		t.Error("未知缓动类型应该被拒绝")
	}
}
