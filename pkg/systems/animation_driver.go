package systems

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/decker502/cardshowcase/pkg/utils"
)

// AnimationTarget 可被 AnimationDriver 驱动的对象
//
// 目标的身份就是接口值本身，因此其动态类型必须可比较（通常是指针）。
// SetProperty 是每帧把插值结果写入视觉表现的副作用回调。
type AnimationTarget interface {
	Property(name string) (float64, bool)
	SetProperty(name string, value float64)
}

// handleKey 注册表键：(目标身份, 排序后的属性名集合)
type handleKey struct {
	target AnimationTarget
	props  string
}

// AnimationHandle 一个 (目标, 属性集合) 的插值状态
type AnimationHandle struct {
	key handleKey

	names   []string
	start   map[string]float64
	end     map[string]float64
	current map[string]float64

	elapsed  float64
	duration float64
	easing   func(float64) float64
	active   bool

	// OnFrame 每个中间帧写入属性后调用（可选）
	OnFrame func(values map[string]float64)
	// OnComplete 插值到达终点后调用一次（可选，被取代时不调用）
	OnComplete func()
}

// Active 句柄是否仍在运行
func (h *AnimationHandle) Active() bool {
	return h.active
}

// Value 返回属性当前插值
func (h *AnimationHandle) Value(name string) float64 {
	return h.current[name]
}

// Progress 返回线性时间进度（0 - 1）
func (h *AnimationHandle) Progress() float64 {
	if h.duration <= 0 {
		return 1
	}
	return math.Min(h.elapsed/h.duration, 1)
}

// AnimationDriver 通用插值引擎
//
// 单线程、按帧推进：宿主每帧调用一次 Update。
// 同一 (目标, 属性集合) 任意时刻最多一个活动句柄，新的 Animate 会同步取消旧句柄，
// 被取消的句柄不会再写入任何一帧。
type AnimationDriver struct {
	registry map[handleKey]*AnimationHandle
	// order 保持句柄创建顺序，使每帧的写入顺序确定
	order []*AnimationHandle
}

// NewAnimationDriver 创建动画驱动器
func NewAnimationDriver() *AnimationDriver {
	return &AnimationDriver{
		registry: make(map[handleKey]*AnimationHandle),
	}
}

// Animate 将 target 的一组属性从当前值插值到 props 指定的目标值
//
// 参数：
//   - target: 动画目标（动态类型必须可比较）
//   - props: 属性名 -> 目标值
//   - durationMs: 时长（毫秒）；<= 0 时立即一步到位，不触发 OnFrame
//   - easing: 缓动曲线
//
// 返回：
//   - *AnimationHandle: 新句柄（时长 <= 0 时已结束）
//   - error: 缓动、时长、目标或属性非法时返回 *utils.ConfigurationError，不会延迟到动画循环中
func (d *AnimationDriver) Animate(target AnimationTarget, props map[string]float64, durationMs float64, easing utils.Easing) (*AnimationHandle, error) {
	ease, err := easing.Func()
	if err != nil {
		return nil, err
	}
	if math.IsNaN(durationMs) || math.IsInf(durationMs, 0) {
		return nil, &utils.ConfigurationError{Field: "duration", Reason: fmt.Sprintf("must be finite, got %v", durationMs)}
	}
	if target == nil {
		return nil, &utils.ConfigurationError{Field: "target", Reason: "nil target"}
	}
	if !reflect.TypeOf(target).Comparable() {
		return nil, &utils.ConfigurationError{Field: "target", Reason: fmt.Sprintf("%T is not comparable", target)}
	}
	if len(props) == 0 {
		return nil, &utils.ConfigurationError{Field: "props", Reason: "no properties to animate"}
	}

	names := make([]string, 0, len(props))
	for name, v := range props {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &utils.ConfigurationError{Field: name, Reason: fmt.Sprintf("target value must be finite, got %v", v)}
		}
		if _, ok := target.Property(name); !ok {
			return nil, &utils.ConfigurationError{Field: name, Reason: fmt.Sprintf("%T has no such property", target)}
		}
		names = append(names, name)
	}
	sort.Strings(names)
	key := handleKey{target: target, props: strings.Join(names, ",")}

	// 起点优先取被取代句柄的当前插值，避免快速重触发时跳变
	prev := d.registry[key]
	if prev != nil {
		d.cancel(prev)
	}

	h := &AnimationHandle{
		key:      key,
		names:    names,
		start:    make(map[string]float64, len(names)),
		end:      make(map[string]float64, len(names)),
		current:  make(map[string]float64, len(names)),
		duration: durationMs,
		easing:   ease,
		active:   true,
	}
	for _, name := range names {
		from, _ := target.Property(name)
		if prev != nil {
			from = prev.current[name]
		}
		h.start[name] = from
		h.current[name] = from
		h.end[name] = props[name]
	}

	if durationMs <= 0 {
		h.finish()
		return h, nil
	}

	d.registry[key] = h
	d.order = append(d.order, h)
	return h, nil
}

// Update 推进一帧
// deltaMs 为距离上一帧的毫秒数
func (d *AnimationDriver) Update(deltaMs float64) {
	if deltaMs < 0 {
		deltaMs = 0
	}

	// 只推进本帧开始前已存在的句柄；回调中新建的句柄从下一帧开始
	pending := d.order
	d.order = make([]*AnimationHandle, 0, len(pending))

	for _, h := range pending {
		if !h.active {
			continue
		}

		h.elapsed += deltaMs
		if h.elapsed >= h.duration {
			d.release(h)
			h.finish()
			continue
		}

		eased := h.easing(h.elapsed / h.duration)
		for _, name := range h.names {
			v := utils.Lerp(h.start[name], h.end[name], eased)
			h.current[name] = v
			h.key.target.SetProperty(name, v)
		}
		d.order = append(d.order, h)

		if h.OnFrame != nil {
			h.OnFrame(h.current)
		}
	}

	d.compact()
}

// ActiveHandle 返回 (target, names) 对应的活动句柄
func (d *AnimationDriver) ActiveHandle(target AnimationTarget, names ...string) (*AnimationHandle, bool) {
	if target == nil || !reflect.TypeOf(target).Comparable() {
		return nil, false
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	h, ok := d.registry[handleKey{target: target, props: strings.Join(sorted, ",")}]
	return h, ok
}

// ActiveCount 活动句柄数量
func (d *AnimationDriver) ActiveCount() int {
	return len(d.registry)
}

// Cancel 同步取消句柄；已结束或已取消的句柄忽略
func (d *AnimationDriver) Cancel(h *AnimationHandle) {
	if h == nil || !h.active {
		return
	}
	d.cancel(h)
}

// Clear 取消所有句柄并清空注册表（页面销毁时调用，避免残留回调）
func (d *AnimationDriver) Clear() {
	for _, h := range d.registry {
		h.active = false
	}
	d.registry = make(map[handleKey]*AnimationHandle)
	d.order = nil
}

func (d *AnimationDriver) cancel(h *AnimationHandle) {
	h.active = false
	d.release(h)
}

// release 从注册表移除句柄（仅当注册表中仍是它本身）
func (d *AnimationDriver) release(h *AnimationHandle) {
	if cur, ok := d.registry[h.key]; ok && cur == h {
		delete(d.registry, h.key)
	}
}

// compact 丢弃回调中被取消的句柄
func (d *AnimationDriver) compact() {
	live := d.order[:0]
	for _, h := range d.order {
		if h.active {
			live = append(live, h)
		}
	}
	d.order = live
}

// finish 精确写入终点值并标记结束
func (h *AnimationHandle) finish() {
	for _, name := range h.names {
		h.current[name] = h.end[name]
		h.key.target.SetProperty(name, h.end[name])
	}
	h.elapsed = h.duration
	h.active = false
	if h.OnComplete != nil {
		h.OnComplete()
	}
}
