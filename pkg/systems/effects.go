package systems

import (
	"github.com/decker502/cardshowcase/pkg/components"
	"github.com/decker502/cardshowcase/pkg/ecs"
	"github.com/decker502/cardshowcase/pkg/utils"
)

// 一次性效果的时长（毫秒）
const (
	GridEntranceDurationMs    = 1200
	UnderlineRevealDurationMs = 1300
)

// PlayGridEntrance 网格入场：透明度 0→1，垂直位移 80→0
func PlayGridEntrance(driver *AnimationDriver, em *ecs.EntityManager, id ecs.EntityID) (*AnimationHandle, error) {
	entrance, ok := ecs.GetComponent[*components.EntranceComponent](em, id)
	if !ok {
		return nil, nil
	}
	entrance.Opacity = 0
	entrance.TranslateY = 80
	return driver.Animate(entrance, map[string]float64{
		components.PropOpacity:    1,
		components.PropTranslateY: 0,
	}, GridEntranceDurationMs, utils.OutCubic())
}

// PlayUnderlineReveals 所有下划线宽度 0%→100%
func PlayUnderlineReveals(driver *AnimationDriver, em *ecs.EntityManager) error {
	for _, id := range ecs.GetEntitiesWith1[*components.UnderlineComponent](em) {
		underline, _ := ecs.GetComponent[*components.UnderlineComponent](em, id)
		underline.WidthPercent = 0
		if _, err := driver.Animate(underline, map[string]float64{
			components.PropWidthPercent: 100,
		}, UnderlineRevealDurationMs, utils.OutExpo()); err != nil {
			return err
		}
	}
	return nil
}
