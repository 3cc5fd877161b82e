package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

// NewButtonEntity 创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角（屏幕坐标）
//   - text: 按钮文字
//   - group: 所属面板，面板整体显示/隐藏
//   - visible: 初始是否可见
//   - onClick: 点击回调函数
func NewButtonEntity(em *ecs.EntityManager, x, y float64, text, group string, visible bool, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:    text,
		Width:   config.ButtonWidth,
		Height:  config.ButtonHeight,
		Group:   group,
		Visible: visible,
		Enabled: true,
		State:   components.UINormal,
		OnClick: onClick,
	})

	return entity
}

// NewButtonColumn 创建一列水平居中的按钮
// 按钮自 topY 开始自上而下排列，返回的ID顺序与 labels 一致
func NewButtonColumn(em *ecs.EntityManager, centerX, topY float64, group string, visible bool, labels []string, handlers []func()) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(labels))
	x := centerX - config.ButtonWidth/2
	for i, label := range labels {
		var onClick func()
		if i < len(handlers) {
			onClick = handlers[i]
		}
		y := topY + float64(i)*(config.ButtonHeight+config.ButtonSpacing)
		ids = append(ids, NewButtonEntity(em, x, y, label, group, visible, onClick))
	}
	return ids
}
