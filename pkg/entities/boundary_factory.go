package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

// NewBoundaryEntities 创建场地四周不可见的边界触发区域
// 边界位于可见区域之外，内侧边缘与屏幕边缘重合
//
// 返回顺序：左、右、上、下
func NewBoundaryEntities(em *ecs.EntityManager, screenWidth, screenHeight float64) []ecs.EntityID {
	t := config.BoundaryThickness
	return []ecs.EntityID{
		NewBoundaryEntity(em, components.EdgeLeft, -t/2, screenHeight/2, t, screenHeight+2*t),
		NewBoundaryEntity(em, components.EdgeRight, screenWidth+t/2, screenHeight/2, t, screenHeight+2*t),
		NewBoundaryEntity(em, components.EdgeTop, screenWidth/2, -t/2, screenWidth+2*t, t),
		NewBoundaryEntity(em, components.EdgeBottom, screenWidth/2, screenHeight+t/2, screenWidth+2*t, t),
	}
}

// NewBoundaryEntity 创建单个边界
func NewBoundaryEntity(em *ecs.EntityManager, edge components.BoundaryEdge, x, y, w, h float64) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.BoundaryComponent{Edge: edge})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Kind:   components.ColliderBoundary,
		Width:  w,
		Height: h,
	})

	return entityID
}
