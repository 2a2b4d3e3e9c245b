package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testBoxComponent struct {
	X, Y, W, H float64
}

type testTiltComponent struct {
	RotateX, RotateY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0 保留给 InvalidEntity
	if id1 != 1 || id1 == InvalidEntity {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if !em.Exists(id1) {
		t.Error("Created entity should exist")
	}
	if em.Exists(InvalidEntity) {
		t.Error("InvalidEntity should never exist")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testBoxComponent{X: 10, Y: 20, W: 200, H: 100})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testBoxComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	box := comp.(*testBoxComponent)
	if box.W != 200 || box.H != 100 {
		t.Errorf("Component data mismatch, got %+v", box)
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(42), &testBoxComponent{})

	if em.HasComponent(EntityID(42), reflect.TypeOf(&testBoxComponent{})) {
		t.Error("Unknown entity should not receive components")
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTiltComponent{RotateX: -8, RotateY: 8})

	tilt, ok := GetComponent[*testTiltComponent](em, id)
	if !ok {
		t.Fatal("generic GetComponent should find component")
	}
	if tilt.RotateX != -8 || tilt.RotateY != 8 {
		t.Errorf("unexpected tilt %+v", tilt)
	}

	if _, ok := GetComponent[*testBoxComponent](em, id); ok {
		t.Error("generic GetComponent should miss absent component")
	}
	if !HasComponent[*testTiltComponent](em, id) {
		t.Error("generic HasComponent should report true")
	}

	RemoveComponent[*testTiltComponent](em, id)
	if HasComponent[*testTiltComponent](em, id) {
		t.Error("component should be removed")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBoxComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, reflect.TypeOf(&testBoxComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWithSorted(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testBoxComponent{})
	em.AddComponent(id1, &testTiltComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testBoxComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testBoxComponent{})
	em.AddComponent(id3, &testTiltComponent{})

	both := GetEntitiesWith2[*testBoxComponent, *testTiltComponent](em)
	if len(both) != 2 || both[0] != id1 || both[1] != id3 {
		t.Errorf("Expected [%d %d], got %v", id1, id3, both)
	}

	boxes := GetEntitiesWith1[*testBoxComponent](em)
	if len(boxes) != 3 {
		t.Errorf("Expected 3 entities with box component, got %d", len(boxes))
	}
	for i := 1; i < len(boxes); i++ {
		if boxes[i-1] >= boxes[i] {
			t.Errorf("query result should be ascending: %v", boxes)
		}
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBoxComponent{})
	em.DestroyEntity(id)

	em.Clear()

	if em.Exists(id) {
		t.Error("Clear should remove every entity")
	}
	if got := GetEntitiesWith1[*testBoxComponent](em); len(got) != 0 {
		t.Errorf("Expected no entities after Clear, got %v", got)
	}

	// 清空后新实体ID继续递增，不复用旧ID
	if next := em.CreateEntity(); next <= id {
		t.Errorf("IDs should not be reused after Clear, got %d", next)
	}
}
