// internal/system/simulation.go
package system

import (
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/utils"
)

// Simulation владеет всеми системами уровня и вызывает их в фиксированном
// порядке. Сначала статусы, затем затухание страха, проверка бегства и
// регенерация плазмы; после этого поведение, движение, эффекты и миссия.
type Simulation struct {
	World  *entity.World
	Events *event.Dispatcher

	Navigation *NavigationSystem
	Status     *StatusEffectSystem
	Fear       *FearSystem
	Behavior   *BehaviorSystem
	Effects    *EffectDispatcher
	Ghosts     *GhostSystem
	Binding    *BindingSystem
	Anchors    *AnchorSystem
	Haunts     *HauntSystem
	Pickups    *PickupSystem
	Missions   *MissionSystem
	Visuals    *VisualEffectSystem
}

// NewSimulation wires every system around world. The world itself serves as
// the spatial query and its Pool as the resource pool.
func NewSimulation(world *entity.World, events *event.Dispatcher, rng *utils.PRNGService) *Simulation {
	s := &Simulation{World: world, Events: events}
	s.Navigation = NewNavigationSystem(world)
	s.Status = NewStatusEffectSystem(world)
	s.Fear = NewFearSystem(world, events, s.Navigation)
	s.Behavior = NewBehaviorSystem(world, events, s.Navigation, world.Pool, rng)
	s.Effects = NewEffectDispatcher(world, world, s.Fear, s.Status)
	s.Ghosts = NewGhostSystem(world, events, s.Effects)
	s.Binding = NewBindingSystem(world, events)
	s.Anchors = NewAnchorSystem(world, events, s.Effects)
	s.Haunts = NewHauntSystem(world, events, s.Ghosts, s.Effects)
	s.Pickups = NewPickupSystem(world, events, s.Ghosts)
	s.Missions = NewMissionSystem(world, events)
	s.Visuals = NewVisualEffectSystem(world)
	return s
}

// Tick advances the simulation by deltaTime seconds.
func (s *Simulation) Tick(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	s.World.GameTime += deltaTime

	s.Status.Update(deltaTime)
	s.Fear.Decay(deltaTime)
	s.Fear.CheckFlee()
	s.Ghosts.Regenerate(deltaTime)

	s.Behavior.Update(deltaTime)
	s.Navigation.Update(deltaTime)
	s.Haunts.Update(deltaTime)
	s.Pickups.Update()
	s.Visuals.Update(deltaTime)

	s.Missions.Update(deltaTime)
	s.Missions.CheckWinCondition()
}
