// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/system"
	"go-haunted-house/internal/types"
	"go-haunted-house/internal/utils"
)

const (
	pickRadius = 1.2 // радиус клика по сущности, в единицах мира
	maxLog     = 6
)

// Game holds the level world, its simulation and the player's commands.
type Game struct {
	World    *entity.World
	Events   *event.Dispatcher
	Sim      *system.Simulation
	Rng      *utils.PRNGService
	Level    defs.LevelDefinition
	Settings config.Settings

	SpeedIndex      int
	SpeedMultiplier float64
	// Log — последние заметные события для HUD.
	Log []string

	isPaused bool
}

// NewGame spawns level into a fresh world and starts its mission.
func NewGame(settings config.Settings, level defs.LevelDefinition) *Game {
	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	*world.Pool = component.PlasmPool{Stored: settings.StartingPlasm, Max: settings.MaxPlasm}
	spawnLevel(world, level)

	g := &Game{
		World:    world,
		Events:   dispatcher,
		Sim:      system.NewSimulation(world, dispatcher, rng),
		Rng:      rng,
		Level:    level,
		Settings: settings,
	}
	g.applySpeed()

	listener := &GameEventListener{game: g}
	for _, t := range []event.Type{
		event.MortalFledType,
		event.MortalDepartedType,
		event.ObjectiveCompletedType,
		event.LevelCompleteType,
		event.MissionCompleteType,
		event.MissionFailedType,
	} {
		dispatcher.Subscribe(t, listener)
	}

	g.Sim.Missions.Start(level.Name, level.Description, level.Objectives, settings.MissionTimeLimit)
	return g
}

// Update progresses the game by one frame of deltaTime real seconds.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || g.IsOver() {
		return
	}
	g.Sim.Tick(deltaTime * g.SpeedMultiplier)
}

// IsOver reports whether the mission has been won or lost.
func (g *Game) IsOver() bool {
	return g.World.Mission.Status != component.MissionActive
}

func (g *Game) GetGameTime() float64 {
	return g.World.GameTime
}

// --- Команды игрока ---

// SelectGhost makes id the selected ghost; NoEntity clears the selection.
func (g *Game) SelectGhost(id types.EntityID) {
	g.Sim.Ghosts.Select(id)
}

// Selected returns the selected ghost, if any.
func (g *Game) Selected() (types.EntityID, *component.Ghost, bool) {
	id := g.World.Selected
	ghost, ok := g.World.Ghosts[id]
	return id, ghost, ok
}

// BindSelected binds the selected ghost to anchorID. A ghost already bound
// elsewhere moves only when the new anchor will accept it.
func (g *Game) BindSelected(anchorID types.EntityID) bool {
	id, ghost, ok := g.Selected()
	if !ok || ghost.BoundAnchor == anchorID {
		return false
	}
	if ghost.IsBound() {
		if !g.Sim.Binding.CanBind(anchorID, id) || ghost.Plasm < ghost.BindCost {
			return false
		}
		g.Sim.Binding.Unbind(id)
	}
	return g.Sim.Binding.TryBind(id, anchorID)
}

// UnbindSelected releases the selected ghost's anchor.
func (g *Game) UnbindSelected() {
	if id, _, ok := g.Selected(); ok {
		g.Sim.Binding.Unbind(id)
	}
}

func (g *Game) ActivatePrimary() bool {
	id, _, ok := g.Selected()
	return ok && g.Sim.Ghosts.ActivatePrimary(id)
}

func (g *Game) ActivateSecondary() bool {
	id, _, ok := g.Selected()
	return ok && g.Sim.Ghosts.ActivateSecondary(id)
}

// TriggerAnchor fires the pulse of the anchor the selected ghost occupies.
func (g *Game) TriggerAnchor() bool {
	_, ghost, ok := g.Selected()
	if !ok || !ghost.IsBound() {
		return false
	}
	return g.Sim.Anchors.TriggerAnchorAbility(ghost.BoundAnchor)
}

// HauntNearest haunts the closest interactable within reach of the selected
// ghost.
func (g *Game) HauntNearest() bool {
	id, _, ok := g.Selected()
	if !ok {
		return false
	}
	from := g.World.PositionOf(id)
	best, bestDist := types.NoEntity, math.Inf(1)
	for objID := range g.World.Interactables {
		d := g.World.PositionOf(objID).Distance(from)
		if d > config.HauntReach {
			continue
		}
		if d < bestDist || (d == bestDist && objID < best) {
			best, bestDist = objID, d
		}
	}
	if best == types.NoEntity {
		return false
	}
	return g.Sim.Haunts.Haunt(id, best)
}

// TransferPlasm moves amount from the shared pool into the selected ghost,
// capped by the ghost's free capacity. Nothing changes on failure.
func (g *Game) TransferPlasm(amount int) bool {
	id, ghost, ok := g.Selected()
	if !ok || amount <= 0 {
		return false
	}
	room := int(math.Floor(ghost.MaxPlasm - ghost.Plasm))
	amount = min(amount, room)
	if amount <= 0 || !g.World.Pool.Spend(amount) {
		return false
	}
	g.Sim.Ghosts.GainPlasm(id, float64(amount))
	log.Debug().Str("ghost", ghost.Name).Int("amount", amount).Int("pool", g.World.Pool.Current()).Msg("plasm transferred")
	return true
}

// Click handles a click on the floor at p: ghosts are selected, anchors are
// bound (or select their occupant), interactables are haunted.
func (g *Game) Click(p types.Vec3) {
	id := g.EntityAt(p)
	switch {
	case id == types.NoEntity:
		g.SelectGhost(types.NoEntity)
	case g.World.Ghosts[id] != nil:
		g.SelectGhost(id)
	case g.World.Anchors[id] != nil:
		if a := g.World.Anchors[id]; a.Occupied {
			g.SelectGhost(a.BoundGhost)
			return
		}
		g.BindSelected(id)
	case g.World.Interactables[id] != nil:
		if sel, _, ok := g.Selected(); ok {
			g.Sim.Haunts.Haunt(sel, id)
		}
	}
}

// EntityAt returns the closest clickable entity within pickRadius of p on the
// floor plane. Ghosts win over the anchors they sit on.
func (g *Game) EntityAt(p types.Vec3) types.EntityID {
	best, bestDist := types.NoEntity, math.Inf(1)
	consider := func(ids []types.EntityID) {
		for _, id := range ids {
			q := g.World.PositionOf(id)
			d := math.Hypot(q.X-p.X, q.Z-p.Z)
			if d <= pickRadius && d < bestDist {
				best, bestDist = id, d
			}
		}
	}
	consider(g.World.SortedGhostIDs())
	if best != types.NoEntity {
		return best
	}
	consider(g.World.SortedAnchorIDs())
	consider(entity.SortedKeys(g.World.Interactables))
	return best
}

// SetHighlighted marks interactables within reach of the selected ghost.
func (g *Game) SetHighlighted() {
	id, ghost, ok := g.Selected()
	for objID, obj := range g.World.Interactables {
		obj.Highlighted = ok && ghost.IsBound() &&
			g.World.PositionOf(objID).Distance(g.World.PositionOf(id)) <= config.HauntReach
	}
}

// --- Скорость и пауза ---

// HandleSpeedClick cycles the time scale x1 -> x2 -> x4.
func (g *Game) HandleSpeedClick() {
	g.SpeedIndex = (g.SpeedIndex + 1) % len(config.TimeScales)
	g.applySpeed()
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) applySpeed() {
	g.SpeedMultiplier = g.Settings.TimeScale * config.TimeScales[g.SpeedIndex]
}

func (g *Game) note(format string, args ...any) {
	g.Log = append(g.Log, fmt.Sprintf(format, args...))
	if len(g.Log) > maxLog {
		g.Log = g.Log[len(g.Log)-maxLog:]
	}
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch data := e.Data.(type) {
	case event.MortalFled:
		g.note("%s is fleeing", data.Name)
	case event.MortalDeparted:
		g.note("%s left the house (+%d)", data.Name, data.Reward)
	case event.ObjectiveCompleted:
		g.note("Objective: %s", data.Name)
	case event.LevelComplete:
		g.note("The house is empty")
	case event.MissionComplete:
		g.note("Mission complete! Score %d", data.Score)
		log.Info().Int("score", data.Score).Msg("mission complete")
	case event.MissionFailed:
		g.note("Mission failed: %s", data.Reason)
		log.Info().Str("reason", data.Reason).Msg("mission failed")
	}
}
