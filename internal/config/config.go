// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1200
	ScreenHeight  = 900
	WorldScale    = 18.0 // пикселей на единицу мира
	WorldOffsetX  = 60.0
	WorldOffsetY  = 90.0
	MaxDeltaTime  = 0.06
	ClickCooldown = 300

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0

	StrokeWidth = 2.0
)

// Mortal behavior tuning shared by every category.
const (
	FearReactionDuration = 1.0  // пауза после испуга, сек
	ArriveDistance       = 0.5  // точка маршрута считается достигнутой
	ExitReachDistance    = 2.0  // дистанция "вышел из дома"
	FleeTrackInterval    = 0.1  // повторная постановка цели бегства
	FleeAwayDistance     = 20.0 // бегство без выхода: прочь от наблюдателя
	FleeReward           = 10   // плазма в общий пул за сбежавшего смертного

	PossessionHopRadius   = 5.0
	PossessionHopInterval = 0.5
	PossessionRetryDelay  = 0.1
	WanderRetryDelay      = 1.0

	ScaredFearLevel = 80.0 // порог "напуган" для цели ScareAllMortals

	HauntReach       = 8.0 // призрак дотягивается до предмета
	ThrowScareRadius = 3.0 // брошенный предмет пугает в этом радиусе
)

// Ghost / pool tuning.
const (
	DefaultStartingPlasm = 50
	DefaultMaxPlasm      = 100
	ObjectiveInterval    = 1.0 // период проверки целей миссии, сек
	BaseMissionScore     = 1000
	ObjectiveScoreBonus  = 500
	OptionalScoreBonus   = 250
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	FloorColor        = color.RGBA{45, 40, 55, 255}
	ExitColor         = color.RGBA{255, 0, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	IndicatorStroke   = color.RGBA{240, 240, 240, 255}
	MortalColor       = color.RGBA{230, 200, 160, 255}
	FearColor         = color.RGBA{220, 40, 40, 255}
	PossessedColor    = color.RGBA{200, 0, 0, 255}
	FrozenColor       = color.RGBA{0, 255, 255, 255}
	GhostColor        = color.RGBA{180, 200, 255, 200}
	SelectedColor     = color.RGBA{255, 255, 0, 255}
	AnchorColor       = color.RGBA{120, 90, 160, 255}
	OccupiedColor     = color.RGBA{0, 200, 0, 255}
	InteractColor     = color.RGBA{0, 180, 180, 255}
	PickupColor       = color.RGBA{120, 255, 160, 255}
	PlasmMeterColor   = color.RGBA{90, 200, 255, 255}
	PlasmLowColor     = color.RGBA{220, 60, 60, 255}
	SpeedButtonColors = []color.RGBA{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	TimeScales = []float64{1, 2, 4}
)
