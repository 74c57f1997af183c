// internal/component/visual.go
package component

// FearFlash указывает, что смертный должен быть отрисован цветом страха.
type FearFlash struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// PulseRing — расходящееся кольцо от силы призрака или якоря.
type PulseRing struct {
	MaxRadius    float64
	Duration     float64
	CurrentTimer float64
}
