package renderers

import (
	"github.com/lixenwraith/road-fighter/render"
)

// RegisterAll attaches every play field layer to the orchestrator in draw order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewRoadRenderer(), render.PriorityBackground)
	o.Register(NewPowerupRenderer(), render.PriorityPowerups)
	o.Register(NewEnemyRenderer(), render.PriorityEntities)
	o.Register(NewProjectileRenderer(), render.PriorityProjectiles)
	o.Register(NewPlayerRenderer(), render.PriorityPlayer)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	o.Register(NewGameOverRenderer(), render.PriorityOverlay)
}
