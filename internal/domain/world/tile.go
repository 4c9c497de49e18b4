package world

type TileKind string

const (
	TileStart   TileKind = "start"
	TileGoal    TileKind = "goal"
	TileStatic  TileKind = "static"
	TileDynamic TileKind = "dynamic"
	TileTerrain TileKind = "terrain"
)

type Tile struct {
	Cell Cell     `json:"cell"`
	Kind TileKind `json:"kind"`
	Cost int      `json:"cost"`
}
