package v1

// BuildInfo contains the current build id of the game.
type BuildInfo struct {
	ID int `json:"build_id" yaml:"build_id"`
}

// WorldName maps a world id to its localized name.
type WorldName struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ContinentList is keyed by continent id.
type ContinentList struct {
	Continents map[string]Continent `json:"continents" yaml:"continents"`
}

// Continent describes a continent and its floors.
type Continent struct {
	Name       string `json:"name"           yaml:"name"`
	Dimensions []int  `json:"continent_dims" yaml:"continent_dims"`
	MinZoom    int    `json:"min_zoom"       yaml:"min_zoom"`
	MaxZoom    int    `json:"max_zoom"       yaml:"max_zoom"`
	Floors     []int  `json:"floors"         yaml:"floors"`
}

// Floor is one floor of a continent. All coordinates are map coordinates.
type Floor struct {
	TextureDims []float64         `json:"texture_dims"           yaml:"texture_dims"`
	ClampedView [][]float64       `json:"clamped_view,omitempty" yaml:"clamped_view,omitempty"`
	Regions     map[string]Region `json:"regions"                yaml:"regions"`
}

// Region is a region of a floor, keyed by map id.
type Region struct {
	Name          string         `json:"name"           yaml:"name"`
	LabelCoord    []float64      `json:"label_coord"    yaml:"label_coord"`
	ContinentRect [][]int        `json:"continent_rect" yaml:"continent_rect"`
	Maps          map[string]Map `json:"maps"           yaml:"maps"`
}

// Map is a map within a region. Rectangles are given as the south-west and
// north-east corners.
type Map struct {
	Name             string            `json:"name"                         yaml:"name"`
	MinLevel         int               `json:"min_level"                    yaml:"min_level"`
	MaxLevel         int               `json:"max_level"                    yaml:"max_level"`
	DefaultFloor     int               `json:"default_floor"                yaml:"default_floor"`
	Floors           []int             `json:"floors,omitempty"             yaml:"floors,omitempty"`
	LabelCoord       []float64         `json:"label_coord,omitempty"        yaml:"label_coord,omitempty"`
	MapRect          [][]int           `json:"map_rect,omitempty"           yaml:"map_rect,omitempty"`
	ContinentRect    [][]int           `json:"continent_rect,omitempty"     yaml:"continent_rect,omitempty"`
	PointsOfInterest []PointOfInterest `json:"points_of_interest,omitempty" yaml:"points_of_interest,omitempty"`
	Tasks            []Task            `json:"tasks,omitempty"              yaml:"tasks,omitempty"`
	SkillChallenges  []SkillChallenge  `json:"skill_challenges,omitempty"   yaml:"skill_challenges,omitempty"`
	Sectors          []Sector          `json:"sectors,omitempty"            yaml:"sectors,omitempty"`
}

// PointOfInterestType is the kind of a point of interest.
type PointOfInterestType string

// Point of interest types.
const (
	PointOfInterestLandmark PointOfInterestType = "landmark"
	PointOfInterestWaypoint PointOfInterestType = "waypoint"
	PointOfInterestVista    PointOfInterestType = "vista"
	PointOfInterestUnlock   PointOfInterestType = "unlock"
)

// PointOfInterest is a landmark, waypoint, vista or unlock.
type PointOfInterest struct {
	ID    int                 `json:"poi_id" yaml:"poi_id"`
	Name  string              `json:"name"   yaml:"name"`
	Type  PointOfInterestType `json:"type"   yaml:"type"`
	Floor int                 `json:"floor"  yaml:"floor"`
	Coord []float64           `json:"coord"  yaml:"coord"`
}

// Task is a renown heart.
type Task struct {
	ID        int         `json:"task_id"   yaml:"task_id"`
	Objective string      `json:"objective" yaml:"objective"`
	Level     int         `json:"level"     yaml:"level"`
	Coord     []float64   `json:"coord"     yaml:"coord"`
	Bounds    [][]float64 `json:"bounds"    yaml:"bounds"`
}

// SkillChallenge is a hero challenge location.
type SkillChallenge struct {
	Expansion int       `json:"expac" yaml:"expac"`
	Index     int       `json:"idx"   yaml:"idx"`
	Coord     []float64 `json:"coord" yaml:"coord"`
}

// Sector is an area of a map with its own name.
type Sector struct {
	ID     int         `json:"sector_id" yaml:"sector_id"`
	Name   string      `json:"name"      yaml:"name"`
	Level  int         `json:"level"     yaml:"level"`
	Coord  []float64   `json:"coord"     yaml:"coord"`
	Bounds [][]float64 `json:"bounds"    yaml:"bounds"`
}

// EventList is the answer of the events endpoint.
type EventList struct {
	Events []EventState `json:"events" yaml:"events"`
}

// EventState is the state of one dynamic event on one world.
type EventState struct {
	WorldID int    `json:"world_id" yaml:"world_id"`
	MapID   int    `json:"map_id"   yaml:"map_id"`
	EventID string `json:"event_id" yaml:"event_id"`
	State   string `json:"state"    yaml:"state"`
}
