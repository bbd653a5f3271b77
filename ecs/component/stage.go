package component

type StageType int

const (
	StageNormal StageType = iota
	StageAsteroidField
	StageSaucerInvasion
)

func (t StageType) String() string {
	switch t {
	case StageAsteroidField:
		return "asteroid_field"
	case StageSaucerInvasion:
		return "saucer_invasion"
	default:
		return "normal"
	}
}

type StageWave struct {
	Number int
	Type   StageType
}

// SpawnerLocation is the rectangle enemies appear in, centred on Center.
type SpawnerLocation struct {
	CenterX float64
	CenterY float64
	Width   float64
	Height  float64
}

type EnemySpawner struct {
	EntityType EntityType
	Spawned    int
	SpawnTotal int
	// SpeedY overrides the enemy's vertical velocity when non-zero.
	SpeedY   float64
	Interval Timer
	Location SpawnerLocation
}

func (s *EnemySpawner) Done() bool {
	return s.Spawned >= s.SpawnTotal
}

type StagePhase int

const (
	StageCooldown StagePhase = iota
	StageSpawning
)

func (p StagePhase) String() string {
	if p == StageSpawning {
		return "spawning"
	}
	return "cooldown"
}

// StageState is Spawning(Spawners) or Cooldown(Timer) depending on Phase.
type StageState struct {
	Phase    StagePhase
	Spawners []EnemySpawner
	Timer    Timer
}

type GameplayStage struct {
	Wave  StageWave
	State StageState
}

var GameplayStageComponent = NewComponent[GameplayStage]()

type EnemyCount struct {
	Asteroids int
	Saucers   int
}

func (c *EnemyCount) Increment(t EntityType) {
	switch t {
	case EntityTypeAsteroid:
		c.Asteroids++
	case EntityTypeSaucer:
		c.Saucers++
	}
}

// Decrement never takes a count below zero.
func (c *EnemyCount) Decrement(t EntityType) {
	switch t {
	case EntityTypeAsteroid:
		if c.Asteroids > 0 {
			c.Asteroids--
		}
	case EntityTypeSaucer:
		if c.Saucers > 0 {
			c.Saucers--
		}
	}
}

func (c *EnemyCount) Total() int {
	return c.Asteroids + c.Saucers
}

var EnemyCountComponent = NewComponent[EnemyCount]()
