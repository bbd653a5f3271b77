package component

type SpaceshipTag struct{}

var SpaceshipTagComponent = NewComponent[SpaceshipTag]()

type PropulsionTag struct{}

var PropulsionTagComponent = NewComponent[PropulsionTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
