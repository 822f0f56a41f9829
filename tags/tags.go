package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Geometry  = donburi.NewTag().SetName("Geometry")
)
