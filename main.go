package main

import (
	"graphics.gd/classdb"
	"graphics.gd/classdb/SceneTree"
	"graphics.gd/startup"
	"lira.talks.services/halo/internal"
)

func main() {
	classdb.Register[internal.Client]()
	classdb.Register[internal.Orb]()
	classdb.Register[internal.UI]()
	startup.LoadingScene()
	SceneTree.Add(internal.NewClient())
	startup.Scene()
}
