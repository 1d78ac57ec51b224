package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/slidefx/preset"
)

// Api serves the baked scene to the preview client.
type Api struct {
	scene *preset.Scene
}

func NewApi(scene *preset.Scene) *Api {
	a := new(Api)
	a.scene = scene
	return a
}

func (a *Api) handleAnimations(w http.ResponseWriter, r *http.Request) {
	baked, err := preset.BakeScene(a.scene)
	if err != nil {
		log.Printf("bake failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(baked)
}

func (a *Api) Serve() {
	http.HandleFunc("/animations", a.handleAnimations)

	fs := http.FileServer(http.Dir("client/dist"))
	http.Handle("/", fs)

	log.Println("Listening...")
	http.ListenAndServe(":3000", nil)
}
