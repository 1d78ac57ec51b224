package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/slidefx/api"
	"github.com/matt-g-everett/slidefx/preset"
	"github.com/matt-g-everett/slidefx/util"
	"gopkg.in/yaml.v2"
)

type app struct {
	Config preset.Config
	Client mqtt.Client
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
}

func (a *app) bake(samples int) []preset.BakedAnimation {
	baked, err := preset.BakeScene(&a.Config.Scene)
	if err != nil {
		panic(err)
	}

	if samples > 0 {
		for i := range baked {
			baked[i].EasingLut = util.GenerateLut(preset.Curve(baked[i].Easing), samples)
		}
	}

	return baked
}

// publish pushes the baked animation document to display clients.
func (a *app) publish(baked []preset.BakedAnimation) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}

	b, err := json.Marshal(baked)
	if err != nil {
		panic(err)
	}

	token := a.Client.Publish(a.Config.Mqtt.Topic, 2, true, b)
	token.Wait()
	a.Client.Disconnect(250)
	log.Printf("Published %d animations to %s", len(baked), a.Config.Mqtt.Topic)
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "scene.yaml", "YAML scene file.")
	serve := flag.Bool("serve", false, "Serve baked animations over HTTP.")
	publish := flag.Bool("publish", false, "Publish baked animations over MQTT.")
	samples := flag.Int("samples", 0, "Number of easing samples to attach per animation.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Scene: %d elements", len(a.Config.Scene.Elements))

	baked := a.bake(*samples)

	if *publish {
		options := mqtt.NewClientOptions().
			AddBroker(a.Config.Mqtt.URL).
			SetClientID("slidefx").
			SetUsername(a.Config.Mqtt.Username).
			SetPassword(a.Config.Mqtt.Password).
			SetKeepAlive(30 * time.Second).
			SetPingTimeout(5 * time.Second)
		a.Client = mqtt.NewClient(options)
		a.publish(baked)
	}

	if *serve {
		api.NewApi(&a.Config.Scene).Serve()
		return
	}

	if !*publish {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(baked); err != nil {
			panic(err)
		}
	}
}
