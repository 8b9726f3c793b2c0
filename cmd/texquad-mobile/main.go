// +build darwin linux windows

// Command texquad-mobile draws the textured quad in a golang.org/x/mobile
// app, using the bundled assets/quad.png and, when present,
// assets/quad.yaml.
package main

import (
	"image"
	"io/ioutil"

	"github.com/2Kronos/Texture-v1/driver/mobiledriver"
	"github.com/2Kronos/Texture-v1/internal/imageio"
	"github.com/2Kronos/Texture-v1/log"
	"github.com/2Kronos/Texture-v1/quad"
	"golang.org/x/mobile/asset"
)

var logger = log.New("texquad-mobile")

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error(err)
		panic(err)
	}
	r, err := quad.New(cfg)
	if err != nil {
		logger.Error(err)
		panic(err)
	}
	mobiledriver.Main(r, loadImage)
}

func loadConfig() (quad.Config, error) {
	f, err := asset.Open("quad.yaml")
	if err != nil {
		logger.Info("no quad.yaml asset, using the default preset")
		return quad.Preset(quad.DefaultPreset)
	}
	defer f.Close()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		return quad.Config{}, err
	}
	return quad.ParseConfig(data)
}

func loadImage() (image.Image, error) {
	f, err := asset.Open("quad.png")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := imageio.Decode(f)
	return img, err
}
