package bstree

import (
	"io/ioutil"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Yaml decodes the yaml file at filePath into out.
func Yaml(filePath string, out interface{}) (err error) {
	conf, err := ioutil.ReadFile(filePath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(conf, out)
}

// Json decodes the json file at filePath into out.
func Json(filePath string, out interface{}) (err error) {
	conf, err := ioutil.ReadFile(filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(conf, out)
}
