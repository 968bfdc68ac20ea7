package bstree

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

type confItem struct {
	Name string `json:"name" yaml:"name"`
	Keys []int  `json:"keys" yaml:"keys"`
}

func writeConf(t *testing.T, name, content string) string {
	dir, err := ioutil.TempDir("", "bstree")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, name)
	if err = ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestYaml(t *testing.T) {
	path := writeConf(t, "conf.yml", "name: balanced\nkeys: [4, 2, 6]\n")

	var item confItem
	if err := Yaml(path, &item); err != nil {
		t.Fatalf("want nil, got %v", err)
	}

	if item.Name != "balanced" {
		t.Fatalf("want balanced, got %s", item.Name)
	}

	if len(item.Keys) != 3 || item.Keys[0] != 4 {
		t.Fatalf("want [4 2 6], got %v", item.Keys)
	}
}

func TestJson(t *testing.T) {
	path := writeConf(t, "conf.json", `{"name": "worst", "keys": [1, 2, 3, 4]}`)

	var item confItem
	if err := Json(path, &item); err != nil {
		t.Fatalf("want nil, got %v", err)
	}

	if item.Name != "worst" {
		t.Fatalf("want worst, got %s", item.Name)
	}

	if len(item.Keys) != 4 {
		t.Fatalf("want 4, got %d", len(item.Keys))
	}
}

func TestJson_Missing(t *testing.T) {
	var item confItem
	if err := Json(filepath.Join(os.TempDir(), "bstree-missing.json"), &item); err == nil {
		t.Fatal("want error, got nil")
	}
}
