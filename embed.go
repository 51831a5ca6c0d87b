package main

import "embed"

// dataFS 内置的调参配置，通过 embedded.Init 交给 app 层读取
//
//go:embed data/plinko.yaml
var dataFS embed.FS
