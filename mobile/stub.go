//go:build !mobile

// Package mobile 提供 ebitenmobile 绑定入口。
//
// 绑定代码在 mobile.go 中，只在 -tags mobile 时编译；
// 普通构建只保留这个占位文件，使 go vet ./... 不会因空包报错。
package mobile

// Dummy 占位导出，绑定工具要求包内至少有一个导出符号
func Dummy() {}
