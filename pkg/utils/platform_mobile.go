//go:build mobile

package utils

// IsMobile ebitenmobile 构建始终使用触摸操作
func IsMobile() bool {
	return true
}
