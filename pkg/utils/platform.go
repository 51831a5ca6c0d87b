//go:build !mobile

package utils

import "os"

// mobileEmulateEnv 设为 "1" 时桌面端也按触摸设备处理（本地调试触摸提示）
const mobileEmulateEnv = "PLINKO_MOBILE_EMULATE"

// IsMobile 桌面构建默认返回 false
func IsMobile() bool {
	return os.Getenv(mobileEmulateEnv) == "1"
}
