//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把项目根目录的 data/ 复制到 mobile/data/。
package mobile

import "embed"

//go:embed data/gameplay.yaml data/strings.txt
var dataFS embed.FS
