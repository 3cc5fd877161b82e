package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/decker502/invaders/pkg/embedded"
)

// UIStringsPath 界面文本文件路径
const UIStringsPath = "data/strings.txt"

// 界面文本键
const (
	StrTitle         = "TITLE"
	StrStart         = "MENU_START"
	StrSoundOn       = "MENU_SOUND_ON"
	StrSoundOff      = "MENU_SOUND_OFF"
	StrQuit          = "MENU_QUIT"
	StrPaused        = "PAUSED"
	StrResume        = "BUTTON_RESUME"
	StrRestart       = "BUTTON_RESTART"
	StrMainMenu      = "BUTTON_MAIN_MENU"
	StrContinue      = "BUTTON_CONTINUE"
	StrGameOver      = "GAME_OVER"
	StrLevelComplete = "LEVEL_COMPLETE"
	StrScore         = "HUD_SCORE"
	StrLevel         = "HUD_LEVEL"
	StrControlsHint  = "CONTROLS_HINT"
)

// UIStrings 界面文本管理器
// 从 strings.txt 加载文本，支持通过键快速查询
type UIStrings struct {
	strings map[string]string
}

// LoadUIStrings 从嵌入文件加载界面文本
//
// 文件格式：
//
//	[KEY]
//	文本内容
func LoadUIStrings(filePath string) (*UIStrings, error) {
	file, err := embedded.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open strings file %s: %w", filePath, err)
	}
	defer file.Close()

	us, err := ParseUIStrings(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read strings file %s: %w", filePath, err)
	}
	return us, nil
}

// ParseUIStrings 解析 [KEY] / 文本 交替格式的内容
func ParseUIStrings(r io.Reader) (*UIStrings, error) {
	us := &UIStrings{strings: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	var currentKey string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentKey = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		if currentKey != "" {
			us.strings[currentKey] = line
			currentKey = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return us, nil
}

// Get 根据键获取文本，键不存在时返回 "[key]"
// us 为 nil 时同样返回 "[key]"
func (us *UIStrings) Get(key string) string {
	if us != nil {
		if text, ok := us.strings[key]; ok {
			return text
		}
	}
	return "[" + key + "]"
}

// Len 返回已加载的文本条目数
func (us *UIStrings) Len() int {
	if us == nil {
		return 0
	}
	return len(us.strings)
}
