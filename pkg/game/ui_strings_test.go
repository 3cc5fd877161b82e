package game

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/invaders/pkg/embedded"
)

// TestParseUIStrings 测试解析格式
func TestParseUIStrings(t *testing.T) {
	content := `[TITLE]
INVADERS

[MENU_START]
Start Game
stray line without key
[EMPTY]
`
	us, err := ParseUIStrings(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseUIStrings() error: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"TITLE", "INVADERS"},
		{"MENU_START", "Start Game"},
		{"EMPTY", "[EMPTY]"},
		{"MISSING", "[MISSING]"},
	}
	for _, tt := range tests {
		if got := us.Get(tt.key); got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
	if us.Len() != 2 {
		t.Errorf("Len() = %d, want 2", us.Len())
	}
}

// TestUIStringsNil nil 实例返回调试用键名
func TestUIStringsNil(t *testing.T) {
	var us *UIStrings
	if us.Get(StrTitle) != "[TITLE]" {
		t.Errorf("nil Get() = %q", us.Get(StrTitle))
	}
	if us.Len() != 0 {
		t.Error("nil Len() should be 0")
	}
}

// TestLoadUIStrings 通过 embedded 包加载文本
func TestLoadUIStrings(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/strings.txt": &fstest.MapFile{Data: []byte("[GAME_OVER]\nGame Over\n")},
	})
	defer embedded.Init(nil)

	us, err := LoadUIStrings(UIStringsPath)
	if err != nil {
		t.Fatalf("LoadUIStrings() error: %v", err)
	}
	if us.Get(StrGameOver) != "Game Over" {
		t.Errorf("Get(GAME_OVER) = %q", us.Get(StrGameOver))
	}

	if _, err := LoadUIStrings("data/missing.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestShippedUIStrings 随程序发布的文本包含所有界面键
func TestShippedUIStrings(t *testing.T) {
	f, err := os.Open("../../data/strings.txt")
	if err != nil {
		t.Fatalf("open shipped strings: %v", err)
	}
	defer f.Close()

	us, err := ParseUIStrings(f)
	if err != nil {
		t.Fatalf("ParseUIStrings() error: %v", err)
	}

	keys := []string{
		StrTitle, StrStart, StrSoundOn, StrSoundOff, StrQuit, StrPaused, StrResume,
		StrRestart, StrMainMenu, StrContinue, StrGameOver, StrLevelComplete,
		StrScore, StrLevel, StrControlsHint,
	}
	for _, key := range keys {
		if got := us.Get(key); got == "["+key+"]" {
			t.Errorf("shipped strings missing key %s", key)
		}
	}
}
