package embedded

import (
	"testing"
	"testing/fstest"
)

// reset 重置包状态，避免测试之间互相影响
func reset() {
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile("data/gameplay.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	reset()
	defer reset()

	Init(fstest.MapFS{
		"data/gameplay.yaml": &fstest.MapFile{Data: []byte("window: {}")},
	})

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"正常路径", "data/gameplay.yaml", "window: {}", false},
		{"带 ./ 前缀", "./data/gameplay.yaml", "window: {}", false},
		{"未知前缀", "assets/gameplay.yaml", "", true},
		{"文件不存在", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

func TestExists(t *testing.T) {
	reset()
	defer reset()

	Init(fstest.MapFS{
		"data/gameplay.yaml": &fstest.MapFile{Data: []byte("x")},
	})

	if !Exists("data/gameplay.yaml") {
		t.Error("Expected data/gameplay.yaml to exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("Expected data/nope.yaml to not exist")
	}
	if Exists("gameplay.yaml") {
		t.Error("Paths without data/ prefix should not exist")
	}
}

// TestOpen 测试打开嵌入文件
func TestOpen(t *testing.T) {
	reset()
	defer reset()

	Init(fstest.MapFS{
		"data/strings.txt": &fstest.MapFile{Data: []byte("[KEY]\nvalue\n")},
	})

	f, err := Open("data/strings.txt")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer f.Close()

	if _, err := Open("assets/strings.txt"); err == nil {
		t.Error("Expected error for path without data/ prefix")
	}
	if _, err := Open("data/missing.txt"); err == nil {
		t.Error("Expected error for missing file")
	}
}
