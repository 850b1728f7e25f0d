package features

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsJoystickEntry(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"usb-Thrustmaster_T.16000M-event-joystick", true},
		{"usb-Thrustmaster_T.16000M-joystick", false}, // jsデバイスは対象外
		{"usb-Logitech_USB_Keyboard-event-kbd", false},
		{"usb-Logitech_G502-event-mouse", false},
	}
	for _, c := range cases {
		if got := isJoystickEntry(c.name); got != c.want {
			t.Errorf("isJoystickEntry(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestScanJoysticksResolvesSymlinks(t *testing.T) {
	root := t.TempDir()
	byID := filepath.Join(root, "by-id")
	if err := os.Mkdir(byID, 0755); err != nil {
		t.Fatalf("ディレクトリ作成に失敗: %v", err)
	}

	links := map[string]string{
		"usb-Thrustmaster_T.16000M-event-joystick": "../event3",
		"usb-Logitech_USB_Keyboard-event-kbd":      "../event5",
	}
	for name, target := range links {
		if err := os.Symlink(target, filepath.Join(byID, name)); err != nil {
			t.Fatalf("シンボリックリンク作成に失敗: %v", err)
		}
	}

	devices, err := ScanJoysticks(byID)
	if err != nil {
		t.Fatalf("ScanJoysticksに失敗: %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("検出数が不正: %v", devices)
	}
	if devices[0].Path != filepath.Join(root, "event3") {
		t.Errorf("実パスの解決が不正: %s", devices[0].Path)
	}
}

func TestScanJoysticksMissingDir(t *testing.T) {
	if _, err := ScanJoysticks(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("存在しないディレクトリでエラーにならない")
	}
}
