package features

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Device は検出された入力デバイスを表す構造体
type Device struct {
	Name string
	Path string
}

// DeviceEventType はデバイスイベントの種類を表す
type DeviceEventType int

const (
	DeviceAdded DeviceEventType = iota
	DeviceRemoved
)

// DeviceEvent はデバイスの接続状態の変化を表す
type DeviceEvent struct {
	Type   DeviceEventType
	Device Device
}

// ジョイスティックのeventデバイスかどうかをby-idのエントリ名で判定する
func isJoystickEntry(name string) bool {
	return strings.Contains(name, "event") && strings.Contains(name, "joystick")
}

// ScanJoysticks はby-idディレクトリからジョイスティックのevent
// デバイスを検出し、実パスに解決して返す
func ScanJoysticks(byIDDir string) ([]Device, error) {
	entries, err := os.ReadDir(byIDDir)
	if err != nil {
		return nil, fmt.Errorf("デバイス一覧の取得に失敗しました: %w", err)
	}

	var devices []Device
	for _, entry := range entries {
		if !isJoystickEntry(entry.Name()) {
			continue
		}
		fullPath := filepath.Join(byIDDir, entry.Name())
		realPath, err := os.Readlink(fullPath)
		if err != nil {
			continue
		}

		absPath := realPath
		if !strings.HasPrefix(realPath, "/") {
			absPath = filepath.Join(filepath.Dir(byIDDir), filepath.Base(realPath))
		}

		devices = append(devices, Device{Name: entry.Name(), Path: absPath})
	}

	return devices, nil
}

// WatchJoysticks はby-idディレクトリを監視し、ジョイスティックの
// 接続・切断をコールバックへ通知する。stopが閉じられるまで返らない
func WatchJoysticks(byIDDir string, stop <-chan struct{}, callback func(DeviceEvent)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("デバイス監視の初期化に失敗しました: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(byIDDir); err != nil {
		return fmt.Errorf("ディレクトリの監視に失敗しました: %s - %w", byIDDir, err)
	}
	log.Printf("ディレクトリ監視を開始: %s", byIDDir)

	for {
		select {
		case <-stop:
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(event.Name)
			if !isJoystickEntry(name) {
				continue
			}

			switch {
			case event.Op&fsnotify.Create != 0:
				realPath, err := os.Readlink(event.Name)
				if err != nil {
					realPath = event.Name
				} else if !strings.HasPrefix(realPath, "/") {
					realPath = filepath.Join(filepath.Dir(byIDDir), filepath.Base(realPath))
				}
				callback(DeviceEvent{Type: DeviceAdded, Device: Device{Name: name, Path: realPath}})

			case event.Op&fsnotify.Remove != 0:
				callback(DeviceEvent{Type: DeviceRemoved, Device: Device{Name: name}})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("ファイルシステム監視エラー: %v", err)
		}
	}
}
