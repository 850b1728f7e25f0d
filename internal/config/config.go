package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config はアプリケーション全体の設定を表す構造体
type Config struct {
	Device  DeviceConfig  `toml:"device"`
	Capture CaptureConfig `toml:"capture"`
}

// DeviceConfig はデバイス検出の設定
type DeviceConfig struct {
	ByIDDir         string `toml:"by_id_dir"`
	PreferredDevice string `toml:"preferred_device"` // devicesコマンドの絞り込み用の部分文字列
}

// CaptureConfig はキャリブレーション観測の設定
type CaptureConfig struct {
	Grab bool `toml:"grab"` // 観測中にデバイスを排他制御するか
}

// DefaultConfig はデフォルト設定を返す
func DefaultConfig() *Config {
	return &Config{
		Device: DeviceConfig{
			ByIDDir:         "/dev/input/by-id",
			PreferredDevice: "",
		},
		Capture: CaptureConfig{
			Grab: false,
		},
	}
}

// GetDefaultConfigDir はデフォルトの設定ディレクトリを返す
func GetDefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "joycal"), nil
}

// LoadConfig は設定ファイルから設定を読み込む。
// ファイルが存在しない場合はデフォルト設定を保存して返す
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveConfig(configPath, config); err != nil {
			return config, err
		}
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig は設定をTOMLファイルに保存する
func SaveConfig(configPath string, config *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(config)
}
