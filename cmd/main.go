package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/char5742/joycal/internal/calib"
	"github.com/char5742/joycal/internal/config"
	"github.com/char5742/joycal/internal/device"
	"github.com/char5742/joycal/internal/features"
)

func usage(w *os.File) {
	fmt.Fprintf(w, "使い方: %s [オプション] <コマンド> ...\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "コマンド:")
	fmt.Fprintln(w, "  detect <デバイス> <マッピングファイル>  軸を観測して値域を保存する")
	fmt.Fprintln(w, "  load <デバイス> <マッピングファイル>    保存済みの値域をデバイスへ適用する")
	fmt.Fprintln(w, "  devices [-watch]                        接続中のジョイスティックを一覧する")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "オプション:")
	fmt.Fprintln(w, "  -config <パス>  設定ファイルのパス (指定しない場合はデフォルトパスを使用)")
}

func main() {
	// ヘルプはどの位置にあっても成功終了とする
	for _, arg := range os.Args[1:] {
		if arg == "-h" || arg == "--help" || arg == "help" {
			usage(os.Stdout)
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "設定ファイルのパス")
	flag.Usage = func() { usage(os.Stderr) }
	flag.Parse()

	// デフォルト設定ファイルパスの決定
	cfgPath := *configPath
	if cfgPath == "" {
		if configDir, err := config.GetDefaultConfigDir(); err == nil {
			cfgPath = filepath.Join(configDir, "config.toml")
		}
	}

	cfg := config.DefaultConfig()
	if cfgPath != "" {
		loaded, err := config.LoadConfig(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "設定ファイルの読み込みに失敗しました: %v\nデフォルト設定を使用します\n", err)
		} else {
			cfg = loaded
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		usage(os.Stderr)
		return fmt.Errorf("コマンドが指定されていません")
	}

	switch args[0] {
	case "detect":
		if len(args) != 3 {
			usage(os.Stderr)
			return fmt.Errorf("引数の数が正しくありません")
		}
		return runDetect(cfg, args[1], args[2])

	case "load":
		if len(args) != 3 {
			usage(os.Stderr)
			return fmt.Errorf("引数の数が正しくありません")
		}
		return runLoad(args[1], args[2])

	case "devices":
		watch := false
		for _, a := range args[1:] {
			if a == "-watch" || a == "--watch" {
				watch = true
			} else {
				usage(os.Stderr)
				return fmt.Errorf("不明な引数です: %s", a)
			}
		}
		return runDevices(cfg, watch)

	default:
		return fmt.Errorf("不明なコマンドです: %s", args[0])
	}
}

func runDetect(cfg *config.Config, devicePath, mapPath string) error {
	dev, err := device.Open(devicePath)
	if err != nil {
		return err
	}
	defer dev.Close()

	if dev.Name() != "" {
		fmt.Printf("デバイス: %s\n", dev.Name())
	}

	if cfg.Capture.Grab {
		if err := dev.Grab(); err != nil {
			return err
		}
		defer dev.Release()
	}

	return calib.Detect(dev, mapPath)
}

func runLoad(devicePath, mapPath string) error {
	dev, err := device.Open(devicePath)
	if err != nil {
		return err
	}
	defer dev.Close()

	return calib.Load(dev, mapPath)
}

func runDevices(cfg *config.Config, watch bool) error {
	devices, err := features.ScanJoysticks(cfg.Device.ByIDDir)
	if err != nil {
		return err
	}

	preferred := cfg.Device.PreferredDevice
	shown := 0
	for _, d := range devices {
		if preferred != "" && !strings.Contains(d.Name, preferred) {
			continue
		}
		fmt.Printf("%s\t%s\n", d.Path, d.Name)
		shown++
	}
	if shown == 0 {
		fmt.Println("ジョイスティックが見つかりません")
	}

	if !watch {
		return nil
	}

	// Ctrl-Cまで接続・切断を表示し続ける
	stop := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		close(stop)
	}()

	return features.WatchJoysticks(cfg.Device.ByIDDir, stop, func(ev features.DeviceEvent) {
		switch ev.Type {
		case features.DeviceAdded:
			fmt.Printf("接続: %s\t%s\n", ev.Device.Path, ev.Device.Name)
		case features.DeviceRemoved:
			fmt.Printf("切断: %s\n", ev.Device.Name)
		}
	})
}
