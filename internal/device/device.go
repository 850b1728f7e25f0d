package device

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"github.com/char5742/joycal/internal/consts"
	"github.com/char5742/joycal/internal/types"
	"github.com/char5742/joycal/internal/utils"
)

// NextEventが返す番兵エラー
var (
	// ErrSync はカーネルバッファ溢れによるイベント欠落（再同期通知）を表す。
	// 致命的エラーではなく、読み飛ばして続行する
	ErrSync = errors.New("イベントが欠落しました（再同期）")
	// ErrWouldBlock は読み取り可能なイベントがないことを表す
	ErrWouldBlock = errors.New("読み取り可能なイベントがありません")
)

// Device は物理入力デバイスを表す構造体。
// 開いている間はデバイスファイルを排他的に所有し、Closeで
// ファイルとハンドルを一体として解放する
type Device struct {
	file    *os.File
	fd      int
	name    string
	absBits [consts.AbsSize / 8]byte
	grabbed bool
}

// Open は指定パスのevdevデバイスを読み書きモードで開く。
// パスが開けない場合はOpenError、開けたリソースがevdevデバイスで
// ない場合はBindErrorを返す
func Open(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR|syscall.O_NONBLOCK, 0660)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	d := &Device{file: f}
	// Fd()の呼び出しでファイルはブロッキングモードに固定される。
	// 以降はこのfdをpollしてから読むため問題にならない
	d.fd = int(f.Fd())

	// evdevデバイスかどうかをバージョン問い合わせで確認する
	var version int32
	if err := utils.IOCtlPointer(f, utils.EVIOCGVERSION, unsafe.Pointer(&version)); err != nil {
		_ = f.Close()
		return nil, &BindError{Path: path, Err: err}
	}

	// EV_ABSの対応ビットマップを取得してキャッシュする。
	// これによりHasAxisはブロックしない純粋な問い合わせになる
	if err := utils.IOCtlPointer(f, utils.EVIOCGBIT(consts.Abs, len(d.absBits)), unsafe.Pointer(&d.absBits[0])); err != nil {
		_ = f.Close()
		return nil, &BindError{Path: path, Err: err}
	}

	// デバイス名（診断メッセージ用、取得失敗は無視する）
	var nameBuf [consts.MaxNameSize]byte
	if err := utils.IOCtlPointer(f, utils.EVIOCGNAME(len(nameBuf)), unsafe.Pointer(&nameBuf[0])); err == nil {
		d.name = string(bytes.TrimRight(nameBuf[:], "\x00"))
	}

	return d, nil
}

// Name はデバイスの名前を返す
func (d *Device) Name() string {
	return d.name
}

// Fd はpoll用のファイルディスクリプタを返す
func (d *Device) Fd() int {
	return d.fd
}

// HasAxis は指定された絶対座標軸コードにデバイスが対応しているかを返す
func (d *Device) HasAxis(code uint16) bool {
	if int(code) >= consts.AbsSize {
		return false
	}
	return d.absBits[code/8]&(1<<(code%8)) != 0
}

// NextEvent は次の入力イベントを1件読み取る。
// 再同期通知はErrSync、未読イベントなしはErrWouldBlockを返す
func (d *Device) NextEvent() (types.Event, error) {
	var e types.Event
	buf := make([]byte, binary.Size(e))

	n, err := d.file.Read(buf)
	if err != nil {
		if errors.Is(err, syscall.EAGAIN) {
			return types.Event{}, ErrWouldBlock
		}
		return types.Event{}, &ReadError{Err: err}
	}
	if n < len(buf) {
		return types.Event{}, &ReadError{Err: fmt.Errorf("読み取りが不完全です: %dバイト", n)}
	}

	e.Time.Sec = int64(binary.LittleEndian.Uint64(buf[0:8]))
	e.Time.Usec = int64(binary.LittleEndian.Uint64(buf[8:16]))
	e.Type = binary.LittleEndian.Uint16(buf[16:18])
	e.Code = binary.LittleEndian.Uint16(buf[18:20])
	e.Value = int32(binary.LittleEndian.Uint32(buf[20:24]))

	if e.Type == consts.Syn && e.Code == consts.SynDropped {
		return e, ErrSync
	}

	return e, nil
}

// SetAxisRange はデバイスが申告する軸の最小値・最大値を書き換える。
// 冪等であり、同じ軸への後の書き込みが優先される。
// 対応していない軸を指定した場合のみ失敗する
func (d *Device) SetAxisRange(code uint16, min, max uint32) error {
	if !d.HasAxis(code) {
		return fmt.Errorf("軸 %d はこのデバイスに存在しません", code)
	}

	var info types.AbsInfo
	if err := utils.IOCtlPointer(d.file, utils.EVIOCGABS(int(code)), unsafe.Pointer(&info)); err != nil {
		return fmt.Errorf("軸 %d の設定取得に失敗しました: %w", code, err)
	}

	info.Minimum = int32(min)
	info.Maximum = int32(max)

	if err := utils.IOCtlPointer(d.file, utils.EVIOCSABS(int(code)), unsafe.Pointer(&info)); err != nil {
		return fmt.Errorf("軸 %d の設定書き込みに失敗しました: %w", code, err)
	}
	return nil
}

// Grab はデバイスを排他制御する
func (d *Device) Grab() error {
	if d.grabbed {
		return nil
	}
	if err := utils.IOCtl(d.file, utils.EVIOCGRAB, 1); err != nil {
		return fmt.Errorf("デバイスの排他制御に失敗しました: %w", err)
	}
	d.grabbed = true
	return nil
}

// Release はデバイスの排他制御を解除する
func (d *Device) Release() error {
	if !d.grabbed {
		return nil
	}
	if err := utils.IOCtl(d.file, utils.EVIOCGRAB, 0); err != nil {
		return fmt.Errorf("デバイスの排他制御解除に失敗しました: %w", err)
	}
	d.grabbed = false
	return nil
}

// Close はデバイスハンドルと背後のファイルを一体として解放する
func (d *Device) Close() error {
	_ = d.Release()
	return d.file.Close()
}
