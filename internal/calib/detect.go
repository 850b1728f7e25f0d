package calib

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/char5742/joycal/internal/consts"
	"github.com/char5742/joycal/internal/device"
	"github.com/char5742/joycal/internal/types"
)

// EventSource はキャプチャが必要とするデバイス側の契約。
// HasAxisはブロックしない純粋な問い合わせであること
type EventSource interface {
	HasAxis(code uint16) bool
	NextEvent() (types.Event, error)
	Fd() int
}

// cancelPipe はOSシグナルをpoll可能なfdへ変換する（self-pipe方式）。
// 非同期シグナル文脈で処理を実行せず、デバイスのfdと同じpollで
// 同期的に観測できるようにする
type cancelPipe struct {
	r, w *os.File
	ch   chan os.Signal
	done chan struct{}
}

func newCancelPipe(signals ...os.Signal) (*cancelPipe, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, &SetupError{Err: err}
	}

	c := &cancelPipe{
		r:    r,
		w:    w,
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(c.ch, signals...)

	go func() {
		select {
		case <-c.ch:
			_, _ = c.w.Write([]byte{1})
		case <-c.done:
		}
	}()

	return c, nil
}

// Fd はシグナル到着で読み取り可能になるfdを返す
func (c *cancelPipe) Fd() int {
	return int(c.r.Fd())
}

// Close はシグナル配送を止めてパイプを解放する
func (c *cancelPipe) Close() {
	signal.Stop(c.ch)
	close(c.done)
	_ = c.r.Close()
	_ = c.w.Close()
}

// Capture はキャンセル通知が届くまでデバイスのイベントを観測し、
// 対象軸ごとの値域を集計してoutへ書き出す。
// INITIALIZING→WAITING→FINALIZINGの3状態で進行し、
// キャンセルとデバイスの両方が同時に待機可能になった場合は
// キャンセルを優先する
func Capture(src EventSource, cancelFd int, out io.Writer) (*AxisRangeTable, error) {
	// INITIALIZING: 対応する軸を初期値つきで登録する
	var table AxisRangeTable
	for axis := 0; axis < consts.AxisCount; axis++ {
		if src.HasAxis(Code(axis)) {
			table.MarkPresent(axis)
		}
	}

	fds := []unix.PollFd{
		{Fd: int32(src.Fd()), Events: unix.POLLIN},
		{Fd: int32(cancelFd), Events: unix.POLLIN},
	}

	// WAITING: タイムアウトなしでどちらかのfdが読めるまでブロックする。
	// 操作者が全軸を動かし終えて中断するまで続く
	for {
		if _, err := unix.Poll(fds, -1); err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, &PollError{Err: err}
		}

		switch {
		case fds[1].Revents&unix.POLLIN != 0:
			// FINALIZING: 集計結果を1軸1行で書き出す
			if err := Write(out, &table); err != nil {
				return nil, err
			}
			return &table, nil

		case fds[0].Revents&unix.POLLIN != 0:
			ev, err := src.NextEvent()
			if errors.Is(err, device.ErrSync) || errors.Is(err, device.ErrWouldBlock) {
				continue
			}
			if err != nil {
				return nil, err
			}

			if ev.Type != consts.Abs {
				continue
			}
			axis := AxisID(ev.Code)
			if axis < 0 {
				continue
			}

			r := &table[axis]
			if !r.Present {
				return nil, &InternalInconsistencyError{Code: ev.Code}
			}
			r.Observe(ev.Value)

		default:
			return nil, &PollError{Err: fmt.Errorf("想定外のpoll結果です: %#x %#x", fds[0].Revents, fds[1].Revents)}
		}
	}
}

// Detect はデバイスの軸を観測してマッピングファイルへ保存する。
// 保存先が開けない場合は観測を始める前に失敗する
func Detect(dev *device.Device, mapPath string) error {
	f, err := os.Create(mapPath)
	if err != nil {
		return &OpenError{Path: mapPath, Err: err}
	}
	defer f.Close()

	cancel, err := newCancelPipe(os.Interrupt, syscall.SIGTERM)
	if err != nil {
		return err
	}
	defer cancel.Close()

	fmt.Println("全てのスティックをゆっくりと1周以上、端まで動かしてください")
	fmt.Println("終わったら Ctrl-C を押してください")

	if _, err := Capture(dev, cancel.Fd(), f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
