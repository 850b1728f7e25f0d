package utils

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/char5742/joycal/internal/types"
)

// ioctl要求番号のエンコード用定数（Linuxの_IOCマクロより）
const (
	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocWrite = 1
	iocRead  = 2
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNRShift | size<<iocSizeShift
}

// evdevデバイスへのioctl要求番号（input.hのEVIOC*マクロより）
var (
	// EVIOCGVERSION はドライバのバージョンを取得する
	EVIOCGVERSION = ioc(iocRead, 'E', 0x01, unsafe.Sizeof(int32(0)))
	// EVIOCGRAB はデバイスの排他制御を設定・解除する
	EVIOCGRAB = ioc(iocWrite, 'E', 0x90, unsafe.Sizeof(int32(0)))
)

// EVIOCGNAME はデバイス名を取得する要求番号を返す
func EVIOCGNAME(length int) uintptr {
	return ioc(iocRead, 'E', 0x06, uintptr(length))
}

// EVIOCGBIT は指定イベントタイプの対応ビットマップを取得する要求番号を返す
func EVIOCGBIT(eventType int, length int) uintptr {
	return ioc(iocRead, 'E', 0x20+uintptr(eventType), uintptr(length))
}

// EVIOCGABS は指定軸の絶対座標設定を取得する要求番号を返す
func EVIOCGABS(absCode int) uintptr {
	return ioc(iocRead, 'E', 0x40+uintptr(absCode), unsafe.Sizeof(types.AbsInfo{}))
}

// EVIOCSABS は指定軸の絶対座標設定を書き換える要求番号を返す
func EVIOCSABS(absCode int) uintptr {
	return ioc(iocWrite, 'E', 0xc0+uintptr(absCode), unsafe.Sizeof(types.AbsInfo{}))
}

// IOCtl は指定されたデバイスファイルにioctl要求を発行する
func IOCtl(f *os.File, request uintptr, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), request, arg)
	if errno != 0 {
		return errno
	}
	return nil
}

// IOCtlPointer はポインタ引数を取るioctl要求を発行する
func IOCtlPointer(f *os.File, request uintptr, p unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), request, uintptr(p))
	if errno != 0 {
		return errno
	}
	return nil
}
