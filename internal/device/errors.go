package device

import "fmt"

// OpenError はデバイスパスが開けなかったことを表す
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("デバイス %s を開けませんでした: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// BindError は開いたリソースがevdevデバイスとして扱えなかったことを表す
type BindError struct {
	Path string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s は入力デバイスではありません: %v", e.Path, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// ReadError はデバイスストリームの読み取りが失敗したことを表す
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("イベントの読み取りに失敗しました: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
