package calib

import "fmt"

// OpenError はマッピングファイルが開けなかったことを表す
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("マッピングファイル %s を開けませんでした: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// SetupError はキャンセル通知の準備に失敗したことを表す
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("キャンセル通知の準備に失敗しました: %v", e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// PollError は多重待ちが失敗したことを表す
type PollError struct {
	Err error
}

func (e *PollError) Error() string {
	return fmt.Sprintf("poll に失敗しました: %v", e.Err)
}

func (e *PollError) Unwrap() error { return e.Err }

// WriteError はマッピングファイルへの書き込みに失敗したことを表す。
// 書き込み済みの内容は巻き戻されない
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("マッピングの書き込みに失敗しました: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ParseError はマッピングファイルの1行が解釈できなかったことを表す。
// 読み取り全体には致命的ではなく、報告して続行する
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d行目を解釈できません %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MismatchError はマッピングに記録された軸がデバイスに存在しないことを表す
type MismatchError struct {
	Axis int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("軸 %d はマッピングに存在しますがデバイスにはありません", e.Axis)
}

// InternalInconsistencyError は非対応と判定した軸からイベントが届いたことを表す。
// 能力問い合わせとイベントストリームの矛盾を示すため致命的に扱う
type InternalInconsistencyError struct {
	Code uint16
}

func (e *InternalInconsistencyError) Error() string {
	return fmt.Sprintf("内部エラー: 軸 %d は非対応のはずですがイベントを送信しました", e.Code)
}
