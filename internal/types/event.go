package types

import "syscall"

// Event は入力イベントを表す構造体（input_eventと同じメモリレイアウト）
type Event struct {
	Time  syscall.Timeval // イベント発生時刻
	Type  uint16          // イベントタイプ
	Code  uint16          // イベントコード
	Value int32           // イベント値
}

// AbsInfo は絶対座標軸の設定を表す構造体（input_absinfoと同じメモリレイアウト）
type AbsInfo struct {
	Value      int32 // 現在値
	Minimum    int32 // 最小値
	Maximum    int32 // 最大値
	Fuzz       int32 // ノイズ除去の閾値
	Flat       int32 // 不感帯
	Resolution int32 // 分解能
}
