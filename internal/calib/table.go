package calib

import "github.com/char5742/joycal/internal/consts"

// 未観測の軸を表す初期値。最初の観測で必ず両端が実際の値域へ動く
const (
	SentinelMin = 65535
	SentinelMax = 0
)

// AxisRange は1本の軸の観測済み値域を表す構造体。
// Presentがfalseの場合、Min/Maxに意味はない
type AxisRange struct {
	Present bool
	Min     uint32
	Max     uint32
}

// Observe は観測値で値域を更新する。
// 比較は符号なしで行うため、負の観測値は大きな値として扱われる
func (r *AxisRange) Observe(value int32) {
	v := uint32(value)
	if v > r.Max {
		r.Max = v
	}
	if v < r.Min {
		r.Min = v
	}
}

// AxisRangeTable は軸ID 0..AxisCount-1 で直接引ける固定長の値域テーブル。
// detect/loadの1回の実行ごとに新しく作られ、実行間で共有されない
type AxisRangeTable [consts.AxisCount]AxisRange

// MarkPresent は軸を観測対象として登録し、値域を初期値に戻す
func (t *AxisRangeTable) MarkPresent(axis int) {
	t[axis] = AxisRange{Present: true, Min: SentinelMin, Max: SentinelMax}
}

// Code は軸IDに対応するevdevの絶対座標軸コードを返す
func Code(axis int) uint16 {
	return uint16(consts.AxisBase + axis)
}

// AxisID はevdevの絶対座標軸コードに対応する軸IDを返す。
// 対象ウィンドウ外のコードには-1を返す
func AxisID(code uint16) int {
	axis := int(code) - consts.AxisBase
	if axis < 0 || axis >= consts.AxisCount {
		return -1
	}
	return axis
}
