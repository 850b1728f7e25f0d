package calib

import (
	"fmt"
	"log"
)

// AxisConfigurator は適用が必要とするデバイス側の契約
type AxisConfigurator interface {
	HasAxis(code uint16) bool
	SetAxisRange(code uint16, min, max uint32) error
}

// Apply はテーブルの値域をデバイスへ適用する。
// まず対象軸が全てデバイスに存在することを検証し、1軸でも欠けて
// いればMismatchErrorを返して何も適用しない。マッピングにない軸の
// 設定には触れない
func Apply(dev AxisConfigurator, t *AxisRangeTable) error {
	for axis := range t {
		if !t[axis].Present {
			continue
		}
		if !dev.HasAxis(Code(axis)) {
			return &MismatchError{Axis: axis}
		}
	}

	for axis := range t {
		r := &t[axis]
		if !r.Present {
			continue
		}
		if err := dev.SetAxisRange(Code(axis), r.Min, r.Max); err != nil {
			return fmt.Errorf("軸 %d の適用に失敗しました: %w", axis, err)
		}
	}
	return nil
}

// Load はマッピングファイルを読み取ってデバイスへ適用する。
// 解釈できなかった行は報告して続行する
func Load(dev AxisConfigurator, mapPath string) error {
	table, parseErrs, err := Read(mapPath)
	if err != nil {
		return err
	}
	for _, e := range parseErrs {
		log.Printf("%s: %v", mapPath, e)
	}

	return Apply(dev, &table)
}
