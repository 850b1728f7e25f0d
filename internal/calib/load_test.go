package calib

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// fakeConfigurator はSetAxisRangeの呼び出しを記録するAxisConfigurator
type fakeConfigurator struct {
	axes  map[uint16]bool
	set   map[uint16][2]uint32
	calls int
}

func newFakeConfigurator(axes ...uint16) *fakeConfigurator {
	f := &fakeConfigurator{
		axes: make(map[uint16]bool),
		set:  make(map[uint16][2]uint32),
	}
	for _, code := range axes {
		f.axes[code] = true
	}
	return f
}

func (f *fakeConfigurator) HasAxis(code uint16) bool { return f.axes[code] }

func (f *fakeConfigurator) SetAxisRange(code uint16, min, max uint32) error {
	f.calls++
	f.set[code] = [2]uint32{min, max}
	return nil
}

func TestApplySetsPresentAxes(t *testing.T) {
	var table AxisRangeTable
	table[0] = AxisRange{Present: true, Min: 10, Max: 20}
	table[5] = AxisRange{Present: true, Min: 30, Max: 40}

	dev := newFakeConfigurator(Code(0), Code(5), Code(7))
	if err := Apply(dev, &table); err != nil {
		t.Fatalf("Applyに失敗: %v", err)
	}

	want := map[uint16][2]uint32{
		Code(0): {10, 20},
		Code(5): {30, 40},
	}
	if !reflect.DeepEqual(dev.set, want) {
		t.Errorf("適用内容が不正: %v want %v", dev.set, want)
	}
	// マッピングにない軸（7）には触れない
	if _, ok := dev.set[Code(7)]; ok {
		t.Error("マッピングにない軸が書き換えられた")
	}
}

func TestApplyMismatchIsAllOrNothing(t *testing.T) {
	var table AxisRangeTable
	table[0] = AxisRange{Present: true, Min: 10, Max: 20}
	table[5] = AxisRange{Present: true, Min: 30, Max: 40}

	// デバイスには軸0しかない
	dev := newFakeConfigurator(Code(0))
	err := Apply(dev, &table)

	var merr *MismatchError
	if !errors.As(err, &merr) {
		t.Fatalf("MismatchErrorではない: %v", err)
	}
	if merr.Axis != 5 {
		t.Errorf("不一致の軸IDが不正: %d", merr.Axis)
	}
	if dev.calls != 0 {
		t.Errorf("不一致があるのに%d件適用された", dev.calls)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	var table AxisRangeTable
	table[2] = AxisRange{Present: true, Min: 1, Max: 1000}

	dev := newFakeConfigurator(Code(2))
	if err := Apply(dev, &table); err != nil {
		t.Fatalf("1回目のApplyに失敗: %v", err)
	}
	first := map[uint16][2]uint32{}
	for k, v := range dev.set {
		first[k] = v
	}

	if err := Apply(dev, &table); err != nil {
		t.Fatalf("2回目のApplyに失敗: %v", err)
	}
	if !reflect.DeepEqual(dev.set, first) {
		t.Errorf("2回適用で結果が変わった: %v want %v", dev.set, first)
	}
}

func TestLoadAppliesFileBestEffort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axes.map")
	content := "axis 0: min = 50, max = 900\n解釈できない行\naxis 1: min = 0, max = 255\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}

	dev := newFakeConfigurator(Code(0), Code(1))
	if err := Load(dev, path); err != nil {
		t.Fatalf("Loadに失敗: %v", err)
	}

	want := map[uint16][2]uint32{
		Code(0): {50, 900},
		Code(1): {0, 255},
	}
	if !reflect.DeepEqual(dev.set, want) {
		t.Errorf("適用内容が不正: %v want %v", dev.set, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dev := newFakeConfigurator(Code(0))
	err := Load(dev, filepath.Join(t.TempDir(), "missing.map"))

	var oerr *OpenError
	if !errors.As(err, &oerr) {
		t.Fatalf("OpenErrorではない: %v", err)
	}
	if dev.calls != 0 {
		t.Error("ファイルがないのに適用された")
	}
}
