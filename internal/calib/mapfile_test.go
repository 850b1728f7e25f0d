package calib

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriteFormat(t *testing.T) {
	var table AxisRangeTable
	table[0] = AxisRange{Present: true, Min: 50, Max: 900}
	table[5] = AxisRange{Present: true, Min: 0, Max: 255}

	var buf bytes.Buffer
	if err := Write(&buf, &table); err != nil {
		t.Fatalf("書き込みに失敗: %v", err)
	}

	want := "axis 0: min = 50, max = 900\naxis 5: min = 0, max = 255\n"
	if buf.String() != want {
		t.Fatalf("出力が不正:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	var table AxisRangeTable
	table[0] = AxisRange{Present: true, Min: 50, Max: 900}
	table[3] = AxisRange{Present: true, Min: 0, Max: 65535}
	table[11] = AxisRange{Present: true, Min: 100, Max: 100}

	var buf bytes.Buffer
	if err := Write(&buf, &table); err != nil {
		t.Fatalf("書き込みに失敗: %v", err)
	}

	got, errs := ReadFrom(&buf)
	if len(errs) != 0 {
		t.Fatalf("読み取りエラー: %v", errs)
	}
	if got != table {
		t.Fatalf("往復で一致しない:\ngot  %+v\nwant %+v", got, table)
	}
}

func TestReadFromIsBestEffortPerLine(t *testing.T) {
	input := strings.Join([]string{
		"axis 0: min = 10, max = 20",
		"this is not a mapping line",
		"axis 2: min = 30, max = 40",
	}, "\n")

	table, errs := ReadFrom(strings.NewReader(input))

	if len(errs) != 1 {
		t.Fatalf("エラー数が不正: %v", errs)
	}
	var perr *ParseError
	if !errors.As(errs[0], &perr) {
		t.Fatalf("ParseErrorではない: %v", errs[0])
	}
	if perr.Line != 2 {
		t.Errorf("エラー行が不正: %d", perr.Line)
	}

	// 解釈済みの行は残る
	if !table[0].Present || table[0].Min != 10 || table[0].Max != 20 {
		t.Errorf("軸0が失われた: %+v", table[0])
	}
	if !table[2].Present || table[2].Min != 30 || table[2].Max != 40 {
		t.Errorf("軸2が失われた: %+v", table[2])
	}
	if table[1].Present {
		t.Errorf("軸1が誤って登録された: %+v", table[1])
	}
}

func TestReadFromLastLineWins(t *testing.T) {
	input := "axis 4: min = 1, max = 2\naxis 4: min = 7, max = 8\n"

	table, errs := ReadFrom(strings.NewReader(input))
	if len(errs) != 0 {
		t.Fatalf("読み取りエラー: %v", errs)
	}
	if table[4].Min != 7 || table[4].Max != 8 {
		t.Fatalf("後の行が優先されていない: %+v", table[4])
	}
}

func TestReadFromRejectsOutOfRangeAxis(t *testing.T) {
	table, errs := ReadFrom(strings.NewReader("axis 12: min = 0, max = 1\n"))

	if len(errs) != 1 {
		t.Fatalf("エラー数が不正: %v", errs)
	}
	var perr *ParseError
	if !errors.As(errs[0], &perr) {
		t.Fatalf("ParseErrorではない: %v", errs[0])
	}
	for axis := range table {
		if table[axis].Present {
			t.Fatalf("範囲外の行がテーブルに入った: 軸%d", axis)
		}
	}
}

func TestReadMissingFileIsOpenError(t *testing.T) {
	_, _, err := Read("/nonexistent/axes.map")
	var oerr *OpenError
	if !errors.As(err, &oerr) {
		t.Fatalf("OpenErrorではない: %v", err)
	}
}
