package calib

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// マッピングファイルの1行の書式。軸ID・最小値・最大値を10進で持つ
const (
	lineFormat = "axis %d: min = %d, max = %d\n"
	scanFormat = "axis %d: min = %d, max = %d"
)

// Write はテーブル中の対象軸を軸IDの昇順で1行ずつ書き出す
func Write(w io.Writer, t *AxisRangeTable) error {
	for axis := range t {
		r := &t[axis]
		if !r.Present {
			continue
		}
		if _, err := fmt.Fprintf(w, lineFormat, axis, r.Min, r.Max); err != nil {
			return &WriteError{Err: err}
		}
	}
	return nil
}

// WriteFile はマッピングファイルを作り直してテーブルを書き出す
func WriteFile(path string, t *AxisRangeTable) error {
	f, err := os.Create(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	if err := Write(f, t); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// ReadFrom は1行ずつマッピングを読み取る。解釈できない行は
// ParseErrorとして集めて続行し、解釈済みの行は結果に残る。
// 同じ軸IDの行が複数ある場合は後の行が優先される
func ReadFrom(r io.Reader) (AxisRangeTable, []error) {
	var table AxisRangeTable
	var errs []error

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()

		var axis int
		var min, max uint32
		n, err := fmt.Sscanf(line, scanFormat, &axis, &min, &max)
		if err != nil || n < 3 {
			if err == nil {
				err = fmt.Errorf("項目が不足しています")
			}
			errs = append(errs, &ParseError{Line: lineNo, Text: line, Err: err})
			continue
		}
		if axis < 0 || axis >= len(table) {
			errs = append(errs, &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("軸ID %d は範囲外です", axis)})
			continue
		}

		table[axis] = AxisRange{Present: true, Min: min, Max: max}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}

	return table, errs
}

// Read はマッピングファイルを読み取る。ファイルが開けない場合のみ
// エラーを返し、行単位の失敗は第2戻り値で報告する
func Read(path string) (AxisRangeTable, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return AxisRangeTable{}, nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	table, errs := ReadFrom(f)
	return table, errs, nil
}
