package report

import "errors"

var (
	// ErrInvalidRow возвращается, когда строка отчёта содержит некорректные данные
	ErrInvalidRow = errors.New("report.repository: invalid report row")
)
