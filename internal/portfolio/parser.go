package portfolio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// Row Validator / Parser
// =============================================================================

// ErrInvalidData marks a batch rejected because of fatal parse errors
var ErrInvalidData = errors.New("invalid portfolio data")

// minFields 데이터 행의 최소 컬럼 수
// 순서 고정: date, benchmarkA, benchmarkB, benchmarkC, shares, shareValue,
// gainLoss, dailyGain, marketValue, principal
const minFields = 10

// Parse turns a raw UTF-8 CSV blob into typed records
// ⭐ SSOT: 행 단위 오류는 배치를 중단시키지 않고 수집만 한다
//   - 1행(제목), 2행(헤더)은 검증 없이 건너뜀
//   - Errors: 구조적 결함 (컬럼 부족, 날짜 파싱 실패, 데이터 없음)
//   - Warnings: 복구 가능한 이상 (빈 행, 숫자 기본값 처리, 음수 주식 수, 시간순 아님)
func Parse(raw string) *ParseOutcome {
	outcome := &ParseOutcome{
		Records:  make([]Record, 0),
		Errors:   make([]string, 0),
		Warnings: make([]string, 0),
	}

	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n")), "\n")
	if len(lines) < 3 {
		outcome.Errors = append(outcome.Errors,
			"insufficient rows: file must have a title line, a header line, and at least one data row")
		return outcome
	}

	// 1행 = 제목, 2행 = 헤더: 무조건 건너뜀
	for i := 2; i < len(lines); i++ {
		rowNum := i + 1
		line := lines[i]

		if strings.TrimSpace(line) == "" {
			outcome.Warnings = append(outcome.Warnings, fmt.Sprintf("row %d: empty row skipped", rowNum))
			continue
		}

		fields, err := splitRow(line)
		if err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d: malformed row: %v", rowNum, err))
			continue
		}

		if allEmpty(fields) {
			outcome.Warnings = append(outcome.Warnings, fmt.Sprintf("row %d: empty row skipped", rowNum))
			continue
		}

		if len(fields) < minFields {
			outcome.Errors = append(outcome.Errors,
				fmt.Sprintf("row %d: expected at least %d columns, got %d", rowNum, minFields, len(fields)))
			continue
		}

		record, ok := parseRow(rowNum, fields, outcome)
		if !ok {
			continue
		}

		outcome.Records = append(outcome.Records, record)
	}

	// 유효한 행이 하나도 없는데 설명할 오류도 없으면 배치 차원의 오류를 만든다
	if len(outcome.Records) == 0 && len(outcome.Errors) == 0 {
		outcome.Errors = append(outcome.Errors, "no valid data rows found")
	}

	// 시간순 검사: 행 단위가 아니라 배치당 경고 1개
	// ⭐ 정렬하거나 거부하지 않음 — 하위 엔진은 오름차순을 가정한다
	for i := 1; i < len(outcome.Records); i++ {
		if outcome.Records[i].Date < outcome.Records[i-1].Date {
			outcome.Warnings = append(outcome.Warnings, "records are not in chronological order")
			break
		}
	}

	return outcome
}

// Load is the all-or-nothing convenience entry point
// Errors가 비어 있을 때만 레코드를 반환하고, 아니면 메시지를 합쳐 실패시킨다
func Load(raw string) ([]Record, error) {
	outcome := Parse(raw)
	if err := outcome.Err(); err != nil {
		return nil, err
	}
	return outcome.Records, nil
}

// Err converts a non-empty error list into a single combined failure
func (o *ParseOutcome) Err() error {
	if len(o.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(o.Errors, "; "))
}

// parseRow converts one field slice into a Record, collecting warnings
func parseRow(rowNum int, fields []string, outcome *ParseOutcome) (Record, bool) {
	date, err := NormalizeDate(fields[0])
	if err != nil {
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
		return Record{}, false
	}

	// shareValue는 반드시 양수: 0 처리 대상이 아니라 행 자체를 건너뜀
	shareValue, ok := parseNumber(fields[5])
	if !ok || shareValue <= 0 {
		outcome.Warnings = append(outcome.Warnings,
			fmt.Sprintf("row %d: share value must be positive, row skipped", rowNum))
		return Record{}, false
	}

	// 나머지 숫자 필드: 파싱 실패 시 0으로 대체하고 경고만 남김
	numeric := func(idx int, name string) float64 {
		v, ok := parseNumber(fields[idx])
		if !ok {
			outcome.Warnings = append(outcome.Warnings,
				fmt.Sprintf("row %d: invalid %s value %q, defaulted to 0", rowNum, name, fields[idx]))
			return 0
		}
		return v
	}

	record := Record{
		Date:        date,
		BenchmarkA:  numeric(1, "benchmarkA"),
		BenchmarkB:  numeric(2, "benchmarkB"),
		BenchmarkC:  numeric(3, "benchmarkC"),
		Shares:      numeric(4, "shares"),
		ShareValue:  shareValue,
		GainLoss:    numeric(6, "gainLoss"),
		DailyGain:   numeric(7, "dailyGain"),
		MarketValue: numeric(8, "marketValue"),
		Principal:   numeric(9, "principal"),
	}

	if record.Shares < 0 {
		outcome.Warnings = append(outcome.Warnings, fmt.Sprintf("row %d: negative shares count", rowNum))
	}

	return record, true
}

// splitRow splits one CSV line, honoring quoted fields
func splitRow(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	fields, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	return fields, err
}

// allEmpty reports whether every field is blank after trimming
func allEmpty(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseNumber parses a numeric field using the accounting convention
//   - "(123.45)" → -123.45
//   - "1,234.56" → 1234.56 (쉼표와 둘레 공백 제거)
//   - 파싱 불가면 (0, false)
func parseNumber(field string) (float64, bool) {
	clean := strings.TrimSpace(field)

	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = clean[1 : len(clean)-1]
	}

	clean = strings.TrimSpace(strings.ReplaceAll(clean, ",", ""))
	if clean == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, false
	}

	v := d.InexactFloat64()
	if negative {
		v = -v
	}
	return v, true
}
