package portfolio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat is returned for date tokens outside the two accepted shapes
var ErrInvalidDateFormat = errors.New("invalid date format")

// NormalizeDate parses a date token into the canonical YYYY-MM-DD form
// 허용 포맷은 정확히 두 가지:
//   - DD/MM/YYYY (day 1-31, month 1-12, year 1900-2100, 실제 달력 날짜여야 함)
//   - YYYY-MM-DD (파싱으로 검증 후 그대로 통과)
//
// 타임존 변환은 하지 않음 (naive calendar date)
func NormalizeDate(token string) (string, error) {
	token = strings.TrimSpace(token)

	if strings.Count(token, "/") == 2 {
		return normalizeSlashDate(token)
	}

	// YYYY-MM-DD는 구성 가능 여부만 확인하고 통과
	if _, err := time.Parse("2006-01-02", token); err == nil {
		return token, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, token)
}

// normalizeSlashDate handles the DD/MM/YYYY shape
func normalizeSlashDate(token string) (string, error) {
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, token)
	}

	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, token)
	}

	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1900 || year > 2100 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, token)
	}

	// 달력 왕복 검증: 30/02 같은 불가능한 조합은 time.Date가 넘겨버리므로
	// 재구성한 날짜가 입력과 같은지 확인한다 (윤년은 자연스럽게 처리됨)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", fmt.Errorf("%w: %q is not a real calendar date", ErrInvalidDateFormat, token)
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}
