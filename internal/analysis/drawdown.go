package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/MikeZhang69/fund-growth-insight/internal/portfolio"
)

// noiseThresholdPercent 고점 대비 0.1% 이하 하락은 노이즈로 무시
const noiseThresholdPercent = 0.1

// drawdownState 단일 순방향 패스용 상태 머신
// 재귀나 숨은 이터레이터 없이 명시적 필드만 갱신한다
type drawdownState struct {
	peakValue  float64
	peakDate   string
	inDrawdown bool

	// 열린 에피소드 (inDrawdown일 때만 유효)
	startDate      string // 에피소드를 연 고점의 날짜
	episodePeak    float64
	troughValue    float64
	troughDate     string
	deepestDecline float64 // 이 에피소드의 최대 하락률 (%)
}

// ExtractDrawdowns segments the series into peak-to-trough-to-recovery episodes
//
// 전이 규칙:
//   - 현재 고점을 넘어서면 회복: 열린 에피소드가 있으면 직전 고점을 시작으로,
//     최저점을 trough로, 현재 날짜를 회복일로 하여 닫는다
//   - 고점 이하이고 하락률이 0.1%를 넘으면 에피소드를 열거나,
//     이미 열려 있으면 더 깊어졌을 때만 trough를 갱신한다 (첫 점이 아니라 최저점 유지)
//   - 시퀀스 끝에 열린 에피소드가 남으면 회복일 없는 "현재 드로다운"으로 내보낸다
//     (전체 목록에도 포함)
//
// 레코드가 2개 미만이면 0 값/빈 목록 센티널을 반환한다.
func ExtractDrawdowns(records []portfolio.Record) DrawdownAnalysis {
	analysis := DrawdownAnalysis{
		Drawdowns: make([]DrawdownPeriod, 0),
	}
	if len(records) < 2 {
		return analysis
	}

	state := drawdownState{
		peakValue: records[0].ShareValue,
		peakDate:  records[0].Date,
	}

	for _, r := range records[1:] {
		if r.ShareValue > state.peakValue {
			// 새 고점 = 회복
			if state.inDrawdown {
				analysis.Drawdowns = append(analysis.Drawdowns, state.close(r.Date))
				state.inDrawdown = false
			}
			state.peakValue = r.ShareValue
			state.peakDate = r.Date
			continue
		}

		decline := (state.peakValue - r.ShareValue) / state.peakValue * 100
		if decline <= noiseThresholdPercent {
			continue
		}

		if !state.inDrawdown {
			state.inDrawdown = true
			state.startDate = state.peakDate
			state.episodePeak = state.peakValue
			state.troughValue = r.ShareValue
			state.troughDate = r.Date
			state.deepestDecline = decline
		} else if decline > state.deepestDecline {
			state.deepestDecline = decline
			state.troughValue = r.ShareValue
			state.troughDate = r.Date
		}
	}

	// 회복되지 않은 채 끝난 에피소드 = 현재 드로다운
	if state.inDrawdown {
		current := state.open()
		analysis.Drawdowns = append(analysis.Drawdowns, current)
		analysis.Current = &current
	}

	finalizeAggregates(&analysis)
	return analysis
}

// close emits a completed episode recovered at recoveryDate
func (s *drawdownState) close(recoveryDate string) DrawdownPeriod {
	return DrawdownPeriod{
		StartDate:       s.startDate,
		EndDate:         s.troughDate,
		RecoveryDate:    recoveryDate,
		PeakValue:       s.episodePeak,
		TroughValue:     s.troughValue,
		DrawdownPercent: round2(s.deepestDecline),
		DurationDays:    daysBetween(s.startDate, s.troughDate),
		RecoveryDays:    daysBetween(s.troughDate, recoveryDate),
		Recovered:       true,
	}
}

// open emits the still-open episode (no recovery observed)
func (s *drawdownState) open() DrawdownPeriod {
	return DrawdownPeriod{
		StartDate:       s.startDate,
		EndDate:         s.troughDate,
		PeakValue:       s.episodePeak,
		TroughValue:     s.troughValue,
		DrawdownPercent: round2(s.deepestDecline),
		DurationDays:    daysBetween(s.startDate, s.troughDate),
	}
}

// finalizeAggregates sorts for display and computes the aggregate figures
func finalizeAggregates(analysis *DrawdownAnalysis) {
	if len(analysis.Drawdowns) == 0 {
		// 명시적 0 값 센티널 유지
		return
	}

	// 표시 정렬: 깊은 순, 동률이면 먼저 나온 에피소드 우선
	sort.SliceStable(analysis.Drawdowns, func(i, j int) bool {
		return analysis.Drawdowns[i].DrawdownPercent > analysis.Drawdowns[j].DrawdownPercent
	})

	analysis.MaxDrawdown = analysis.Drawdowns[0]

	var sumDrawdown float64
	var sumRecovery, recoveredCount int
	for _, d := range analysis.Drawdowns {
		sumDrawdown += d.DrawdownPercent
		if d.Recovered {
			sumRecovery += d.RecoveryDays
			recoveredCount++
		}
	}

	analysis.AverageDrawdown = round2(sumDrawdown / float64(len(analysis.Drawdowns)))

	// 평균 회복 기간은 회복된 에피소드만 대상 (열린 에피소드는 0이 아니라 제외)
	if recoveredCount > 0 {
		analysis.AverageRecoveryDays = round2(float64(sumRecovery) / float64(recoveredCount))
	}
}

// daysBetween returns ceil(calendar days between two canonical dates)
func daysBetween(from, to string) int {
	a, err1 := time.Parse("2006-01-02", from)
	b, err2 := time.Parse("2006-01-02", to)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(math.Ceil(b.Sub(a).Hours() / 24))
}
