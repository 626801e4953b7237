package utils

import (
	"testing"
	"time"

	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/domain"
)

func TestValidateLeaveRequestDates(t *testing.T) {
	start := domain.NewDate(2024, time.June, 10)

	// 单日申请合法
	if err := ValidateLeaveRequestDates(start, start); err != nil {
		t.Errorf("单日申请不应报错: %v", err)
	}

	end := domain.NewDate(2024, time.June, 12)
	if err := ValidateLeaveRequestDates(start, end); err != nil {
		t.Errorf("正常区间不应报错: %v", err)
	}

	// 结束早于开始
	if err := ValidateLeaveRequestDates(end, start); err == nil {
		t.Error("结束日期早于开始日期时应报错")
	}
}

func TestValidateLeaveRequestReason(t *testing.T) {
	if err := ValidateLeaveRequestReason("回家探亲"); err != nil {
		t.Errorf("正常理由不应报错: %v", err)
	}
	if err := ValidateLeaveRequestReason(""); err == nil {
		t.Error("空理由应报错")
	}
	if err := ValidateLeaveRequestReason("   \t  "); err == nil {
		t.Error("只有空白字符的理由应报错")
	}
}
