package utils

import (
	"errors"
	"strings"

	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/domain"
)

// ValidateLeaveRequestDates 检查申请的日期区间是否合法，允许单日申请（开始日期等于结束日期）
func ValidateLeaveRequestDates(start, end domain.Date) error {
	if end.Before(start.Time) {
		return errors.New("结束日期不能早于开始日期")
	}
	return nil
}

func ValidateLeaveRequestReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errors.New("申请理由不能为空")
	}
	return nil
}
