package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/filter"
)

func parseOptions(t *testing.T, url string, matchIdentity bool) (*filter.Options, error) {
	t.Helper()
	h := &Handler{}
	return h.parseFilterOptions(httptest.NewRequest("GET", url, nil), matchIdentity)
}

func TestParseFilterOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(t, "/leave-requests", true)
	if err != nil {
		t.Fatalf("无参数时不应报错: %v", err)
	}
	if opts.RangeMode != filter.RangeOverlap {
		t.Error("日期窗口默认应采用交集判定")
	}
	if opts.DateFrom != nil || opts.DateTo != nil {
		t.Error("未传日期参数时窗口边界应为空")
	}
	if !opts.MatchIdentity {
		t.Error("管理员视图应匹配申请人信息")
	}
}

func TestParseFilterOptionsRangeMode(t *testing.T) {
	opts, err := parseOptions(t, "/leave-requests?rangeMode=contain", false)
	if err != nil {
		t.Fatalf("rangeMode=contain 不应报错: %v", err)
	}
	if opts.RangeMode != filter.RangeContain {
		t.Error("rangeMode=contain 应切换为包含判定")
	}

	opts, err = parseOptions(t, "/leave-requests?rangeMode=overlap", false)
	if err != nil {
		t.Fatalf("rangeMode=overlap 不应报错: %v", err)
	}
	if opts.RangeMode != filter.RangeOverlap {
		t.Error("rangeMode=overlap 应采用交集判定")
	}

	if _, err := parseOptions(t, "/leave-requests?rangeMode=between", false); err == nil {
		t.Error("非法的 rangeMode 应报错")
	}
}

func TestParseFilterOptionsValidation(t *testing.T) {
	if _, err := parseOptions(t, "/leave-requests?status=cancelled", false); err == nil {
		t.Error("非法的申请状态应报错")
	}
	if _, err := parseOptions(t, "/leave-requests?type=vacation", false); err == nil {
		t.Error("非法的申请类型应报错")
	}
	if _, err := parseOptions(t, "/leave-requests?dateFrom=2024/06/10", false); err == nil {
		t.Error("非法的日期格式应报错")
	}

	opts, err := parseOptions(t, "/leave-requests?status=all&type=all&dateFrom=2024-06-01&dateTo=2024-06-30", false)
	if err != nil {
		t.Fatalf("合法参数不应报错: %v", err)
	}
	if opts.DateFrom == nil || opts.DateFrom.String() != "2024-06-01" {
		t.Errorf("窗口下界解析错误: %v", opts.DateFrom)
	}
	if opts.DateTo == nil || opts.DateTo.String() != "2024-06-30" {
		t.Errorf("窗口上界解析错误: %v", opts.DateTo)
	}
}
