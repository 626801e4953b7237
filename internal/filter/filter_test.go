package filter

import (
	"testing"
	"time"

	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/domain"
)

func newRequest(id int64, typ domain.RequestType, status domain.RequestStatus, reason, start, end string) *domain.LeaveRequest {
	startDate, err := domain.ParseDate(start)
	if err != nil {
		panic(err)
	}
	endDate, err := domain.ParseDate(end)
	if err != nil {
		panic(err)
	}

	return &domain.LeaveRequest{
		ID:        id,
		UserID:    1,
		Name:      "张伟",
		Email:     "zhangwei3@ecnc.test",
		Type:      typ,
		Reason:    reason,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
	}
}

func date(t *testing.T, s string) *domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("解析日期 %q 失败: %v", s, err)
	}
	return &d
}

func requestIDs(requests []*domain.LeaveRequest) []int64 {
	ids := make([]int64, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID)
	}
	return ids
}

func sampleRequests() []*domain.LeaveRequest {
	return []*domain.LeaveRequest{
		newRequest(1, domain.RequestTypeHoliday, domain.RequestStatusPending, "回家探亲", "2024-06-10", "2024-06-12"),
		newRequest(2, domain.RequestTypeWorkFromHome, domain.RequestStatusAccepted, "在家远程办公", "2024-06-03", "2024-06-03"),
		newRequest(3, domain.RequestTypeHalfday, domain.RequestStatusDenied, "下午外出办事", "2024-05-20", "2024-05-20"),
		newRequest(4, domain.RequestTypeOther, domain.RequestStatusAccepted, "个人事务", "2024-05-01", "2024-05-05"),
	}
}

func TestApplyNoFilterKeepsOrder(t *testing.T) {
	requests := sampleRequests()

	filtered := Apply(requests, &Options{Status: StatusAll, Type: TypeAll})
	if len(filtered) != len(requests) {
		t.Fatalf("期望保留 %d 条申请，实际为 %d 条", len(requests), len(filtered))
	}
	for i := range requests {
		if filtered[i] != requests[i] {
			t.Errorf("第 %d 条申请顺序改变，期望 ID %d，实际 ID %d", i, requests[i].ID, filtered[i].ID)
		}
	}
}

func TestApplyStatus(t *testing.T) {
	filtered := Apply(sampleRequests(), &Options{Status: "accepted"})
	if ids := requestIDs(filtered); len(ids) != 2 || ids[0] != 2 || ids[1] != 4 {
		t.Fatalf("期望保留申请 [2 4]，实际为 %v", ids)
	}
}

func TestApplyType(t *testing.T) {
	filtered := Apply(sampleRequests(), &Options{Type: "halfday"})
	if ids := requestIDs(filtered); len(ids) != 1 || ids[0] != 3 {
		t.Fatalf("期望保留申请 [3]，实际为 %v", ids)
	}
}

func TestApplySearch(t *testing.T) {
	requests := sampleRequests()

	// 匹配申请理由
	filtered := Apply(requests, &Options{Search: "探亲"})
	if ids := requestIDs(filtered); len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("期望按理由匹配到申请 [1]，实际为 %v", ids)
	}

	// 大小写不敏感地匹配类型的展示名称
	filtered = Apply(requests, &Options{Search: "work from"})
	if ids := requestIDs(filtered); len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("期望按类型名称匹配到申请 [2]，实际为 %v", ids)
	}

	// 普通视图不匹配申请人信息
	filtered = Apply(requests, &Options{Search: "zhangwei"})
	if len(filtered) != 0 {
		t.Fatalf("普通视图不应匹配邮箱，实际保留了 %v", requestIDs(filtered))
	}

	// 管理员视图额外匹配姓名和邮箱
	filtered = Apply(requests, &Options{Search: "zhangwei", MatchIdentity: true})
	if len(filtered) != len(requests) {
		t.Fatalf("管理员视图应按邮箱匹配所有申请，实际保留了 %v", requestIDs(filtered))
	}
}

func TestApplyDateRangeOverlap(t *testing.T) {
	request := newRequest(1, domain.RequestTypeHoliday, domain.RequestStatusPending, "回家探亲", "2024-01-01", "2024-01-10")
	requests := []*domain.LeaveRequest{request}

	cases := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"窗口完全在申请区间内", "2024-01-05", "2024-01-06", true},
		{"窗口与申请开始重叠", "2023-12-01", "2024-01-02", true},
		{"窗口与申请结束重叠", "2024-01-09", "2024-02-01", true},
		{"窗口在申请之后", "2024-02-01", "2024-03-01", false},
	}

	for _, tc := range cases {
		opts := &Options{
			DateFrom:  date(t, tc.from),
			DateTo:    date(t, tc.to),
			RangeMode: RangeOverlap,
		}
		filtered := Apply(requests, opts)
		if got := len(filtered) == 1; got != tc.want {
			t.Errorf("%s: 窗口 [%s, %s] 期望保留=%v，实际保留=%v", tc.name, tc.from, tc.to, tc.want, got)
		}
	}

	// 边界可以缺省
	filtered := Apply(requests, &Options{DateFrom: date(t, "2024-01-10"), RangeMode: RangeOverlap})
	if len(filtered) != 1 {
		t.Errorf("只设下界时应保留申请，实际保留了 %d 条", len(filtered))
	}
	filtered = Apply(requests, &Options{DateTo: date(t, "2023-12-31"), RangeMode: RangeOverlap})
	if len(filtered) != 0 {
		t.Errorf("窗口上界早于申请开始时应被过滤，实际保留了 %d 条", len(filtered))
	}
}

func TestApplyDateRangeContain(t *testing.T) {
	requests := sampleRequests()

	opts := &Options{
		DateFrom:  date(t, "2024-06-01"),
		DateTo:    date(t, "2024-06-30"),
		RangeMode: RangeContain,
	}
	filtered := Apply(requests, opts)
	if ids := requestIDs(filtered); len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("期望保留完全落在六月内的申请 [1 2]，实际为 %v", ids)
	}

	// 部分重叠的申请在包含判定下应被过滤
	opts = &Options{
		DateFrom:  date(t, "2024-06-11"),
		DateTo:    date(t, "2024-06-30"),
		RangeMode: RangeContain,
	}
	if filtered := Apply(requests, opts); len(filtered) != 0 {
		t.Fatalf("部分重叠的申请不应被保留，实际保留了 %v", requestIDs(filtered))
	}
}

func TestSummarize(t *testing.T) {
	requests := sampleRequests()

	// 不带过滤时：计数基于全量，天数累加所有已通过申请
	summary := Summarize(requests, requests)
	if summary.TotalCount != 4 || summary.PendingCount != 1 || summary.AcceptedCount != 2 || summary.DeniedCount != 1 {
		t.Fatalf("全量统计计数错误: %+v", summary)
	}
	// 申请 2 为单日（1 天），申请 4 为 5 天
	if summary.ApprovedDays != 6 {
		t.Fatalf("期望 ApprovedDays 为 6，实际为 %d", summary.ApprovedDays)
	}

	// 过滤后：计数仍基于全量，天数只累加过滤结果中的已通过申请
	filtered := Apply(requests, &Options{
		DateFrom:  date(t, "2024-06-01"),
		DateTo:    date(t, "2024-06-30"),
		RangeMode: RangeOverlap,
	})
	summary = Summarize(requests, filtered)
	if summary.TotalCount != 4 || summary.PendingCount != 1 || summary.AcceptedCount != 2 || summary.DeniedCount != 1 {
		t.Fatalf("过滤后计数口径应保持全量: %+v", summary)
	}
	if summary.ApprovedDays != 1 {
		t.Fatalf("期望过滤后 ApprovedDays 为 1，实际为 %d", summary.ApprovedDays)
	}

	// 过滤结果中没有已通过的申请时天数为 0
	filtered = Apply(requests, &Options{Status: "pending"})
	if summary := Summarize(requests, filtered); summary.ApprovedDays != 0 {
		t.Fatalf("期望 ApprovedDays 为 0，实际为 %d", summary.ApprovedDays)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	requests := sampleRequests()
	before := make([]*domain.LeaveRequest, len(requests))
	copy(before, requests)

	_ = Apply(requests, &Options{Status: "accepted", DateFrom: &domain.Date{Time: time.Now()}})

	for i := range before {
		if requests[i] != before[i] {
			t.Fatalf("过滤不应修改输入切片")
		}
	}
}
