// Package filter 提供对请假申请快照的纯函数过滤与统计，
// 不持有任何状态，handler 在每次查询时直接调用
package filter

import (
	"strings"

	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/domain"
)

// StatusAll 和 TypeAll 表示不按对应字段过滤
const (
	StatusAll = "all"
	TypeAll   = "all"
)

type RangeMode int

const (
	// RangeOverlap 保留与查询窗口有交集的申请
	RangeOverlap RangeMode = iota
	// RangeContain 只保留完全落在查询窗口内的申请
	RangeContain
)

type Options struct {
	Status string
	Type   string
	Search string
	// MatchIdentity 为 true 时（管理员视图），搜索还会匹配申请人的姓名和邮箱
	MatchIdentity bool
	DateFrom      *domain.Date
	DateTo        *domain.Date
	RangeMode     RangeMode
}

func matchStatus(req *domain.LeaveRequest, status string) bool {
	if status == "" || status == StatusAll {
		return true
	}
	return req.Status == domain.RequestStatus(status)
}

func matchType(req *domain.LeaveRequest, typ string) bool {
	if typ == "" || typ == TypeAll {
		return true
	}
	return req.Type == domain.RequestType(typ)
}

func matchSearch(req *domain.LeaveRequest, search string, matchIdentity bool) bool {
	if search == "" {
		return true
	}

	search = strings.ToLower(search)
	if strings.Contains(strings.ToLower(req.Reason), search) {
		return true
	}
	if strings.Contains(strings.ToLower(req.Type.Label()), search) {
		return true
	}
	if matchIdentity {
		if strings.Contains(strings.ToLower(req.Name), search) {
			return true
		}
		if strings.Contains(strings.ToLower(req.Email), search) {
			return true
		}
	}

	return false
}

func matchDateRange(req *domain.LeaveRequest, opts *Options) bool {
	switch opts.RangeMode {
	case RangeContain:
		if opts.DateFrom != nil && req.StartDate.Before(opts.DateFrom.Time) {
			return false
		}
		if opts.DateTo != nil && req.EndDate.After(opts.DateTo.Time) {
			return false
		}
	default:
		// 交集判定：startDate <= dateTo 且 endDate >= dateFrom，两个边界都可以缺省
		if opts.DateTo != nil && req.StartDate.After(opts.DateTo.Time) {
			return false
		}
		if opts.DateFrom != nil && req.EndDate.Before(opts.DateFrom.Time) {
			return false
		}
	}

	return true
}

func match(req *domain.LeaveRequest, opts *Options) bool {
	return matchStatus(req, opts.Status) &&
		matchType(req, opts.Type) &&
		matchSearch(req, opts.Search, opts.MatchIdentity) &&
		matchDateRange(req, opts)
}

// Apply 返回满足过滤条件的申请，保持输入顺序，不会修改输入切片
func Apply(requests []*domain.LeaveRequest, opts *Options) []*domain.LeaveRequest {
	filtered := make([]*domain.LeaveRequest, 0, len(requests))
	for _, req := range requests {
		if match(req, opts) {
			filtered = append(filtered, req)
		}
	}
	return filtered
}

type Summary struct {
	TotalCount    int `json:"totalCount"`
	PendingCount  int `json:"pendingCount"`
	AcceptedCount int `json:"acceptedCount"`
	DeniedCount   int `json:"deniedCount"`
	ApprovedDays  int `json:"approvedDays"`
}

// Summarize 统计申请数据。注意口径：四个计数基于全量集合，
// 而 ApprovedDays 只累加过滤结果中已通过申请的天数
func Summarize(all, filtered []*domain.LeaveRequest) Summary {
	summary := Summary{
		TotalCount: len(all),
	}

	for _, req := range all {
		switch req.Status {
		case domain.RequestStatusPending:
			summary.PendingCount++
		case domain.RequestStatusAccepted:
			summary.AcceptedCount++
		case domain.RequestStatusDenied:
			summary.DeniedCount++
		}
	}

	for _, req := range filtered {
		if req.Status == domain.RequestStatusAccepted {
			summary.ApprovedDays += domain.DurationDays(req.StartDate, req.EndDate)
		}
	}

	return summary
}
