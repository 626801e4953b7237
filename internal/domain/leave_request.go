package domain

import "time"

type RequestType string

const (
	RequestTypeWorkFromHome RequestType = "work_from_home"
	RequestTypeHoliday      RequestType = "holiday"
	RequestTypeHalfday      RequestType = "halfday"
	RequestTypeOther        RequestType = "other"
)

var requestTypeLabels = map[RequestType]string{
	RequestTypeWorkFromHome: "Work From Home",
	RequestTypeHoliday:      "Holiday",
	RequestTypeHalfday:      "Half Day",
	RequestTypeOther:        "Other",
}

// Label 返回请求类型对应的展示名称，前端的搜索框也会匹配这个名称
func (t RequestType) Label() string {
	return requestTypeLabels[t]
}

func (t RequestType) IsValid() bool {
	_, ok := requestTypeLabels[t]
	return ok
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDenied   RequestStatus = "denied"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusDenied:
		return true
	default:
		return false
	}
}

// LeaveRequest 中的 Name 和 Email 是提交申请时申请人信息的快照，
// 之后用户修改个人信息不会同步到已有的申请上
type LeaveRequest struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"userId"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Type      RequestType   `json:"type"`
	Reason    string        `json:"reason"`
	StartDate Date          `json:"startDate"`
	EndDate   Date          `json:"endDate"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	Version   int32         `json:"-"`
}
