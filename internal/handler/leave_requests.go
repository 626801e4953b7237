package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/domain"
	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/filter"
	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/utils"
)

// publishMailMessage 将邮件发送到消息队列
func (h *Handler) publishMailMessage(mailMessage domain.MailMessage) error {
	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}

// parseFilterOptions 从查询参数中解析过滤条件，
// 日期窗口默认采用交集判定，可以通过 rangeMode=contain 切换为包含判定
func (h *Handler) parseFilterOptions(r *http.Request, matchIdentity bool) (*filter.Options, error) {
	query := r.URL.Query()

	opts := &filter.Options{
		Status:        query.Get("status"),
		Type:          query.Get("type"),
		Search:        query.Get("search"),
		MatchIdentity: matchIdentity,
		RangeMode:     filter.RangeOverlap,
	}

	switch query.Get("rangeMode") {
	case "", "overlap":
	case "contain":
		opts.RangeMode = filter.RangeContain
	default:
		return nil, errors.New("无效的日期窗口判定方式")
	}

	if opts.Status != "" && opts.Status != filter.StatusAll && !domain.RequestStatus(opts.Status).IsValid() {
		return nil, errors.New("无效的申请状态")
	}
	if opts.Type != "" && opts.Type != filter.TypeAll && !domain.RequestType(opts.Type).IsValid() {
		return nil, errors.New("无效的申请类型")
	}

	if dateFrom := query.Get("dateFrom"); dateFrom != "" {
		d, err := domain.ParseDate(dateFrom)
		if err != nil {
			return nil, errors.New("开始日期格式错误")
		}
		opts.DateFrom = &d
	}
	if dateTo := query.Get("dateTo"); dateTo != "" {
		d, err := domain.ParseDate(dateTo)
		if err != nil {
			return nil, errors.New("结束日期格式错误")
		}
		opts.DateTo = &d
	}

	return opts, nil
}

func (h *Handler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Type      string `json:"type" validate:"required,oneof=work_from_home holiday halfday other"`
		Reason    string `json:"reason" validate:"required"`
		StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
		EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateLeaveRequestReason(req.Reason); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		h.badRequest(w, r, errors.New("开始日期格式错误"))
		return
	}
	endDate, err := domain.ParseDate(req.EndDate)
	if err != nil {
		h.badRequest(w, r, errors.New("结束日期格式错误"))
		return
	}
	if err := utils.ValidateLeaveRequestDates(startDate, endDate); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 申请人信息取自登录态而不是请求体，姓名和邮箱在此时刻做快照
	leaveRequest := &domain.LeaveRequest{
		UserID:    myInfo.ID,
		Name:      myInfo.FullName,
		Email:     myInfo.Email,
		Type:      domain.RequestType(req.Type),
		Reason:    req.Reason,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := h.repository.CreateLeaveRequest(leaveRequest); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "leave_requests_user_id_fkey":
			h.errorResponse(w, r, "用户不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 通知管理员有新的申请。通知只是尽力而为，失败不影响申请本身的创建
	for _, recipient := range h.config.Notification.Recipients {
		mailMessage := domain.MailMessage{
			Type: "new_request",
			To:   recipient,
			Data: domain.NewRequestMailData{
				Name:      leaveRequest.Name,
				TypeLabel: leaveRequest.Type.Label(),
				Reason:    leaveRequest.Reason,
				StartDate: leaveRequest.StartDate.String(),
				EndDate:   leaveRequest.EndDate.String(),
			},
		}
		if err := h.publishMailMessage(mailMessage); err != nil {
			slog.Warn("新申请通知邮件发送失败", "recipient", recipient, "error", err)
		}
	}

	h.successResponse(w, r, "提交申请成功", leaveRequest)
}

func (h *Handler) GetMyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	opts, err := h.parseFilterOptions(r, false)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	requests, err := h.repository.GetLeaveRequestsByUserID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取申请列表成功", filter.Apply(requests, opts))
}

func (h *Handler) GetAllLeaveRequests(w http.ResponseWriter, r *http.Request) {
	opts, err := h.parseFilterOptions(r, true)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	requests, err := h.repository.GetAllLeaveRequests()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取申请列表成功", filter.Apply(requests, opts))
}

func (h *Handler) GetMyLeaveRequestsSummary(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	opts, err := h.parseFilterOptions(r, false)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	requests, err := h.repository.GetLeaveRequestsByUserID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	summary := filter.Summarize(requests, filter.Apply(requests, opts))
	h.successResponse(w, r, "获取申请统计成功", summary)
}

func (h *Handler) GetLeaveRequestsSummary(w http.ResponseWriter, r *http.Request) {
	opts, err := h.parseFilterOptions(r, true)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	requests, err := h.repository.GetAllLeaveRequests()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	summary := filter.Summarize(requests, filter.Apply(requests, opts))
	h.successResponse(w, r, "获取申请统计成功", summary)
}

func (h *Handler) GetLeaveRequest(w http.ResponseWriter, r *http.Request) {
	leaveRequest := r.Context().Value(LeaveRequestCtx).(*domain.LeaveRequest)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	// 普通用户只能查看自己的申请
	if myInfo.Role != domain.RoleAdmin && leaveRequest.UserID != myInfo.ID {
		h.errorResponse(w, r, "权限不足")
		return
	}

	h.successResponse(w, r, "获取申请成功", leaveRequest)
}

func (h *Handler) UpdateLeaveRequestStatus(w http.ResponseWriter, r *http.Request) {
	leaveRequest := r.Context().Value(LeaveRequestCtx).(*domain.LeaveRequest)

	var req struct {
		Status string `json:"status" validate:"required,oneof=pending accepted denied"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 状态之间可以任意流转，已拒绝的申请也允许重新通过
	leaveRequest.Status = domain.RequestStatus(req.Status)

	if err := h.repository.UpdateLeaveRequestStatus(leaveRequest); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新申请状态失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 通知申请人审批结果，同样是尽力而为
	mailMessage := domain.MailMessage{
		Type: "request_decided",
		To:   leaveRequest.Email,
		Data: domain.RequestDecidedMailData{
			Name:      leaveRequest.Name,
			TypeLabel: leaveRequest.Type.Label(),
			StartDate: leaveRequest.StartDate.String(),
			EndDate:   leaveRequest.EndDate.String(),
			Status:    string(leaveRequest.Status),
		},
	}
	if err := h.publishMailMessage(mailMessage); err != nil {
		slog.Warn("审批结果通知邮件发送失败", "requestID", leaveRequest.ID, "error", err)
	}

	h.successResponse(w, r, "更新申请状态成功", leaveRequest)
}

func (h *Handler) DeleteLeaveRequest(w http.ResponseWriter, r *http.Request) {
	leaveRequest := r.Context().Value(LeaveRequestCtx).(*domain.LeaveRequest)

	if err := h.repository.DeleteLeaveRequest(leaveRequest.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "请假申请不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除申请成功", nil)
}
