package seed

import (
	"log/slog"

	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/domain"
	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/repository"
	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/utils"
)

// SeedLeaveRequests 为数据库中的每个用户插入 n 条随机请假申请
func SeedLeaveRequests(r *repository.Repository, n int) {
	users, err := r.GetAllUsers()
	if err != nil {
		slog.Error("无法获取用户列表", "error", err)
		return
	}

	cnt := 0
	for _, user := range users {
		for i := 0; i < n; i++ {
			req := utils.GenerateRandomLeaveRequest(user)

			// 插入时状态一定是 pending，非 pending 的状态需要再走一次审批更新
			status := req.Status
			if err := r.CreateLeaveRequest(req); err != nil {
				slog.Error("无法插入请假申请", "error", err)
				continue
			}

			if status != domain.RequestStatusPending {
				req.Status = status
				if err := r.UpdateLeaveRequestStatus(req); err != nil {
					slog.Error("无法更新申请状态", "error", err)
					continue
				}
			}

			cnt++
		}
	}

	slog.Info("插入请假申请成功", slog.Int("count", cnt))
}
