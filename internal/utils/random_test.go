package utils

import (
	"testing"

	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/domain"
)

func TestGenerateRandomUser(t *testing.T) {
	user, err := GenerateRandomUser("test-password", "ecnc.test")
	if err != nil {
		t.Fatalf("生成随机用户失败: %v", err)
	}

	if user.Username == "" || user.FullName == "" {
		t.Errorf("随机用户的用户名和姓名不应为空: %+v", user)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("随机用户的角色应为 USER，实际为 %s", user.Role)
	}
	if user.PasswordHash == "" || user.PasswordHash == "test-password" {
		t.Error("随机用户的密码应当被哈希")
	}
}

func TestGenerateRandomLeaveRequest(t *testing.T) {
	user := &domain.User{ID: 42, FullName: "张伟", Email: "zhangwei3@ecnc.test"}

	for i := 0; i < 50; i++ {
		req := GenerateRandomLeaveRequest(user)

		if req.UserID != user.ID || req.Name != user.FullName || req.Email != user.Email {
			t.Fatalf("随机申请应快照申请人信息: %+v", req)
		}
		if !req.Type.IsValid() {
			t.Fatalf("随机申请的类型非法: %s", req.Type)
		}
		if !req.Status.IsValid() {
			t.Fatalf("随机申请的状态非法: %s", req.Status)
		}
		if req.Reason == "" {
			t.Fatal("随机申请的理由不应为空")
		}
		if req.EndDate.Before(req.StartDate.Time) {
			t.Fatalf("随机申请的结束日期不能早于开始日期: %s ~ %s", req.StartDate, req.EndDate)
		}
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	if len(password) != 12 {
		t.Fatalf("期望密码长度为 12，实际为 %d", len(password))
	}
}

func TestGenerateRandomOTP(t *testing.T) {
	otp := GenerateRandomOTP()
	if len(otp) != 6 {
		t.Fatalf("期望验证码长度为 6，实际为 %d", len(otp))
	}
	for _, c := range otp {
		if c < '0' || c > '9' {
			t.Fatalf("验证码应只包含数字: %s", otp)
		}
	}
}
