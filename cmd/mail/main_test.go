package main

import (
	"bytes"
	"encoding/json"
	"html/template"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/domain"
)

// renderMail 按 handler 的方式序列化邮件消息，再按 worker 的方式反序列化并渲染模板，
// 覆盖从消息队列发布到邮件正文生成的完整链路
func renderMail(t *testing.T, mailMessage domain.MailMessage) string {
	t.Helper()

	body, err := json.Marshal(mailMessage)
	if err != nil {
		t.Fatalf("序列化邮件消息失败: %v", err)
	}

	received := domain.MailMessage{}
	if err := json.Unmarshal(body, &received); err != nil {
		t.Fatalf("反序列化邮件消息失败: %v", err)
	}

	kind, ok := mailKinds[received.Type]
	if !ok {
		t.Fatalf("不支持的邮件类型: %s", received.Type)
	}

	tmpl, err := template.ParseFiles(filepath.Join("../..", kind.TemplatePath))
	if err != nil {
		t.Fatalf("解析模板失败: %v", err)
	}

	buf := bytes.Buffer{}
	if err := tmpl.Execute(&buf, received.Data); err != nil {
		t.Fatalf("渲染模板失败: %v", err)
	}

	return buf.String()
}

func assertContainsAll(t *testing.T, rendered string, wants []string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(rendered, want) {
			t.Errorf("邮件正文中缺少 %q:\n%s", want, rendered)
		}
	}
}

func TestRenderNewRequestMail(t *testing.T) {
	rendered := renderMail(t, domain.MailMessage{
		Type: "new_request",
		To:   "admin@ecnc.test",
		Data: domain.NewRequestMailData{
			Name:      "张伟",
			TypeLabel: "Holiday",
			Reason:    "回家探亲",
			StartDate: "2024-06-10",
			EndDate:   "2024-06-12",
		},
	})

	assertContainsAll(t, rendered, []string{"张伟", "Holiday", "回家探亲", "2024-06-10", "2024-06-12"})
}

func TestRenderRequestDecidedMail(t *testing.T) {
	rendered := renderMail(t, domain.MailMessage{
		Type: "request_decided",
		To:   "zhangwei3@ecnc.test",
		Data: domain.RequestDecidedMailData{
			Name:      "张伟",
			TypeLabel: "Half Day",
			StartDate: "2024-05-20",
			EndDate:   "2024-05-20",
			Status:    "accepted",
		},
	})

	assertContainsAll(t, rendered, []string{"张伟", "Half Day", "2024-05-20", "accepted"})
}

func TestRenderCreateUserMail(t *testing.T) {
	rendered := renderMail(t, domain.MailMessage{
		Type: "create_user",
		To:   "zhangwei3@ecnc.test",
		Data: domain.CreateUserMailData{
			FullName: "张伟",
			Username: "zhangwei3",
			Password: "init-password",
		},
	})

	assertContainsAll(t, rendered, []string{"张伟", "zhangwei3", "init-password"})
}

func TestRenderResetPasswordMail(t *testing.T) {
	rendered := renderMail(t, domain.MailMessage{
		Type: "reset_password",
		To:   "zhangwei3@ecnc.test",
		Data: domain.ResetPasswordMailData{
			FullName:   "张伟",
			OTP:        "123456",
			Expiration: 15,
		},
	})

	assertContainsAll(t, rendered, []string{"张伟", "123456", "15"})
}

func TestRenderChangeEmailMail(t *testing.T) {
	rendered := renderMail(t, domain.MailMessage{
		Type: "change_email",
		To:   "zhangwei3@ecnc.test",
		Data: domain.ChangeEmailMailData{
			FullName:   "张伟",
			OTP:        "654321",
			Expiration: 15,
		},
	})

	assertContainsAll(t, rendered, []string{"张伟", "654321", "15"})
}
