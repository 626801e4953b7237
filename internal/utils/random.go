package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         domain.RoleUser,
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var requestTypes = []domain.RequestType{
	domain.RequestTypeWorkFromHome,
	domain.RequestTypeHoliday,
	domain.RequestTypeHalfday,
	domain.RequestTypeOther,
}

var requestStatuses = []domain.RequestStatus{
	domain.RequestStatusPending,
	domain.RequestStatusAccepted,
	domain.RequestStatusDenied,
}

var requestReasons = []string{
	"回家探亲", "家中有事需要处理", "身体不适需要休息", "在家远程办公",
	"下午需要外出办事", "参加朋友婚礼", "陪同家人就医", "个人事务",
}

// GenerateRandomLeaveRequest 生成一条随机的请假申请，日期落在今天前后 60 天内
func GenerateRandomLeaveRequest(user *domain.User) *domain.LeaveRequest {
	start := time.Now().AddDate(0, 0, rand.Intn(121)-60)
	startDate := domain.NewDate(start.Year(), start.Month(), start.Day())

	end := start.AddDate(0, 0, rand.Intn(4))
	endDate := domain.NewDate(end.Year(), end.Month(), end.Day())

	return &domain.LeaveRequest{
		UserID:    user.ID,
		Name:      user.FullName,
		Email:     user.Email,
		Type:      requestTypes[rand.Intn(len(requestTypes))],
		Reason:    requestReasons[rand.Intn(len(requestReasons))],
		StartDate: startDate,
		EndDate:   endDate,
		Status:    requestStatuses[rand.Intn(len(requestStatuses))],
	}
}
