package console

import (
	"context"

	"github.com/gotomicro/ego/core/elog"

	"github.com/mekongtech/recruitment/internal/email"
)

// Service 把邮件打到日志里，本地开发和测试环境用
type Service struct {
	logger *elog.Component
}

func NewService() *Service {
	return &Service{logger: elog.DefaultLogger}
}

func (s *Service) SendMail(_ context.Context, mail email.Mail) error {
	s.logger.Info("发送邮件",
		elog.String("to", mail.To),
		elog.String("subject", mail.Subject),
		elog.String("body", string(mail.Body)))
	return nil
}
