package identity

import (
	"context"
	"log"

	"github.com/smilepoint/dental-clinic/internal/otp"
)

type SendCode struct {
	codes *otp.Service
}

func NewSendCode(codes *otp.Service) *SendCode {
	return &SendCode{codes: codes}
}

// Execute issues a code for the phone number. With no SMS gateway
// configured the code is written to the server log, as the demo
// deployment expects.
func (uc *SendCode) Execute(ctx context.Context, phoneNumber string) error {
	code, err := uc.codes.Send(ctx, phoneNumber)
	if err != nil {
		return err
	}

	log.Printf("OTP for %s: %s", phoneNumber, code)
	return nil
}
